package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/usecases/insighting"
	"github.com/vfg2006/performance-hub-api/internal/usecases/ranking"
)

// GetMetrics retorna a série do KPI da loja: um ponto por período, valor mais recente
func GetMetrics(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetMetrics")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		outletID, err := pathID(r, "outlet_id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		kpiID, err := pathID(r, "kpi_id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		points, err := service.AggregateMetrics(r.Context(), principal, outletID, kpiID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, points)
	}
}

func GetPeriodReport(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPeriodReport")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		outletID, periodID, err := outletPeriodParams(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		report, err := service.GetPeriodReport(r.Context(), principal, outletID, periodID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetOutletRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetOutletRanking")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		kpiID, err := pathID(r, "kpi_id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		periodID, err := pathID(r, "period_id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		result, err := service.RankOutlets(r.Context(), principal, kpiID, periodID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
