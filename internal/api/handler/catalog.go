package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/cataloging"
)

func ListOutlets(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListOutlets")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		outlets, err := service.ListOutlets(r.Context(), principal)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, outlets)
	}
}

func CreateOutlet(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateOutlet")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req domain.CreateOutletRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		outlet, err := service.CreateOutlet(r.Context(), principal, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, outlet)
	}
}

func ListPeriods(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListPeriods")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		periods, err := service.ListPeriods(r.Context(), principal)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, periods)
	}
}

func CreatePeriod(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePeriod")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req domain.CreatePeriodRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		period, err := service.CreatePeriod(r.Context(), principal, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, period)
	}
}

func ListKPIs(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListKPIs")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		kpis, err := service.ListKPIs(r.Context(), principal)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, kpis)
	}
}

func CreateKPI(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateKPI")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req domain.CreateKPIRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		kpi, err := service.CreateKPI(r.Context(), principal, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, kpi)
	}
}
