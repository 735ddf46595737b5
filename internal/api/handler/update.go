package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/recording"
)

func AppendUpdate(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AppendUpdate")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req domain.AppendUpdateRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		update, err := service.AppendUpdate(r.Context(), principal, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, update)
	}
}

// QueryUpdates lista o histórico completo do par (loja, KPI) em ordem de inserção
func QueryUpdates(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - QueryUpdates")

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

		updates, err := service.QueryUpdates(r.Context(), principal, outletID, kpiID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, updates)
	}
}
