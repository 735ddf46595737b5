package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/annotating"
)

func AppendFeedback(service annotating.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AppendFeedback")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req domain.AppendFeedbackRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		feedback, err := service.AppendFeedback(r.Context(), principal, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, feedback)
	}
}

func ListFeedback(service annotating.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListFeedback")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		outletID, periodID, err := outletPeriodParams(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		feedback, err := service.ListFeedback(r.Context(), principal, outletID, periodID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, feedback)
	}
}

// ListOutletFeedback lista todos os feedbacks de uma loja, agrupados por período
func ListOutletFeedback(service annotating.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListOutletFeedback")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		outletID, err := pathID(r, "outlet_id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		feedback, err := service.ListOutletFeedback(r.Context(), principal, outletID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, feedback)
	}
}

func AppendFile(service annotating.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AppendFile")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req domain.AppendFileRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		file, err := service.AppendFile(r.Context(), principal, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, file)
	}
}

func ListFiles(service annotating.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListFiles")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		outletID, periodID, err := outletPeriodParams(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		files, err := service.ListFiles(r.Context(), principal, outletID, periodID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, files)
	}
}

func outletPeriodParams(r *http.Request) (int64, int64, error) {
	outletID, err := pathID(r, "outlet_id")
	if err != nil {
		return 0, 0, err
	}

	periodID, err := pathID(r, "period_id")
	if err != nil {
		return 0, 0, err
	}

	return outletID, periodID, nil
}
