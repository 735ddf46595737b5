package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/scheduler"
	"github.com/vfg2006/performance-hub-api/pkg/apiErrors"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() *domain.CronJobStatus
}

// CronJobServices contém os jobs disponíveis para execução manual
type CronJobServices struct {
	PeriodRollover CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case scheduler.JobPeriodRollover:
		return s.PeriodRollover, s.PeriodRollover != nil
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if _, ok := requirePrincipal(w, r); !ok {
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		job, ok := services.byType(cronType)
		if !ok {
			writeError(w, r, domain.NewInvalidFieldError("type", "valores aceitos: "+scheduler.JobPeriodRollover))
			return
		}

		if !job.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrAlreadyExists, "Job já está em execução", map[string]string{"field": "type"})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if _, ok := requirePrincipal(w, r); !ok {
			return
		}

		status := map[string]*domain.CronJobStatus{}
		if services.PeriodRollover != nil {
			status[scheduler.JobPeriodRollover] = services.PeriodRollover.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
