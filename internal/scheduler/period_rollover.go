package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/config"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-hub-api/pkg/utils"
)

const JobPeriodRollover = "period-rollover"

// JobRecorder recebe o resultado de cada execução (métricas)
type JobRecorder interface {
	RecordJobRun(job string, err error)
}

// PeriodRolloverConfig representa a configuração do job de abertura de período
type PeriodRolloverConfig struct {
	CronSchedule string
	Enabled      bool
}

// PeriodRolloverService garante que o período do mês corrente exista no catálogo
type PeriodRolloverService struct {
	scheduler       *gocron.Scheduler
	config          PeriodRolloverConfig
	cataloger       cataloging.Cataloger
	recorder        JobRecorder
	now             func() time.Time
	running         bool
	mutex           sync.Mutex
	lastStartedAt   *time.Time
	lastCompletedAt *time.Time
	lastError       *string
}

func NewPeriodRolloverService(cataloger cataloging.Cataloger, recorder JobRecorder, appConfig *config.Config) *PeriodRolloverService {
	rolloverConfig := PeriodRolloverConfig{
		CronSchedule: appConfig.PeriodRollover.CronSchedule,
		Enabled:      appConfig.PeriodRollover.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rolloverConfig.CronSchedule,
		"enabled":       rolloverConfig.Enabled,
	}).Info("Configuração do job de abertura de período carregada")

	return &PeriodRolloverService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    rolloverConfig,
		cataloger: cataloger,
		recorder:  recorder,
		now:       time.Now,
	}
}

// Start agenda o job e o interrompe quando o contexto for cancelado
func (s *PeriodRolloverService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Job de abertura de período desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de abertura de período")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar abertura de período: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de abertura de período")
		s.scheduler.Stop()
	}()

	return nil
}

// EnsureCurrentPeriod cria o período do mês corrente se ele ainda não existir.
// Retorna created=false quando o período já estava cadastrado.
func (s *PeriodRolloverService) EnsureCurrentPeriod(ctx context.Context) (*domain.Period, bool, error) {
	month, year := utils.MonthYear(s.now())

	period, err := s.cataloger.CreatePeriod(ctx, domain.SystemPrincipal(), &domain.CreatePeriodRequest{
		Month: &month,
		Year:  &year,
	})
	if errors.Is(err, domain.ErrConflict) {
		return &domain.Period{Month: month, Year: year}, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return period, true, nil
}

// tryStart marca o job como em execução; false quando já havia uma execução ativa
func (s *PeriodRolloverService) tryStart() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	startedAt := s.now()
	s.lastStartedAt = &startedAt
	return true
}

func (s *PeriodRolloverService) run(ctx context.Context) {
	if !s.tryStart() {
		logrus.Info("Abertura de período já em andamento, ignorando")
		return
	}
	s.execute(ctx)
}

// execute roda o job; quem chama já detém o estado running
func (s *PeriodRolloverService) execute(ctx context.Context) {
	period, created, err := s.EnsureCurrentPeriod(ctx)

	s.mutex.Lock()
	s.running = false
	completedAt := s.now()
	s.lastCompletedAt = &completedAt
	s.lastError = nil
	if err != nil {
		msg := err.Error()
		s.lastError = &msg
	}
	s.mutex.Unlock()

	if s.recorder != nil {
		s.recorder.RecordJobRun(JobPeriodRollover, err)
	}

	if err != nil {
		logrus.WithError(err).Error("Erro ao abrir período do mês corrente")
		return
	}

	logrus.WithFields(logrus.Fields{
		"period":  period.Label(),
		"created": created,
	}).Info("Abertura de período concluída")
}

// TriggerManualSync dispara o job fora do agendamento.
// Retorna false quando uma execução já está em andamento.
func (s *PeriodRolloverService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryStart() {
		logrus.Info("Abertura de período já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando abertura de período manual")
	go s.execute(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o estado atual do job
func (s *PeriodRolloverService) GetStatus() *domain.CronJobStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return &domain.CronJobStatus{
		Type:            JobPeriodRollover,
		Enabled:         s.config.Enabled,
		Schedule:        s.config.CronSchedule,
		Running:         s.running,
		LastStartedAt:   s.lastStartedAt,
		LastCompletedAt: s.lastCompletedAt,
		LastError:       s.lastError,
	}
}
