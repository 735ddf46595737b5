// Package insighting deriva visões de leitura a partir do ledger (série de métricas e relatório do período)
package insighting

import (
	"context"
	"sort"

	"github.com/vfg2006/performance-hub-api/infrastructure/repository"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Insighter interface {
	AggregateMetrics(ctx context.Context, principal *domain.Principal, outletID, kpiID int64) ([]*domain.MetricPoint, error)
	GetPeriodReport(ctx context.Context, principal *domain.Principal, outletID, periodID int64) (*domain.PeriodReport, error)
}

// Service só lê: nunca grava no ledger
type Service struct {
	updateRepo   repository.UpdateRepository
	periodRepo   repository.PeriodRepository
	kpiRepo      repository.KPIRepository
	feedbackRepo repository.FeedbackRepository
	fileRepo     repository.FileRecordRepository
}

func NewService(
	updateRepo repository.UpdateRepository,
	periodRepo repository.PeriodRepository,
	kpiRepo repository.KPIRepository,
	feedbackRepo repository.FeedbackRepository,
	fileRepo repository.FileRecordRepository,
) *Service {
	return &Service{
		updateRepo:   updateRepo,
		periodRepo:   periodRepo,
		kpiRepo:      kpiRepo,
		feedbackRepo: feedbackRepo,
		fileRepo:     fileRepo,
	}
}

// AggregateMetrics gera um ponto por período para o par (loja, KPI).
// Quando há várias medições no mesmo período, vale a última inserida.
// A série sai em ordem cronológica (ano, mês) e períodos sem medição não aparecem.
func (s *Service) AggregateMetrics(ctx context.Context, principal *domain.Principal, outletID, kpiID int64) ([]*domain.MetricPoint, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	updates, err := s.updateRepo.ListByOutletAndKPI(ctx, outletID, kpiID)
	if err != nil {
		return nil, err
	}

	points := []*domain.MetricPoint{}
	if len(updates) == 0 {
		return points, nil
	}

	latest := LatestBy(updates, byPeriod)

	periodIDs := make([]int64, 0, len(latest))
	for id := range latest {
		periodIDs = append(periodIDs, id)
	}

	periods, err := s.periodRepo.GetPeriodsByIDs(ctx, periodIDs)
	if err != nil {
		return nil, err
	}

	ordered := make([]*domain.Period, 0, len(periods))
	for _, id := range periodIDs {
		if p, ok := periods[id]; ok {
			ordered = append(ordered, p)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Before(*ordered[j])
	})

	for _, p := range ordered {
		winner := latest[p.ID]
		points = append(points, &domain.MetricPoint{
			Period: p.Label(),
			Value:  winner.Value,
			Note:   winner.Note,
		})
	}

	return points, nil
}

// GetPeriodReport reúne, para uma loja em um período, o valor atual de cada KPI
// medido, os feedbacks e os arquivos. Período inexistente gera NotFound.
func (s *Service) GetPeriodReport(ctx context.Context, principal *domain.Principal, outletID, periodID int64) (*domain.PeriodReport, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	period, err := s.periodRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.NewNotFoundError("period_id", periodID)
	}

	updates, err := s.updateRepo.ListByOutletAndPeriod(ctx, outletID, periodID)
	if err != nil {
		return nil, err
	}

	kpis, err := s.kpiRepo.ListKPIs(ctx)
	if err != nil {
		return nil, err
	}
	kpiNames := make(map[int64]string, len(kpis))
	for _, k := range kpis {
		kpiNames[k.ID] = k.Name
	}

	items := []*domain.ReportKPIItem{}
	for kpiID, u := range LatestBy(updates, byKPI) {
		items = append(items, &domain.ReportKPIItem{
			KPIID:   kpiID,
			KPIName: kpiNames[kpiID],
			Value:   u.Value,
			Note:    u.Note,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].KPIID < items[j].KPIID })

	feedback, err := s.feedbackRepo.ListByOutletAndPeriod(ctx, outletID, periodID)
	if err != nil {
		return nil, err
	}

	files, err := s.fileRepo.ListByOutletAndPeriod(ctx, outletID, periodID)
	if err != nil {
		return nil, err
	}

	return &domain.PeriodReport{
		OutletID: outletID,
		PeriodID: periodID,
		Period:   period.Label(),
		KPIs:     items,
		Feedback: feedback,
		Files:    files,
	}, nil
}
