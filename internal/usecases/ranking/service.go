package ranking

import (
	"context"
	"sort"

	"github.com/vfg2006/performance-hub-api/infrastructure/repository"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/insighting"
	"github.com/vfg2006/performance-hub-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type RankingService interface {
	RankOutlets(ctx context.Context, principal *domain.Principal, kpiID, periodID int64) (*domain.OutletRankingResponse, error)
}

type OutletRankingService struct {
	updateRepo repository.UpdateRepository
	outletRepo repository.OutletRepository
	periodRepo repository.PeriodRepository
	kpiRepo    repository.KPIRepository
}

func NewOutletRankingService(
	updateRepo repository.UpdateRepository,
	outletRepo repository.OutletRepository,
	periodRepo repository.PeriodRepository,
	kpiRepo repository.KPIRepository,
) *OutletRankingService {
	return &OutletRankingService{
		updateRepo: updateRepo,
		outletRepo: outletRepo,
		periodRepo: periodRepo,
		kpiRepo:    kpiRepo,
	}
}

// RankOutlets ordena as lojas pelo valor atual do KPI no período (maior primeiro).
// Empates dividem a posição e são listados pelo id da loja. Lojas sem medição ficam de fora.
func (s *OutletRankingService) RankOutlets(ctx context.Context, principal *domain.Principal, kpiID, periodID int64) (*domain.OutletRankingResponse, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	kpi, err := s.kpiRepo.GetKPIByID(ctx, kpiID)
	if err != nil {
		return nil, err
	}
	if kpi == nil {
		return nil, domain.NewNotFoundError("kpi_id", kpiID)
	}

	period, err := s.periodRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.NewNotFoundError("period_id", periodID)
	}

	updates, err := s.updateRepo.ListByKPIAndPeriod(ctx, kpiID, periodID)
	if err != nil {
		return nil, err
	}

	response := &domain.OutletRankingResponse{
		KPIID:    kpi.ID,
		KPIName:  kpi.Name,
		PeriodID: period.ID,
		Period:   period.Label(),
		Ranking:  []*domain.OutletRankingItem{},
	}
	if len(updates) == 0 {
		return response, nil
	}

	outlets, err := s.outletRepo.ListOutlets(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(outlets))
	for _, o := range outlets {
		names[o.ID] = o.Name
	}

	for outletID, u := range insighting.LatestBy(updates, insighting.ByOutlet) {
		response.Ranking = append(response.Ranking, &domain.OutletRankingItem{
			OutletID:   outletID,
			OutletName: names[outletID],
			Value:      u.Value,
		})
	}

	sort.Slice(response.Ranking, func(i, j int) bool {
		a, b := response.Ranking[i], response.Ranking[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.OutletID < b.OutletID
	})

	// Empates compartilham a posição (1, 1, 3); a ordem entre eles segue o id da loja
	leader := response.Ranking[0].Value
	for i, item := range response.Ranking {
		item.Position = i + 1
		if i > 0 && item.Value == response.Ranking[i-1].Value {
			item.Position = response.Ranking[i-1].Position
		}
		item.GapToLead = utils.RoundTwoDecimals(leader - item.Value)
	}

	return response, nil
}
