// Package cataloging mantém os catálogos de lojas, períodos e KPIs
package cataloging

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/infrastructure/repository"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Cataloger interface {
	ListOutlets(ctx context.Context, principal *domain.Principal) ([]*domain.Outlet, error)
	CreateOutlet(ctx context.Context, principal *domain.Principal, req *domain.CreateOutletRequest) (*domain.Outlet, error)
	ListPeriods(ctx context.Context, principal *domain.Principal) ([]*domain.Period, error)
	CreatePeriod(ctx context.Context, principal *domain.Principal, req *domain.CreatePeriodRequest) (*domain.Period, error)
	ListKPIs(ctx context.Context, principal *domain.Principal) ([]*domain.KPI, error)
	CreateKPI(ctx context.Context, principal *domain.Principal, req *domain.CreateKPIRequest) (*domain.KPI, error)
}

// ReferenceChecker é consultado pelo ledger e pelos registros antes de aceitar uma escrita
type ReferenceChecker interface {
	OutletExists(ctx context.Context, id int64) (bool, error)
	PeriodExists(ctx context.Context, id int64) (bool, error)
	KPIExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	outletRepo repository.OutletRepository
	periodRepo repository.PeriodRepository
	kpiRepo    repository.KPIRepository
}

func NewService(
	outletRepo repository.OutletRepository,
	periodRepo repository.PeriodRepository,
	kpiRepo repository.KPIRepository,
) *Service {
	return &Service{
		outletRepo: outletRepo,
		periodRepo: periodRepo,
		kpiRepo:    kpiRepo,
	}
}

func (s *Service) ListOutlets(ctx context.Context, principal *domain.Principal) ([]*domain.Outlet, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	return s.outletRepo.ListOutlets(ctx)
}

// CreateOutlet registra o principal como gerente da nova loja
func (s *Service) CreateOutlet(ctx context.Context, principal *domain.Principal, req *domain.CreateOutletRequest) (*domain.Outlet, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, domain.NewInvalidRequestError("Corpo da requisição ausente")
	}

	if isBlank(req.Name) {
		return nil, domain.NewMissingFieldError("name")
	}

	outlet := &domain.Outlet{Name: *req.Name}
	if principal.UserID > 0 {
		managerID := principal.UserID
		outlet.ManagerID = &managerID
	}

	created, err := s.outletRepo.CreateOutlet(ctx, outlet)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"outlet_id": created.ID, "principal_username": principal.Username}).Info("Loja criada")
	return created, nil
}

// ListPeriods retorna os períodos ordenados por (ano, mês)
func (s *Service) ListPeriods(ctx context.Context, principal *domain.Principal) ([]*domain.Period, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	return s.periodRepo.ListPeriods(ctx)
}

func (s *Service) CreatePeriod(ctx context.Context, principal *domain.Principal, req *domain.CreatePeriodRequest) (*domain.Period, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, domain.NewInvalidRequestError("Corpo da requisição ausente")
	}

	if req.Month == nil {
		return nil, domain.NewMissingFieldError("month")
	}

	if *req.Month < 1 || *req.Month > 12 {
		return nil, domain.NewInvalidFieldError("month", "o mês deve estar entre 1 e 12")
	}

	if req.Year == nil {
		return nil, domain.NewMissingFieldError("year")
	}

	if *req.Year < domain.MinPeriodYear || *req.Year > domain.MaxPeriodYear {
		return nil, domain.NewInvalidFieldError("year", fmt.Sprintf("o ano deve estar entre %d e %d", domain.MinPeriodYear, domain.MaxPeriodYear))
	}

	created, err := s.periodRepo.CreatePeriod(ctx, &domain.Period{Month: *req.Month, Year: *req.Year})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"period_id": created.ID, "period": created.Label()}).Info("Período criado")
	return created, nil
}

func (s *Service) ListKPIs(ctx context.Context, principal *domain.Principal) ([]*domain.KPI, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	return s.kpiRepo.ListKPIs(ctx)
}

func (s *Service) CreateKPI(ctx context.Context, principal *domain.Principal, req *domain.CreateKPIRequest) (*domain.KPI, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, domain.NewInvalidRequestError("Corpo da requisição ausente")
	}

	if isBlank(req.Name) {
		return nil, domain.NewMissingFieldError("name")
	}

	created, err := s.kpiRepo.CreateKPI(ctx, &domain.KPI{Name: *req.Name})
	if err != nil {
		return nil, err
	}

	logrus.WithField("kpi_id", created.ID).Info("KPI criado")
	return created, nil
}

func (s *Service) OutletExists(ctx context.Context, id int64) (bool, error) {
	return s.outletRepo.ExistsOutlet(ctx, id)
}

func (s *Service) PeriodExists(ctx context.Context, id int64) (bool, error) {
	return s.periodRepo.ExistsPeriod(ctx, id)
}

func (s *Service) KPIExists(ctx context.Context, id int64) (bool, error) {
	return s.kpiRepo.ExistsKPI(ctx, id)
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
