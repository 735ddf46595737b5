// Package recording implementa o ledger de medições de KPI (somente inserção)
package recording

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/infrastructure/repository"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/cataloging"
)

const resourceUpdates = "updates"

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Recorder interface {
	AppendUpdate(ctx context.Context, principal *domain.Principal, req *domain.AppendUpdateRequest) (*domain.Update, error)
	QueryUpdates(ctx context.Context, principal *domain.Principal, outletID, kpiID int64) ([]*domain.Update, error)
}

// AppendObserver é notificado a cada inserção bem sucedida
type AppendObserver interface {
	RecordAppend(resource string)
}

type Service struct {
	updateRepo repository.UpdateRepository
	references cataloging.ReferenceChecker
	observer   AppendObserver
}

func NewService(updateRepo repository.UpdateRepository, references cataloging.ReferenceChecker) *Service {
	return &Service{
		updateRepo: updateRepo,
		references: references,
	}
}

// WithObserver habilita a contabilização das inserções
func (s *Service) WithObserver(observer AppendObserver) *Service {
	s.observer = observer
	return s
}

// AppendUpdate valida os campos e as referências e grava uma nova medição.
// Medições anteriores do mesmo (loja, período, KPI) nunca são alteradas.
func (s *Service) AppendUpdate(ctx context.Context, principal *domain.Principal, req *domain.AppendUpdateRequest) (*domain.Update, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	if err := validateAppend(req); err != nil {
		return nil, err
	}

	if err := cataloging.ValidateReferences(ctx, s.references, *req.OutletID, *req.PeriodID, req.KPIID); err != nil {
		return nil, err
	}

	update := &domain.Update{
		OutletID: *req.OutletID,
		PeriodID: *req.PeriodID,
		KPIID:    *req.KPIID,
		Value:    *req.Value,
		Note:     req.Note,
	}
	if principal.UserID > 0 {
		recordedBy := principal.UserID
		update.RecordedBy = &recordedBy
	}

	created, err := s.updateRepo.AppendUpdate(ctx, update)
	if err != nil {
		return nil, err
	}

	if s.observer != nil {
		s.observer.RecordAppend(resourceUpdates)
	}

	logrus.WithFields(logrus.Fields{
		"update_id": created.ID,
		"outlet_id": created.OutletID,
		"period_id": created.PeriodID,
		"kpi_id":    created.KPIID,
	}).Debug("Medição registrada")

	return created, nil
}

// QueryUpdates retorna todas as medições do par (loja, KPI) em ordem de inserção, sem deduplicar
func (s *Service) QueryUpdates(ctx context.Context, principal *domain.Principal, outletID, kpiID int64) ([]*domain.Update, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	return s.updateRepo.ListByOutletAndKPI(ctx, outletID, kpiID)
}

func validateAppend(req *domain.AppendUpdateRequest) error {
	if req == nil {
		return domain.NewInvalidRequestError("Corpo da requisição ausente")
	}

	switch {
	case req.OutletID == nil:
		return domain.NewMissingFieldError("outlet_id")
	case req.PeriodID == nil:
		return domain.NewMissingFieldError("period_id")
	case req.KPIID == nil:
		return domain.NewMissingFieldError("kpi_id")
	case req.Value == nil:
		return domain.NewMissingFieldError("value")
	case math.IsNaN(*req.Value) || math.IsInf(*req.Value, 0):
		return domain.NewInvalidFieldError("value", "o valor deve ser um número finito")
	}

	return nil
}
