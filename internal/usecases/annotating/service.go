// Package annotating mantém os registros de feedback e de arquivos por (loja, período)
package annotating

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/infrastructure/repository"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-hub-api/internal/usecases/recording"
)

const (
	resourceFeedback = "feedback"
	resourceFiles    = "files"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Annotator interface {
	AppendFeedback(ctx context.Context, principal *domain.Principal, req *domain.AppendFeedbackRequest) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, principal *domain.Principal, outletID, periodID int64) ([]*domain.Feedback, error)
	ListOutletFeedback(ctx context.Context, principal *domain.Principal, outletID int64) ([]*domain.Feedback, error)
	AppendFile(ctx context.Context, principal *domain.Principal, req *domain.AppendFileRequest) (*domain.FileRecord, error)
	ListFiles(ctx context.Context, principal *domain.Principal, outletID, periodID int64) ([]*domain.FileRecord, error)
}

type Service struct {
	feedbackRepo repository.FeedbackRepository
	fileRepo     repository.FileRecordRepository
	references   cataloging.ReferenceChecker
	observer     recording.AppendObserver
}

func NewService(
	feedbackRepo repository.FeedbackRepository,
	fileRepo repository.FileRecordRepository,
	references cataloging.ReferenceChecker,
) *Service {
	return &Service{
		feedbackRepo: feedbackRepo,
		fileRepo:     fileRepo,
		references:   references,
	}
}

func (s *Service) WithObserver(observer recording.AppendObserver) *Service {
	s.observer = observer
	return s
}

func (s *Service) AppendFeedback(ctx context.Context, principal *domain.Principal, req *domain.AppendFeedbackRequest) (*domain.Feedback, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, domain.NewInvalidRequestError("Corpo da requisição ausente")
	}

	if err := validateKey(req.OutletID, req.PeriodID); err != nil {
		return nil, err
	}

	if req.Text == nil || strings.TrimSpace(*req.Text) == "" {
		return nil, domain.NewMissingFieldError("text")
	}

	if err := cataloging.ValidateReferences(ctx, s.references, *req.OutletID, *req.PeriodID, nil); err != nil {
		return nil, err
	}

	created, err := s.feedbackRepo.AppendFeedback(ctx, &domain.Feedback{
		OutletID: *req.OutletID,
		PeriodID: *req.PeriodID,
		Text:     *req.Text,
	})
	if err != nil {
		return nil, err
	}

	s.recordAppend(resourceFeedback)
	logrus.WithFields(logrus.Fields{"feedback_id": created.ID, "outlet_id": created.OutletID}).Debug("Feedback registrado")

	return created, nil
}

func (s *Service) ListFeedback(ctx context.Context, principal *domain.Principal, outletID, periodID int64) ([]*domain.Feedback, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	return s.feedbackRepo.ListByOutletAndPeriod(ctx, outletID, periodID)
}

// ListOutletFeedback retorna todos os feedbacks da loja, agrupados por período
func (s *Service) ListOutletFeedback(ctx context.Context, principal *domain.Principal, outletID int64) ([]*domain.Feedback, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	return s.feedbackRepo.ListByOutlet(ctx, outletID)
}

// AppendFile registra apenas a referência do arquivo; o conteúdo não passa pela API
func (s *Service) AppendFile(ctx context.Context, principal *domain.Principal, req *domain.AppendFileRequest) (*domain.FileRecord, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, domain.NewInvalidRequestError("Corpo da requisição ausente")
	}

	if err := validateKey(req.OutletID, req.PeriodID); err != nil {
		return nil, err
	}

	if req.Path == nil || strings.TrimSpace(*req.Path) == "" {
		return nil, domain.NewMissingFieldError("path")
	}

	if err := cataloging.ValidateReferences(ctx, s.references, *req.OutletID, *req.PeriodID, nil); err != nil {
		return nil, err
	}

	created, err := s.fileRepo.AppendFile(ctx, &domain.FileRecord{
		OutletID: *req.OutletID,
		PeriodID: *req.PeriodID,
		Path:     *req.Path,
	})
	if err != nil {
		return nil, err
	}

	s.recordAppend(resourceFiles)
	logrus.WithFields(logrus.Fields{"file_id": created.ID, "outlet_id": created.OutletID}).Debug("Arquivo registrado")

	return created, nil
}

func (s *Service) ListFiles(ctx context.Context, principal *domain.Principal, outletID, periodID int64) ([]*domain.FileRecord, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	return s.fileRepo.ListByOutletAndPeriod(ctx, outletID, periodID)
}

func (s *Service) recordAppend(resource string) {
	if s.observer != nil {
		s.observer.RecordAppend(resource)
	}
}

func validateKey(outletID, periodID *int64) error {
	if outletID == nil {
		return domain.NewMissingFieldError("outlet_id")
	}
	if periodID == nil {
		return domain.NewMissingFieldError("period_id")
	}
	return nil
}
