package recording

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	catalogmocks "github.com/vfg2006/performance-hub-api/internal/usecases/cataloging/mocks"
	"go.uber.org/mock/gomock"
)

type countingObserver struct {
	counts map[string]int
}

func (o *countingObserver) RecordAppend(resource string) {
	o.counts[resource]++
}

func int64Ptr(i int64) *int64       { return &i }
func float64Ptr(f float64) *float64 { return &f }
func strPtr(s string) *string       { return &s }

var principal = &domain.Principal{UserID: 4, Username: "ana", Role: domain.RoleManager}

func validRequest() *domain.AppendUpdateRequest {
	return &domain.AppendUpdateRequest{
		OutletID: int64Ptr(1),
		PeriodID: int64Ptr(2),
		KPIID:    int64Ptr(3),
		Value:    float64Ptr(15),
		Note:     strPtr("revisado"),
	}
}

func TestService_AppendUpdate(t *testing.T) {
	tests := []struct {
		name      string
		principal *domain.Principal
		req       func() *domain.AppendUpdateRequest
		setup     func(updates *mocks.MockUpdateRepository, refs *catalogmocks.MockReferenceChecker)
		wantErr   error
		wantField string
		appended  int
	}{
		{
			name:      "Sem principal - Unauthorized sem consultar referências",
			principal: nil,
			req:       validRequest,
			setup:     func(*mocks.MockUpdateRepository, *catalogmocks.MockReferenceChecker) {},
			wantErr:   domain.ErrUnauthorized,
		},
		{
			name:      "Valor ausente",
			principal: principal,
			req: func() *domain.AppendUpdateRequest {
				r := validRequest()
				r.Value = nil
				return r
			},
			setup:     func(*mocks.MockUpdateRepository, *catalogmocks.MockReferenceChecker) {},
			wantErr:   domain.ErrValidation,
			wantField: "value",
		},
		{
			name:      "Valor não finito",
			principal: principal,
			req: func() *domain.AppendUpdateRequest {
				r := validRequest()
				r.Value = float64Ptr(math.Inf(1))
				return r
			},
			setup:     func(*mocks.MockUpdateRepository, *catalogmocks.MockReferenceChecker) {},
			wantErr:   domain.ErrValidation,
			wantField: "value",
		},
		{
			name:      "KPI ausente",
			principal: principal,
			req: func() *domain.AppendUpdateRequest {
				r := validRequest()
				r.KPIID = nil
				return r
			},
			setup:     func(*mocks.MockUpdateRepository, *catalogmocks.MockReferenceChecker) {},
			wantErr:   domain.ErrValidation,
			wantField: "kpi_id",
		},
		{
			name:      "KPI inexistente - NotFound sem gravar",
			principal: principal,
			req:       validRequest,
			setup: func(updates *mocks.MockUpdateRepository, refs *catalogmocks.MockReferenceChecker) {
				refs.EXPECT().OutletExists(gomock.Any(), int64(1)).Return(true, nil)
				refs.EXPECT().PeriodExists(gomock.Any(), int64(2)).Return(true, nil)
				refs.EXPECT().KPIExists(gomock.Any(), int64(3)).Return(false, nil)
			},
			wantErr:   domain.ErrNotFound,
			wantField: "kpi_id",
		},
		{
			name:      "Medição válida",
			principal: principal,
			req:       validRequest,
			setup: func(updates *mocks.MockUpdateRepository, refs *catalogmocks.MockReferenceChecker) {
				refs.EXPECT().OutletExists(gomock.Any(), int64(1)).Return(true, nil)
				refs.EXPECT().PeriodExists(gomock.Any(), int64(2)).Return(true, nil)
				refs.EXPECT().KPIExists(gomock.Any(), int64(3)).Return(true, nil)
				updates.EXPECT().AppendUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.Update) (*domain.Update, error) {
						require.NotNil(t, u.RecordedBy)
						assert.Equal(t, int64(4), *u.RecordedBy)
						u.ID = 11
						return u, nil
					})
			},
			appended: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			updates := mocks.NewMockUpdateRepository(ctrl)
			refs := catalogmocks.NewMockReferenceChecker(ctrl)
			tt.setup(updates, refs)

			observer := &countingObserver{counts: map[string]int{}}
			service := NewService(updates, refs).WithObserver(observer)

			update, err := service.AppendUpdate(context.Background(), tt.principal, tt.req())
			assert.Equal(t, tt.appended, observer.counts["updates"])

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, update)
				if tt.wantField != "" {
					var domErr *domain.Error
					require.True(t, errors.As(err, &domErr))
					assert.Equal(t, tt.wantField, domErr.Field)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(11), update.ID)
			assert.Equal(t, 15.0, update.Value)
			require.NotNil(t, update.Note)
			assert.Equal(t, "revisado", *update.Note)
		})
	}
}

func TestService_QueryUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updates := mocks.NewMockUpdateRepository(ctrl)
	service := NewService(updates, catalogmocks.NewMockReferenceChecker(ctrl))

	_, err := service.QueryUpdates(context.Background(), nil, 1, 2)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	updates.EXPECT().ListByOutletAndKPI(gomock.Any(), int64(1), int64(2)).Return([]*domain.Update{
		{ID: 1, Value: 10},
		{ID: 2, Value: 15},
	}, nil)

	result, err := service.QueryUpdates(context.Background(), principal, 1, 2)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(2), result[1].ID)
}
