package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/recording"
	"github.com/vfg2006/performance-hub-api/internal/usecases/recording/mocks"
	"github.com/vfg2006/performance-hub-api/pkg/apiErrors"
	"github.com/vfg2006/performance-hub-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func authenticatedRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return req.WithContext(middleware.WithPrincipal(req.Context(), &domain.Principal{UserID: 1, Username: "ana", Role: domain.RoleManager}))
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  string
		wantField string
		validate  func(t *testing.T, req *domain.AppendUpdateRequest)
	}{
		{
			name: "note nulo continua ausente",
			body: `{"outlet_id": 1, "period_id": 2, "kpi_id": 3, "value": 10, "note": null}`,
			validate: func(t *testing.T, req *domain.AppendUpdateRequest) {
				require.NotNil(t, req.Value)
				assert.Equal(t, 10.0, *req.Value)
				assert.Nil(t, req.Note)
			},
		},
		{
			name: "value nulo fica sem valor",
			body: `{"outlet_id": 1, "period_id": 2, "kpi_id": 3, "value": null}`,
			validate: func(t *testing.T, req *domain.AppendUpdateRequest) {
				assert.Nil(t, req.Value)
			},
		},
		{
			name: "note informado",
			body: `{"outlet_id": 1, "period_id": 2, "kpi_id": 3, "value": 1.5, "note": "fechamento"}`,
			validate: func(t *testing.T, req *domain.AppendUpdateRequest) {
				require.NotNil(t, req.Note)
				assert.Equal(t, "fechamento", *req.Note)
			},
		},
		{
			name:      "tipo errado",
			body:      `{"outlet_id": 1, "period_id": 2, "kpi_id": 3, "value": "dez"}`,
			wantCode:  apiErrors.ErrInvalidFormat,
			wantField: "value",
		},
		{
			name:     "corpo que não é objeto",
			body:     `[1, 2]`,
			wantCode: apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req domain.AppendUpdateRequest
			err := decodeBody(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/updates", strings.NewReader(tt.body)), &req)

			if tt.wantCode != "" {
				var domErr *domain.Error
				require.True(t, errors.As(err, &domErr))
				assert.Equal(t, tt.wantCode, domErr.Code)
				assert.Equal(t, tt.wantField, domErr.Field)
				return
			}

			require.NoError(t, err)
			tt.validate(t, &req)
		})
	}
}

func TestAppendUpdate_NullNoteIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockRecorder(ctrl)
	service.EXPECT().
		AppendUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Principal, req *domain.AppendUpdateRequest) (*domain.Update, error) {
			assert.Nil(t, req.Note)
			return &domain.Update{ID: 1, OutletID: *req.OutletID, PeriodID: *req.PeriodID, KPIID: *req.KPIID, Value: *req.Value}, nil
		})

	rec := httptest.NewRecorder()
	AppendUpdate(service).ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/v1/updates",
		`{"outlet_id": 1, "period_id": 2, "kpi_id": 3, "value": 10, "note": null}`))

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"note":null`)
}

func TestAppendUpdate_NullValueIsMissing(t *testing.T) {
	rec := httptest.NewRecorder()
	AppendUpdate(recording.NewService(nil, nil)).ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/v1/updates",
		`{"outlet_id": 1, "period_id": 2, "kpi_id": 3, "value": null}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingRequiredData)
	assert.Contains(t, rec.Body.String(), `"field":"value"`)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "erro de domínio", err: domain.NewMissingFieldError("name"), wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "falha de banco", err: database.WrapError(errors.New("connection refused"), "erro ao consultar lojas"), wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrDatabaseOperation},
		{name: "falha de banco embrulhada", err: pkgerrors.Wrap(database.WrapError(errors.New("timeout"), "erro ao inserir"), "caso de uso"), wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrDatabaseOperation},
		{name: "erro inesperado", err: errors.New("falha"), wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodGet, "/v1/outlets", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
