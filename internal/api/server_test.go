package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/infrastructure/repository"
	"github.com/vfg2006/performance-hub-api/internal/api/handler"
	"github.com/vfg2006/performance-hub-api/internal/config"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/scheduler"
	"github.com/vfg2006/performance-hub-api/internal/usecases/annotating"
	"github.com/vfg2006/performance-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/performance-hub-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-hub-api/internal/usecases/insighting"
	"github.com/vfg2006/performance-hub-api/internal/usecases/ranking"
	"github.com/vfg2006/performance-hub-api/internal/usecases/recording"
	"github.com/vfg2006/performance-hub-api/pkg/apiErrors"
	"github.com/vfg2006/performance-hub-api/pkg/metrics"
	"golang.org/x/crypto/bcrypt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	adminUser     = "admin"
	adminPassword = "admin-secret-1"
)

type credentials func(*http.Request)

func basic(username, password string) credentials {
	return func(r *http.Request) { r.SetBasicAuth(username, password) }
}

func bearer(token string) credentials {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

var asAdmin = basic(adminUser, adminPassword)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{
		SecretKey: "test-secret",
		Auth: config.Auth{
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
		PeriodRollover: config.PeriodRollover{CronSchedule: "0 1 1 * *"},
		Metrics:        config.Metrics{Enabled: true},
		Cors:           config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	conn, err := database.NewConnection(ctx, config.Database{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "api.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, database.Migrate(ctx, conn))

	appMetrics := metrics.New()

	updateRepo := repository.NewUpdateRepository(conn)
	outletRepo := repository.NewOutletRepository(conn)
	periodRepo := repository.NewPeriodRepository(conn)
	kpiRepo := repository.NewKPIRepository(conn)
	feedbackRepo := repository.NewFeedbackRepository(conn)
	fileRepo := repository.NewFileRecordRepository(conn)

	authService := authenticating.NewService(repository.NewUserRepository(conn), cfg)
	require.NoError(t, authService.EnsureAdmin(ctx, adminUser, adminPassword))

	catalogService := cataloging.NewService(outletRepo, periodRepo, kpiRepo)
	rolloverService := scheduler.NewPeriodRolloverService(catalogService, appMetrics, cfg)

	srv, err := New(
		cfg,
		authService,
		catalogService,
		recording.NewService(updateRepo, catalogService).WithObserver(appMetrics),
		annotating.NewService(feedbackRepo, fileRepo, catalogService).WithObserver(appMetrics),
		insighting.NewService(updateRepo, periodRepo, kpiRepo, feedbackRepo, fileRepo),
		ranking.NewOutletRankingService(updateRepo, outletRepo, periodRepo, kpiRepo),
		handler.CronJobServices{PeriodRollover: rolloverService},
		appMetrics,
	)
	require.NoError(t, err)

	return srv.Handler()
}

func call(t *testing.T, h http.Handler, method, path string, body any, auth credentials) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	return send(h, method, path, raw, auth)
}

// send não recebe *testing.T e pode ser usado fora da goroutine do teste
func send(h http.Handler, method, path string, body []byte, auth credentials) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != nil {
		auth(req)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func create[T any](t *testing.T, h http.Handler, path string, body any) T {
	t.Helper()
	rec := call(t, h, http.MethodPost, path, body, asAdmin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[T](t, rec)
}

func assertAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, code, field string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())

	var body struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, code, body.Code)
	if field != "" {
		assert.Equal(t, field, body.Details["field"])
	}
}

func TestAPI_PublicRoutes(t *testing.T) {
	h := newTestServer(t)

	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/healthcheck", nil, nil).Code)

	rec := call(t, h, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAPI_RejectsMissingOrWrongCredentials(t *testing.T) {
	h := newTestServer(t)

	rec := call(t, h, http.MethodPost, "/v1/outlets", map[string]string{"name": "Loja Centro"}, nil)
	assertAPIError(t, rec, http.StatusUnauthorized, apiErrors.ErrInvalidCredentials, "")
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")

	rec = call(t, h, http.MethodPost, "/v1/outlets", map[string]string{"name": "Loja Centro"}, basic(adminUser, "errada"))
	assertAPIError(t, rec, http.StatusUnauthorized, apiErrors.ErrInvalidCredentials, "")

	// requisição inválida sem credenciais continua sendo 401, nunca 400
	rec = call(t, h, http.MethodPost, "/v1/updates", "{", nil)
	assertAPIError(t, rec, http.StatusUnauthorized, apiErrors.ErrInvalidCredentials, "")

	rec = call(t, h, http.MethodGet, "/v1/outlets", nil, asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_LoginAndBearerToken(t *testing.T) {
	h := newTestServer(t)

	rec := call(t, h, http.MethodPost, "/v1/login", map[string]string{"username": adminUser, "password": adminPassword}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[handler.LoginResponse](t, rec)
	require.NotEmpty(t, login.Token)

	rec = call(t, h, http.MethodGet, "/v1/me", nil, bearer(login.Token))
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[domain.User](t, rec)
	assert.Equal(t, adminUser, me.Username)
	assert.Equal(t, domain.RoleAdmin, me.Role)

	rec = call(t, h, http.MethodGet, "/v1/me", nil, bearer("nao-e-um-token"))
	assertAPIError(t, rec, http.StatusUnauthorized, apiErrors.ErrInvalidToken, "")
}

func TestAPI_UserManagementIsAdminOnly(t *testing.T) {
	h := newTestServer(t)

	created := create[domain.CreateUserResponse](t, h, "/v1/users", map[string]string{"username": "gerente"})
	require.NotEmpty(t, created.GeneratedPassword)
	assert.Equal(t, domain.RoleManager, created.User.Role)

	asManager := basic("gerente", created.GeneratedPassword)

	rec := call(t, h, http.MethodPost, "/v1/users", map[string]string{"username": "outro"}, asManager)
	assertAPIError(t, rec, http.StatusForbidden, apiErrors.ErrInsufficientPrivilege, "")

	// operações de dados não dependem do papel
	rec = call(t, h, http.MethodPost, "/v1/kpis", map[string]string{"name": "Vendas"}, asManager)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_CatalogValidationAndConflicts(t *testing.T) {
	h := newTestServer(t)

	outlet := create[domain.Outlet](t, h, "/v1/outlets", map[string]string{"name": "Loja Centro"})
	assert.Equal(t, "Loja Centro", outlet.Name)
	require.NotNil(t, outlet.ManagerID)

	rec := call(t, h, http.MethodPost, "/v1/outlets", map[string]string{"name": "Loja Centro"}, asAdmin)
	assertAPIError(t, rec, http.StatusConflict, apiErrors.ErrAlreadyExists, "name")

	rec = call(t, h, http.MethodPost, "/v1/outlets", map[string]string{"name": "   "}, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrMissingRequiredData, "name")

	rec = call(t, h, http.MethodPost, "/v1/periods", map[string]int{"month": 13, "year": 2024}, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidFormat, "month")

	rec = call(t, h, http.MethodPost, "/v1/periods", map[string]int{"year": 2024}, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrMissingRequiredData, "month")

	rec = call(t, h, http.MethodPost, "/v1/kpis", "{not json", asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidRequest, "")

	create[domain.Period](t, h, "/v1/periods", map[string]int{"month": 3, "year": 2024})
	create[domain.Period](t, h, "/v1/periods", map[string]int{"month": 11, "year": 2023})
	create[domain.Period](t, h, "/v1/periods", map[string]int{"month": 1, "year": 2024})

	rec = call(t, h, http.MethodGet, "/v1/periods", nil, asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	periods := decode[[]domain.Period](t, rec)
	require.Len(t, periods, 3)
	assert.Equal(t, "2023-11", periods[0].Label())
	assert.Equal(t, "2024-01", periods[1].Label())
	assert.Equal(t, "2024-03", periods[2].Label())
}

func TestAPI_ConcurrentCreatesHaveSingleWinner(t *testing.T) {
	h := newTestServer(t)

	const attempts = 6
	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			statuses[i] = send(h, http.MethodPost, "/v1/periods", []byte(`{"month": 6, "year": 2024}`), asAdmin).Code
		}(i)
	}
	wg.Wait()

	var created, conflicts int
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)

	periods := decode[[]domain.Period](t, call(t, h, http.MethodGet, "/v1/periods", nil, asAdmin))
	assert.Len(t, periods, 1)
}

func TestAPI_UpdatesAndMetrics(t *testing.T) {
	h := newTestServer(t)

	outlet := create[domain.Outlet](t, h, "/v1/outlets", map[string]string{"name": "Loja Norte"})
	kpi := create[domain.KPI](t, h, "/v1/kpis", map[string]string{"name": "Faturamento"})
	march := create[domain.Period](t, h, "/v1/periods", map[string]int{"month": 3, "year": 2024})
	january := create[domain.Period](t, h, "/v1/periods", map[string]int{"month": 1, "year": 2024})

	metricsPath := "/v1/metrics/" + itoa(outlet.ID) + "/" + itoa(kpi.ID)
	rec := call(t, h, http.MethodGet, metricsPath, nil, asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	appendUpdate := func(periodID int64, value float64, note *string) domain.Update {
		return create[domain.Update](t, h, "/v1/updates", map[string]any{
			"outlet_id": outlet.ID,
			"period_id": periodID,
			"kpi_id":    kpi.ID,
			"value":     value,
			"note":      note,
		})
	}

	rec = call(t, h, http.MethodPost, "/v1/updates",
		`{"outlet_id": `+itoa(outlet.ID)+`, "period_id": `+itoa(march.ID)+`, "kpi_id": `+itoa(kpi.ID)+`, "value": 90, "note": null}`, asAdmin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Nil(t, decode[domain.Update](t, rec).Note)

	note := "revisado após fechamento"
	first := appendUpdate(march.ID, 100, nil)
	appendUpdate(january.ID, 80.5, nil)
	last := appendUpdate(march.ID, 120, &note)
	assert.Less(t, first.ID, last.ID)
	require.NotNil(t, last.Note)
	assert.Equal(t, note, *last.Note)
	assert.NotNil(t, last.RecordedBy)

	rec = call(t, h, http.MethodGet, "/v1/updates/"+itoa(outlet.ID)+"/"+itoa(kpi.ID), nil, asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	history := decode[[]domain.Update](t, rec)
	require.Len(t, history, 4)
	assert.Equal(t, []float64{90, 100, 80.5, 120}, []float64{history[0].Value, history[1].Value, history[2].Value, history[3].Value})

	rec = call(t, h, http.MethodGet, metricsPath, nil, asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	points := decode[[]domain.MetricPoint](t, rec)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-01", points[0].Period)
	assert.Equal(t, 80.5, points[0].Value)
	assert.Nil(t, points[0].Note)
	assert.Equal(t, "2024-03", points[1].Period)
	assert.Equal(t, 120.0, points[1].Value)
	require.NotNil(t, points[1].Note)
	assert.Equal(t, note, *points[1].Note)
}

func TestAPI_AppendUpdateRejectsBadInput(t *testing.T) {
	h := newTestServer(t)

	outlet := create[domain.Outlet](t, h, "/v1/outlets", map[string]string{"name": "Loja Sul"})
	kpi := create[domain.KPI](t, h, "/v1/kpis", map[string]string{"name": "Ticket médio"})
	period := create[domain.Period](t, h, "/v1/periods", map[string]int{"month": 5, "year": 2024})

	rec := call(t, h, http.MethodPost, "/v1/updates", map[string]any{
		"outlet_id": outlet.ID, "period_id": period.ID, "kpi_id": kpi.ID + 100, "value": 10,
	}, asAdmin)
	assertAPIError(t, rec, http.StatusNotFound, apiErrors.ErrResourceNotFound, "kpi_id")

	rec = call(t, h, http.MethodPost, "/v1/updates", map[string]any{
		"outlet_id": outlet.ID, "period_id": period.ID, "kpi_id": kpi.ID,
	}, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrMissingRequiredData, "value")

	rec = call(t, h, http.MethodPost, "/v1/updates", map[string]any{
		"outlet_id": outlet.ID, "period_id": period.ID, "kpi_id": kpi.ID, "value": nil,
	}, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrMissingRequiredData, "value")

	rec = call(t, h, http.MethodPost, "/v1/updates",
		`{"outlet_id": 1, "period_id": 1, "kpi_id": 1, "value": "dez"}`, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidFormat, "value")

	rec = call(t, h, http.MethodPost, "/v1/updates", `[1, 2]`, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidRequest, "")

	rec = call(t, h, http.MethodGet, "/v1/updates/abc/"+itoa(kpi.ID), nil, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidFormat, "outlet_id")

	rec = call(t, h, http.MethodGet, "/v1/updates/"+itoa(outlet.ID)+"/"+itoa(kpi.ID), nil, asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_FeedbackFilesAndReport(t *testing.T) {
	h := newTestServer(t)

	outlet := create[domain.Outlet](t, h, "/v1/outlets", map[string]string{"name": "Loja Leste"})
	kpi := create[domain.KPI](t, h, "/v1/kpis", map[string]string{"name": "Conversão"})
	period := create[domain.Period](t, h, "/v1/periods", map[string]int{"month": 2, "year": 2024})
	pair := itoa(outlet.ID) + "/" + itoa(period.ID)

	rec := call(t, h, http.MethodPost, "/v1/feedback", map[string]any{"outlet_id": outlet.ID, "period_id": period.ID}, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrMissingRequiredData, "text")

	rec = call(t, h, http.MethodPost, "/v1/files", map[string]any{"outlet_id": outlet.ID, "period_id": period.ID + 50, "path": "a.pdf"}, asAdmin)
	assertAPIError(t, rec, http.StatusNotFound, apiErrors.ErrResourceNotFound, "period_id")

	create[domain.Feedback](t, h, "/v1/feedback", map[string]any{"outlet_id": outlet.ID, "period_id": period.ID, "text": "Boa evolução"})
	create[domain.Feedback](t, h, "/v1/feedback", map[string]any{"outlet_id": outlet.ID, "period_id": period.ID, "text": "Atenção ao estoque"})
	create[domain.FileRecord](t, h, "/v1/files", map[string]any{"outlet_id": outlet.ID, "period_id": period.ID, "path": "relatorios/fev.pdf"})
	create[domain.Update](t, h, "/v1/updates", map[string]any{"outlet_id": outlet.ID, "period_id": period.ID, "kpi_id": kpi.ID, "value": 0.42})

	feedback := decode[[]domain.Feedback](t, call(t, h, http.MethodGet, "/v1/feedback/"+pair, nil, asAdmin))
	require.Len(t, feedback, 2)
	assert.Equal(t, "Boa evolução", feedback[0].Text)
	assert.Equal(t, "Atenção ao estoque", feedback[1].Text)

	outletFeedback := decode[[]domain.Feedback](t, call(t, h, http.MethodGet, "/v1/feedback/"+itoa(outlet.ID), nil, asAdmin))
	assert.Len(t, outletFeedback, 2)

	files := decode[[]domain.FileRecord](t, call(t, h, http.MethodGet, "/v1/files/"+pair, nil, asAdmin))
	require.Len(t, files, 1)
	assert.Equal(t, "relatorios/fev.pdf", files[0].Path)

	rec = call(t, h, http.MethodGet, "/v1/reports/"+pair, nil, asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[domain.PeriodReport](t, rec)
	assert.Equal(t, "2024-02", report.Period)
	require.Len(t, report.KPIs, 1)
	assert.Equal(t, "Conversão", report.KPIs[0].KPIName)
	assert.Equal(t, 0.42, report.KPIs[0].Value)
	assert.Len(t, report.Feedback, 2)
	assert.Len(t, report.Files, 1)

	rec = call(t, h, http.MethodGet, "/v1/reports/"+itoa(outlet.ID)+"/999", nil, asAdmin)
	assertAPIError(t, rec, http.StatusNotFound, apiErrors.ErrResourceNotFound, "period_id")
}

func TestAPI_OutletRanking(t *testing.T) {
	h := newTestServer(t)

	north := create[domain.Outlet](t, h, "/v1/outlets", map[string]string{"name": "Norte"})
	south := create[domain.Outlet](t, h, "/v1/outlets", map[string]string{"name": "Sul"})
	kpi := create[domain.KPI](t, h, "/v1/kpis", map[string]string{"name": "Vendas"})
	period := create[domain.Period](t, h, "/v1/periods", map[string]int{"month": 7, "year": 2024})

	for _, u := range []struct {
		outlet int64
		value  float64
	}{{north.ID, 500}, {south.ID, 700}, {north.ID, 900}} {
		create[domain.Update](t, h, "/v1/updates", map[string]any{
			"outlet_id": u.outlet, "period_id": period.ID, "kpi_id": kpi.ID, "value": u.value,
		})
	}

	rec := call(t, h, http.MethodGet, "/v1/ranking/"+itoa(kpi.ID)+"/"+itoa(period.ID), nil, asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[domain.OutletRankingResponse](t, rec)
	require.Len(t, result.Ranking, 2)
	assert.Equal(t, "Norte", result.Ranking[0].OutletName)
	assert.Equal(t, 900.0, result.Ranking[0].Value)
	assert.Equal(t, "Sul", result.Ranking[1].OutletName)
	assert.Equal(t, 200.0, result.Ranking[1].GapToLead)
}

func TestAPI_CronJobs(t *testing.T) {
	h := newTestServer(t)

	rec := call(t, h, http.MethodPost, "/v1/cron/desconhecido/run", nil, asAdmin)
	assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidFormat, "type")

	rec = call(t, h, http.MethodPost, "/v1/cron/"+scheduler.JobPeriodRollover+"/run", nil, asAdmin)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	require.Eventually(t, func() bool {
		var status map[string]domain.CronJobStatus
		rec := send(h, http.MethodGet, "/v1/cron", nil, asAdmin)
		if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
			return false
		}
		return status[scheduler.JobPeriodRollover].LastCompletedAt != nil
	}, 5*time.Second, 20*time.Millisecond)

	now := time.Now()
	periods := decode[[]domain.Period](t, call(t, h, http.MethodGet, "/v1/periods", nil, asAdmin))
	require.Len(t, periods, 1)
	assert.Equal(t, int(now.Month()), periods[0].Month)
	assert.Equal(t, now.Year(), periods[0].Year)
}
