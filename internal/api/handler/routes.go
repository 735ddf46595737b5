package handler

import (
	"net/http"

	"github.com/vfg2006/performance-hub-api/internal/api/handler/router"
	"github.com/vfg2006/performance-hub-api/internal/usecases/annotating"
	"github.com/vfg2006/performance-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/performance-hub-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-hub-api/internal/usecases/insighting"
	"github.com/vfg2006/performance-hub-api/internal/usecases/ranking"
	"github.com/vfg2006/performance-hub-api/internal/usecases/recording"
	"github.com/vfg2006/performance-hub-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics expõe o endpoint de scraping do Prometheus
func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Catalog(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/outlets",
			Method:  http.MethodGet,
			Handler: ListOutlets(service),
		},
		{
			Path:    "/v1/outlets",
			Method:  http.MethodPost,
			Handler: CreateOutlet(service),
		},
		{
			Path:    "/v1/periods",
			Method:  http.MethodGet,
			Handler: ListPeriods(service),
		},
		{
			Path:    "/v1/periods",
			Method:  http.MethodPost,
			Handler: CreatePeriod(service),
		},
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: ListKPIs(service),
		},
		{
			Path:    "/v1/kpis",
			Method:  http.MethodPost,
			Handler: CreateKPI(service),
		},
	}
}

func Updates(service recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/updates",
			Method:  http.MethodPost,
			Handler: AppendUpdate(service),
		},
		{
			Path:    "/v1/updates/:outlet_id/:kpi_id",
			Method:  http.MethodGet,
			Handler: QueryUpdates(service),
		},
	}
}

func Annotations(service annotating.Annotator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/feedback",
			Method:  http.MethodPost,
			Handler: AppendFeedback(service),
		},
		{
			Path:    "/v1/feedback/:outlet_id",
			Method:  http.MethodGet,
			Handler: ListOutletFeedback(service),
		},
		{
			Path:    "/v1/feedback/:outlet_id/:period_id",
			Method:  http.MethodGet,
			Handler: ListFeedback(service),
		},
		{
			Path:    "/v1/files",
			Method:  http.MethodPost,
			Handler: AppendFile(service),
		},
		{
			Path:    "/v1/files/:outlet_id/:period_id",
			Method:  http.MethodGet,
			Handler: ListFiles(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/:outlet_id/:kpi_id",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    "/v1/reports/:outlet_id/:period_id",
			Method:  http.MethodGet,
			Handler: GetPeriodReport(service),
		},
	}
}

func OutletRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ranking/:kpi_id/:period_id",
			Method:  http.MethodGet,
			Handler: GetOutletRanking(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
