package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/api/handler"
	"github.com/vfg2006/performance-hub-api/internal/api/handler/router"
	"github.com/vfg2006/performance-hub-api/internal/config"
	"github.com/vfg2006/performance-hub-api/internal/usecases/annotating"
	"github.com/vfg2006/performance-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/performance-hub-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-hub-api/internal/usecases/insighting"
	"github.com/vfg2006/performance-hub-api/internal/usecases/ranking"
	"github.com/vfg2006/performance-hub-api/internal/usecases/recording"
	"github.com/vfg2006/performance-hub-api/pkg/metrics"
	"github.com/vfg2006/performance-hub-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	cataloger cataloging.Cataloger,
	recorder recording.Recorder,
	annotator annotating.Annotator,
	insighter insighting.Insighter,
	rankingService ranking.RankingService,
	cronServices handler.CronJobServices,
	appMetrics *metrics.Metrics,
) (*Server, error) {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Catalog(cataloger)...),
		router.WithRoutes(handler.Updates(recorder)...),
		router.WithRoutes(handler.Annotations(annotator)...),
		router.WithRoutes(handler.Insights(insighter)...),
		router.WithRoutes(handler.OutletRanking(rankingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	}

	if config.Metrics.Enabled && appMetrics != nil {
		configs = append(configs, router.WithRoutes(handler.Metrics(appMetrics.Handler())...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(appMetrics),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
