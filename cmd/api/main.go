package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/infrastructure/repository"
	"github.com/vfg2006/performance-hub-api/internal/api"
	"github.com/vfg2006/performance-hub-api/internal/api/handler"
	"github.com/vfg2006/performance-hub-api/internal/config"
	"github.com/vfg2006/performance-hub-api/internal/scheduler"
	"github.com/vfg2006/performance-hub-api/internal/usecases/annotating"
	"github.com/vfg2006/performance-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/performance-hub-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-hub-api/internal/usecases/insighting"
	"github.com/vfg2006/performance-hub-api/internal/usecases/ranking"
	"github.com/vfg2006/performance-hub-api/internal/usecases/recording"
	"github.com/vfg2006/performance-hub-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar o schema do banco de dados")
		}
	}

	appMetrics := metrics.New()

	userRepo := repository.NewUserRepository(conn)
	outletRepo := repository.NewOutletRepository(conn)
	periodRepo := repository.NewPeriodRepository(conn)
	kpiRepo := repository.NewKPIRepository(conn)
	updateRepo := repository.NewUpdateRepository(conn)
	feedbackRepo := repository.NewFeedbackRepository(conn)
	fileRepo := repository.NewFileRecordRepository(conn)

	authenticator := authenticating.NewService(userRepo, cfg)
	if err := authenticator.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o administrador inicial")
	}

	catalogService := cataloging.NewService(outletRepo, periodRepo, kpiRepo)
	recordingService := recording.NewService(updateRepo, catalogService).WithObserver(appMetrics)
	annotatingService := annotating.NewService(feedbackRepo, fileRepo, catalogService).WithObserver(appMetrics)
	insightService := insighting.NewService(updateRepo, periodRepo, kpiRepo, feedbackRepo, fileRepo)
	rankingService := ranking.NewOutletRankingService(updateRepo, outletRepo, periodRepo, kpiRepo)

	periodRolloverService := scheduler.NewPeriodRolloverService(catalogService, appMetrics, cfg)
	if err := periodRolloverService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de abertura de período")
	}

	server, err := api.New(
		cfg,
		authenticator,
		catalogService,
		recordingService,
		annotatingService,
		insightService,
		rankingService,
		handler.CronJobServices{PeriodRollover: periodRolloverService},
		appMetrics,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn cria a conexão com o banco configurado (postgres ou sqlite)
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
