package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/infrastructure/repository"
	"github.com/vfg2006/performance-hub-api/internal/config"
	"github.com/vfg2006/performance-hub-api/internal/usecases/authenticating"
)

// Aplica o schema e cria o administrador inicial, sem subir a API
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	startTime := time.Now()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := database.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema")
	}

	authenticator := authenticating.NewService(repository.NewUserRepository(conn), cfg)
	if err := authenticator.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o administrador inicial")
	}

	logrus.WithFields(logrus.Fields{
		"driver":  conn.Driver(),
		"elapsed": time.Since(startTime).String(),
	}).Info("Migração concluída")
}
