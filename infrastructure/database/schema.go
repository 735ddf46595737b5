package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/config"
)

// As tabelas de catálogo, o ledger e os registros auxiliares são somente de inserção:
// não existem UPDATE ou DELETE sobre elas no código da aplicação.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'manager'
	)`,
	`CREATE TABLE IF NOT EXISTS outlets (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		manager_id BIGINT REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS periods (
		id BIGSERIAL PRIMARY KEY,
		month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
		year INTEGER NOT NULL,
		UNIQUE (month, year)
	)`,
	`CREATE TABLE IF NOT EXISTS kpis (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS updates (
		id BIGSERIAL PRIMARY KEY,
		outlet_id BIGINT NOT NULL REFERENCES outlets (id),
		period_id BIGINT NOT NULL REFERENCES periods (id),
		kpi_id BIGINT NOT NULL REFERENCES kpis (id),
		value DOUBLE PRECISION NOT NULL,
		note TEXT,
		recorded_by BIGINT REFERENCES users (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_updates_outlet_kpi ON updates (outlet_id, kpi_id, id)`,
	`CREATE INDEX IF NOT EXISTS idx_updates_kpi_period ON updates (kpi_id, period_id, id)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id BIGSERIAL PRIMARY KEY,
		outlet_id BIGINT NOT NULL REFERENCES outlets (id),
		period_id BIGINT NOT NULL REFERENCES periods (id),
		text TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_outlet_period ON feedback (outlet_id, period_id, id)`,
	`CREATE TABLE IF NOT EXISTS files (
		id BIGSERIAL PRIMARY KEY,
		outlet_id BIGINT NOT NULL REFERENCES outlets (id),
		period_id BIGINT NOT NULL REFERENCES periods (id),
		path TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_files_outlet_period ON files (outlet_id, period_id, id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'manager'
	)`,
	`CREATE TABLE IF NOT EXISTS outlets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		manager_id INTEGER REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS periods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
		year INTEGER NOT NULL,
		UNIQUE (month, year)
	)`,
	`CREATE TABLE IF NOT EXISTS kpis (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS updates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		outlet_id INTEGER NOT NULL REFERENCES outlets (id),
		period_id INTEGER NOT NULL REFERENCES periods (id),
		kpi_id INTEGER NOT NULL REFERENCES kpis (id),
		value REAL NOT NULL,
		note TEXT,
		recorded_by INTEGER REFERENCES users (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_updates_outlet_kpi ON updates (outlet_id, kpi_id, id)`,
	`CREATE INDEX IF NOT EXISTS idx_updates_kpi_period ON updates (kpi_id, period_id, id)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		outlet_id INTEGER NOT NULL REFERENCES outlets (id),
		period_id INTEGER NOT NULL REFERENCES periods (id),
		text TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_outlet_period ON feedback (outlet_id, period_id, id)`,
	`CREATE TABLE IF NOT EXISTS files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		outlet_id INTEGER NOT NULL REFERENCES outlets (id),
		period_id INTEGER NOT NULL REFERENCES periods (id),
		path TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_files_outlet_period ON files (outlet_id, period_id, id)`,
}

func schemaFor(driver string) ([]string, error) {
	switch driver {
	case config.DriverPostgres:
		return postgresSchema, nil
	case config.DriverSQLite:
		return sqliteSchema, nil
	}
	return nil, fmt.Errorf("database: schema indisponível para o driver %q", driver)
}

// Migrate cria as tabelas e índices em uma única transação
func Migrate(ctx context.Context, conn *Connection) error {
	statements, err := schemaFor(conn.Driver())
	if err != nil {
		return err
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return applyStatements(ctx, tx, statements)
	})
	if err != nil {
		return fmt.Errorf("database: erro ao aplicar schema: %w", err)
	}

	logrus.WithField("driver", conn.Driver()).Info("Schema do banco de dados aplicado")
	return nil
}

func applyStatements(ctx context.Context, q Queryer, statements []string) error {
	for _, stmt := range statements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
