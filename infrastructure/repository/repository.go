// Package repository implementa o acesso ao banco de dados (postgres ou sqlite) via squirrel
package repository

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks
//go:generate mockgen -source=outlet.go -destination=mocks/outlet_mock.go -package=mocks
//go:generate mockgen -source=period.go -destination=mocks/period_mock.go -package=mocks
//go:generate mockgen -source=kpi.go -destination=mocks/kpi_mock.go -package=mocks
//go:generate mockgen -source=update.go -destination=mocks/update_mock.go -package=mocks
//go:generate mockgen -source=feedback.go -destination=mocks/feedback_mock.go -package=mocks
//go:generate mockgen -source=file_record.go -destination=mocks/file_record_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

const (
	usersTable    = "users"
	outletsTable  = "outlets"
	periodsTable  = "periods"
	kpisTable     = "kpis"
	updatesTable  = "updates"
	feedbackTable = "feedback"
	filesTable    = "files"
)

// insertReturningID executa o INSERT e devolve o id serial atribuído.
// Violações de unicidade viram ErrConflict e de chave estrangeira viram ErrNotFound.
func insertReturningID(ctx context.Context, conn database.Conn, builder squirrel.InsertBuilder, conflictField string) (int64, error) {
	query, args, err := builder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, database.WrapError(err, "erro ao montar insert")
	}

	var id int64
	err = conn.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
		return id, nil
	case database.IsUniqueViolation(err):
		return 0, domain.NewConflictError(conflictField, "registro já existe")
	case database.IsForeignKeyViolation(err):
		return 0, domain.NewBrokenReferenceError()
	}

	return 0, database.WrapError(err, "erro ao inserir registro")
}

// exists verifica se há uma linha com o id informado
func exists(ctx context.Context, conn database.Conn, table string, id int64) (bool, error) {
	query, args, err := conn.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, database.WrapError(err, "erro ao montar consulta")
	}

	var one int
	err = conn.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, database.WrapError(err, "erro ao consultar "+table)
	}

	return true, nil
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
