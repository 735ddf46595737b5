package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

type PeriodRepository interface {
	CreatePeriod(ctx context.Context, period *domain.Period) (*domain.Period, error)
	ListPeriods(ctx context.Context) ([]*domain.Period, error)
	ExistsPeriod(ctx context.Context, id int64) (bool, error)
	GetPeriodByID(ctx context.Context, id int64) (*domain.Period, error)
	GetPeriodsByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Period, error)
}

type periodRepository struct {
	conn database.Conn
}

func NewPeriodRepository(conn database.Conn) PeriodRepository {
	return &periodRepository{
		conn: conn,
	}
}

func (r *periodRepository) CreatePeriod(ctx context.Context, period *domain.Period) (*domain.Period, error) {
	builder := r.conn.Builder().
		Insert(periodsTable).
		Columns("month", "year").
		Values(period.Month, period.Year)

	id, err := insertReturningID(ctx, r.conn, builder, "month,year")
	if err != nil {
		return nil, err
	}

	period.ID = id
	return period, nil
}

// ListPeriods retorna os períodos em ordem cronológica
func (r *periodRepository) ListPeriods(ctx context.Context) ([]*domain.Period, error) {
	return r.list(ctx, r.conn.Builder().
		Select("id", "month", "year").
		From(periodsTable).
		OrderBy("year ASC", "month ASC"))
}

func (r *periodRepository) ExistsPeriod(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.conn, periodsTable, id)
}

// GetPeriodByID retorna nil, nil quando o período não existe
func (r *periodRepository) GetPeriodByID(ctx context.Context, id int64) (*domain.Period, error) {
	query, args, err := r.conn.Builder().
		Select("id", "month", "year").
		From(periodsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, database.WrapError(err, "erro ao montar consulta de período")
	}

	var period domain.Period
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&period.ID, &period.Month, &period.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.WrapError(err, "erro ao buscar período")
	}

	return &period, nil
}

// GetPeriodsByIDs busca vários períodos de uma vez, indexados pelo id
func (r *periodRepository) GetPeriodsByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Period, error) {
	result := make(map[int64]*domain.Period, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	periods, err := r.list(ctx, r.conn.Builder().
		Select("id", "month", "year").
		From(periodsTable).
		Where(squirrel.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}

	for _, p := range periods {
		result[p.ID] = p
	}
	return result, nil
}

func (r *periodRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Period, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, database.WrapError(err, "erro ao montar consulta de períodos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.WrapError(err, "erro ao listar períodos")
	}
	defer rows.Close()

	periods := []*domain.Period{}
	for rows.Next() {
		var period domain.Period
		if err := rows.Scan(&period.ID, &period.Month, &period.Year); err != nil {
			return nil, database.WrapError(err, "erro ao ler período")
		}
		periods = append(periods, &period)
	}

	return periods, rows.Err()
}
