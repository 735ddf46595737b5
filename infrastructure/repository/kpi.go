package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

type KPIRepository interface {
	CreateKPI(ctx context.Context, kpi *domain.KPI) (*domain.KPI, error)
	ListKPIs(ctx context.Context) ([]*domain.KPI, error)
	ExistsKPI(ctx context.Context, id int64) (bool, error)
	GetKPIByID(ctx context.Context, id int64) (*domain.KPI, error)
}

type kpiRepository struct {
	conn database.Conn
}

func NewKPIRepository(conn database.Conn) KPIRepository {
	return &kpiRepository{
		conn: conn,
	}
}

func (r *kpiRepository) CreateKPI(ctx context.Context, kpi *domain.KPI) (*domain.KPI, error) {
	builder := r.conn.Builder().
		Insert(kpisTable).
		Columns("name").
		Values(kpi.Name)

	id, err := insertReturningID(ctx, r.conn, builder, "name")
	if err != nil {
		return nil, err
	}

	kpi.ID = id
	return kpi, nil
}

func (r *kpiRepository) ListKPIs(ctx context.Context) ([]*domain.KPI, error) {
	query, args, err := r.conn.Builder().
		Select("id", "name").
		From(kpisTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, database.WrapError(err, "erro ao montar consulta de KPIs")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.WrapError(err, "erro ao listar KPIs")
	}
	defer rows.Close()

	kpis := []*domain.KPI{}
	for rows.Next() {
		var kpi domain.KPI
		if err := rows.Scan(&kpi.ID, &kpi.Name); err != nil {
			return nil, database.WrapError(err, "erro ao ler KPI")
		}
		kpis = append(kpis, &kpi)
	}

	return kpis, rows.Err()
}

func (r *kpiRepository) ExistsKPI(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.conn, kpisTable, id)
}

// GetKPIByID retorna nil, nil quando o KPI não existe
func (r *kpiRepository) GetKPIByID(ctx context.Context, id int64) (*domain.KPI, error) {
	query, args, err := r.conn.Builder().
		Select("id", "name").
		From(kpisTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, database.WrapError(err, "erro ao montar consulta de KPI")
	}

	var kpi domain.KPI
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&kpi.ID, &kpi.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.WrapError(err, "erro ao buscar KPI")
	}

	return &kpi, nil
}
