package repository

import (
	"context"
	"database/sql"

	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

type OutletRepository interface {
	CreateOutlet(ctx context.Context, outlet *domain.Outlet) (*domain.Outlet, error)
	ListOutlets(ctx context.Context) ([]*domain.Outlet, error)
	ExistsOutlet(ctx context.Context, id int64) (bool, error)
}

type outletRepository struct {
	conn database.Conn
}

func NewOutletRepository(conn database.Conn) OutletRepository {
	return &outletRepository{
		conn: conn,
	}
}

func (r *outletRepository) CreateOutlet(ctx context.Context, outlet *domain.Outlet) (*domain.Outlet, error) {
	builder := r.conn.Builder().
		Insert(outletsTable).
		Columns("name", "manager_id").
		Values(outlet.Name, outlet.ManagerID)

	id, err := insertReturningID(ctx, r.conn, builder, "name")
	if err != nil {
		return nil, err
	}

	outlet.ID = id
	return outlet, nil
}

func (r *outletRepository) ListOutlets(ctx context.Context) ([]*domain.Outlet, error) {
	query, args, err := r.conn.Builder().
		Select("id", "name", "manager_id").
		From(outletsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, database.WrapError(err, "erro ao montar consulta de lojas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.WrapError(err, "erro ao listar lojas")
	}
	defer rows.Close()

	outlets := []*domain.Outlet{}
	for rows.Next() {
		var (
			outlet    domain.Outlet
			managerID sql.NullInt64
		)
		if err := rows.Scan(&outlet.ID, &outlet.Name, &managerID); err != nil {
			return nil, database.WrapError(err, "erro ao ler loja")
		}
		outlet.ManagerID = nullableInt64(managerID)
		outlets = append(outlets, &outlet)
	}

	return outlets, rows.Err()
}

func (r *outletRepository) ExistsOutlet(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.conn, outletsTable, id)
}
