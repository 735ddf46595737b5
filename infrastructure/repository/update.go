package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

var updateColumns = []string{"id", "outlet_id", "period_id", "kpi_id", "value", "note", "recorded_by"}

// UpdateRepository acessa o ledger de medições. Só existem inserções e leituras:
// a ordem de inserção é dada pelo id serial.
type UpdateRepository interface {
	AppendUpdate(ctx context.Context, update *domain.Update) (*domain.Update, error)
	ListByOutletAndKPI(ctx context.Context, outletID, kpiID int64) ([]*domain.Update, error)
	ListByOutletAndPeriod(ctx context.Context, outletID, periodID int64) ([]*domain.Update, error)
	ListByKPIAndPeriod(ctx context.Context, kpiID, periodID int64) ([]*domain.Update, error)
}

type updateRepository struct {
	conn database.Conn
}

func NewUpdateRepository(conn database.Conn) UpdateRepository {
	return &updateRepository{
		conn: conn,
	}
}

func (r *updateRepository) AppendUpdate(ctx context.Context, update *domain.Update) (*domain.Update, error) {
	builder := r.conn.Builder().
		Insert(updatesTable).
		Columns("outlet_id", "period_id", "kpi_id", "value", "note", "recorded_by").
		Values(update.OutletID, update.PeriodID, update.KPIID, update.Value, update.Note, update.RecordedBy)

	id, err := insertReturningID(ctx, r.conn, builder, "")
	if err != nil {
		return nil, err
	}

	update.ID = id
	return update, nil
}

func (r *updateRepository) ListByOutletAndKPI(ctx context.Context, outletID, kpiID int64) ([]*domain.Update, error) {
	return r.list(ctx, squirrel.Eq{"outlet_id": outletID, "kpi_id": kpiID})
}

func (r *updateRepository) ListByOutletAndPeriod(ctx context.Context, outletID, periodID int64) ([]*domain.Update, error) {
	return r.list(ctx, squirrel.Eq{"outlet_id": outletID, "period_id": periodID})
}

func (r *updateRepository) ListByKPIAndPeriod(ctx context.Context, kpiID, periodID int64) ([]*domain.Update, error) {
	return r.list(ctx, squirrel.Eq{"kpi_id": kpiID, "period_id": periodID})
}

func (r *updateRepository) list(ctx context.Context, where squirrel.Eq) ([]*domain.Update, error) {
	query, args, err := r.conn.Builder().
		Select(updateColumns...).
		From(updatesTable).
		Where(where).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, database.WrapError(err, "erro ao montar consulta de medições")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.WrapError(err, "erro ao consultar medições")
	}
	defer rows.Close()

	updates := []*domain.Update{}
	for rows.Next() {
		var (
			update     domain.Update
			note       sql.NullString
			recordedBy sql.NullInt64
		)
		if err := rows.Scan(
			&update.ID,
			&update.OutletID,
			&update.PeriodID,
			&update.KPIID,
			&update.Value,
			&note,
			&recordedBy,
		); err != nil {
			return nil, database.WrapError(err, "erro ao ler medição")
		}
		update.Note = nullableString(note)
		update.RecordedBy = nullableInt64(recordedBy)
		updates = append(updates, &update)
	}

	return updates, rows.Err()
}
