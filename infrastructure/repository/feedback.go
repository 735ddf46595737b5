package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

type FeedbackRepository interface {
	AppendFeedback(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error)
	ListByOutletAndPeriod(ctx context.Context, outletID, periodID int64) ([]*domain.Feedback, error)
	ListByOutlet(ctx context.Context, outletID int64) ([]*domain.Feedback, error)
}

type feedbackRepository struct {
	conn database.Conn
}

func NewFeedbackRepository(conn database.Conn) FeedbackRepository {
	return &feedbackRepository{
		conn: conn,
	}
}

func (r *feedbackRepository) AppendFeedback(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error) {
	builder := r.conn.Builder().
		Insert(feedbackTable).
		Columns("outlet_id", "period_id", "text").
		Values(feedback.OutletID, feedback.PeriodID, feedback.Text)

	id, err := insertReturningID(ctx, r.conn, builder, "")
	if err != nil {
		return nil, err
	}

	feedback.ID = id
	return feedback, nil
}

func (r *feedbackRepository) ListByOutletAndPeriod(ctx context.Context, outletID, periodID int64) ([]*domain.Feedback, error) {
	return r.list(ctx, squirrel.Eq{"outlet_id": outletID, "period_id": periodID}, "id ASC")
}

// ListByOutlet agrupa por período e mantém a ordem de inserção dentro de cada um
func (r *feedbackRepository) ListByOutlet(ctx context.Context, outletID int64) ([]*domain.Feedback, error) {
	return r.list(ctx, squirrel.Eq{"outlet_id": outletID}, "period_id ASC", "id ASC")
}

func (r *feedbackRepository) list(ctx context.Context, where squirrel.Eq, orderBy ...string) ([]*domain.Feedback, error) {
	query, args, err := r.conn.Builder().
		Select("id", "outlet_id", "period_id", "text").
		From(feedbackTable).
		Where(where).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		return nil, database.WrapError(err, "erro ao montar consulta de feedbacks")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.WrapError(err, "erro ao consultar feedbacks")
	}
	defer rows.Close()

	items := []*domain.Feedback{}
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.OutletID, &fb.PeriodID, &fb.Text); err != nil {
			return nil, database.WrapError(err, "erro ao ler feedback")
		}
		items = append(items, &fb)
	}

	return items, rows.Err()
}
