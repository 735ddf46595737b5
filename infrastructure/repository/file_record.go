package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

type FileRecordRepository interface {
	AppendFile(ctx context.Context, file *domain.FileRecord) (*domain.FileRecord, error)
	ListByOutletAndPeriod(ctx context.Context, outletID, periodID int64) ([]*domain.FileRecord, error)
}

type fileRecordRepository struct {
	conn database.Conn
}

func NewFileRecordRepository(conn database.Conn) FileRecordRepository {
	return &fileRecordRepository{
		conn: conn,
	}
}

func (r *fileRecordRepository) AppendFile(ctx context.Context, file *domain.FileRecord) (*domain.FileRecord, error) {
	builder := r.conn.Builder().
		Insert(filesTable).
		Columns("outlet_id", "period_id", "path").
		Values(file.OutletID, file.PeriodID, file.Path)

	id, err := insertReturningID(ctx, r.conn, builder, "")
	if err != nil {
		return nil, err
	}

	file.ID = id
	return file, nil
}

func (r *fileRecordRepository) ListByOutletAndPeriod(ctx context.Context, outletID, periodID int64) ([]*domain.FileRecord, error) {
	query, args, err := r.conn.Builder().
		Select("id", "outlet_id", "period_id", "path").
		From(filesTable).
		Where(squirrel.Eq{"outlet_id": outletID, "period_id": periodID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, database.WrapError(err, "erro ao montar consulta de arquivos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.WrapError(err, "erro ao consultar arquivos")
	}
	defer rows.Close()

	files := []*domain.FileRecord{}
	for rows.Next() {
		var file domain.FileRecord
		if err := rows.Scan(&file.ID, &file.OutletID, &file.PeriodID, &file.Path); err != nil {
			return nil, database.WrapError(err, "erro ao ler arquivo")
		}
		files = append(files, &file)
	}

	return files, rows.Err()
}
