package activity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	"github.com/m04kA/SMC-CallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallBookingService/pkg/psqlbuilder"
)

// Repository репозиторий журнала активности бронирований
// Записи создаются best-effort: вызывающая сторона логирует ошибку,
// но не откатывает родительскую операцию
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала активности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись журнала активности
func (r *Repository) Create(ctx context.Context, record *domain.ActivityRecord) (*domain.ActivityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("activity_log").
		Columns(
			"booking_id",
			"action",
			"details",
		).
		Values(
			record.BookingID,
			record.Action,
			record.Details,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// GetByBookingID получает записи журнала по бронированию (по возрастанию времени)
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.ActivityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"action",
		"details",
		"created_at",
	).
		From("activity_log").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.ActivityRecord, 0)
	for rows.Next() {
		var record domain.ActivityRecord
		var createdAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.BookingID,
			&record.Action,
			&record.Details,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}

		record.CreatedAt = createdAt.Time
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
