package calendar

import (
	"context"
	"fmt"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-booking/pkg/psqlbuilder"
)

var columns = []string{"blackout_date", "reason", "created_by", "created_at"}

// Repository репозиторий закрытых дней салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadBlackouts возвращает все закрытые дни
func (r *Repository) LoadBlackouts(ctx context.Context) ([]*domain.CalendarBlackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("calendar_blackouts").
		OrderBy("blackout_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadBlackouts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadBlackouts - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]*domain.CalendarBlackout, 0)
	for rows.Next() {
		var b domain.CalendarBlackout
		if err := rows.Scan(&b.Date, &b.Reason, &b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: LoadBlackouts - scan row: %v", ErrScanRow, err)
		}
		blackouts = append(blackouts, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadBlackouts - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}

// PersistBlackouts заменяет весь набор закрытых дней.
// Вызывается внутри транзакции, иначе между DELETE и INSERT набор будет пуст.
func (r *Repository) PersistBlackouts(ctx context.Context, blackouts []*domain.CalendarBlackout) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_blackouts").ToSql()
	if err != nil {
		return fmt.Errorf("%w: PersistBlackouts - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: PersistBlackouts - execute delete: %v", ErrExecQuery, err)
	}

	if len(blackouts) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("calendar_blackouts").Columns(columns...)
	for _, b := range blackouts {
		insert = insert.Values(domain.DayOf(b.Date), b.Reason, b.CreatedBy, b.CreatedAt)
	}
	query, args, err = insert.Suffix(psqlbuilder.OnConflictUpdate("blackout_date", "blackout_date")).ToSql()
	if err != nil {
		return fmt.Errorf("%w: PersistBlackouts - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: PersistBlackouts - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}
