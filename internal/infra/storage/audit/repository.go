package audit

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-booking/pkg/psqlbuilder"
)

var columns = []string{"id", "booking_id", "action", "message", "actor", "created_at"}

// Repository append-only репозиторий журнала изменений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// AppendAuditEntry добавляет запись в журнал.
// Если в контексте передана активная транзакция, запись попадёт в неё.
func (r *Repository) AppendAuditEntry(ctx context.Context, e *domain.AuditEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("audit_entries").
		Columns(columns...).
		Values(e.ID, e.BookingID, e.Action, e.Message, e.Actor, e.Timestamp).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AppendAuditEntry - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AppendAuditEntry - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// LoadAuditEntries возвращает записи в порядке добавления; bookingID == nil означает все записи
func (r *Repository) LoadAuditEntries(ctx context.Context, bookingID *string) ([]*domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("audit_entries").
		OrderBy("seq")
	if bookingID != nil {
		builder = builder.Where(squirrel.Eq{"booking_id": *bookingID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAuditEntries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAuditEntries - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.AuditEntry, 0)
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.BookingID, &e.Action, &e.Message, &e.Actor, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: LoadAuditEntries - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadAuditEntries - rows error: %v", ErrScanRow, err)
	}
	return entries, nil
}
