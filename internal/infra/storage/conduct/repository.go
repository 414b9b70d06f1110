package conduct

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-booking/pkg/psqlbuilder"
)

var columns = []string{
	"customer_id",
	"warning_count",
	"warnings",
	"is_banned",
	"ban_reason",
	"banned_at",
	"lifted_at",
	"last_warning_at",
	"updated_at",
}

type warningJSON struct {
	Reason    string    `json:"reason"`
	BookingID *string   `json:"bookingId,omitempty"`
	IssuedBy  string    `json:"issuedBy"`
	IssuedAt  time.Time `json:"issuedAt"`
}

// Repository репозиторий записей о поведении клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadConductRecord возвращает запись клиента или чистую запись, если её ещё нет
func (r *Repository) LoadConductRecord(ctx context.Context, customerID string) (*domain.ConductRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("conduct_records").
		Where(squirrel.Eq{"customer_id": customerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadConductRecord - build select query: %v", ErrBuildQuery, err)
	}

	record, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewConductRecord(customerID), nil
		}
		return nil, err
	}
	return record, nil
}

// ListConductRecords возвращает все записи, отсортированные по клиенту
func (r *Repository) ListConductRecords(ctx context.Context) ([]*domain.ConductRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("conduct_records").
		OrderBy("customer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConductRecords - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConductRecords - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.ConductRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConductRecords - rows error: %v", ErrScanRow, err)
	}
	return records, nil
}

// PersistConductRecord создает или обновляет запись клиента
func (r *Repository) PersistConductRecord(ctx context.Context, record *domain.ConductRecord) error {
	warnings := make([]warningJSON, 0, len(record.Warnings))
	for _, w := range record.Warnings {
		warnings = append(warnings, warningJSON(w))
	}
	raw, err := json.Marshal(warnings)
	if err != nil {
		return fmt.Errorf("%w: PersistConductRecord - encode warnings: %v", ErrBuildQuery, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("conduct_records").
		Columns(columns...).
		Values(
			record.CustomerID,
			record.WarningCount,
			raw,
			record.IsBanned,
			record.BanReason,
			record.BannedAt,
			record.LiftedAt,
			record.LastWarningAt,
			record.UpdatedAt,
		).
		Suffix(psqlbuilder.OnConflictUpdate("customer_id", columns...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: PersistConductRecord - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: PersistConductRecord - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*domain.ConductRecord, error) {
	var (
		record                   domain.ConductRecord
		raw                      []byte
		banReason                sql.NullString
		bannedAt, liftedAt, last sql.NullTime
	)

	err := row.Scan(
		&record.CustomerID,
		&record.WarningCount,
		&raw,
		&record.IsBanned,
		&banReason,
		&bannedAt,
		&liftedAt,
		&last,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scanRecord - scan row: %v", ErrScanRow, err)
	}

	var warnings []warningJSON
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &warnings); err != nil {
			return nil, fmt.Errorf("%w: customer %s: %v", ErrDecode, record.CustomerID, err)
		}
	}
	for _, w := range warnings {
		record.Warnings = append(record.Warnings, domain.WarningEntry(w))
	}

	if banReason.Valid {
		v := banReason.String
		record.BanReason = &v
	}
	record.BannedAt = nullTime(bannedAt)
	record.LiftedAt = nullTime(liftedAt)
	record.LastWarningAt = nullTime(last)

	return &record, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
