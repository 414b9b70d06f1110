package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-booking/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"short_code",
	"customer_id",
	"customer_name",
	"phone",
	"pet",
	"package_id",
	"package_name",
	"single_services",
	"add_ons",
	"groomer_id",
	"groomer_name",
	"booking_date",
	"time_slot",
	"status",
	"source",
	"cost",
	"base_price",
	"total_price",
	"notes",
	"cancellation_note",
	"completion_note",
	"before_media",
	"after_media",
	"featured",
	"rescheduled_from",
	"created_at",
	"updated_at",
	"started_at",
	"completed_at",
	"cancelled_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadBookings читает полный набор бронирований.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) LoadBookings(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("bookings").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadBookings - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// PersistBookings сохраняет изменённые бронирования (upsert по id).
// Бронирования никогда не удаляются, поэтому это эквивалентно записи полного набора.
func (r *Repository) PersistBookings(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("bookings").Columns(columns...)
	for _, b := range bookings {
		values, err := r.values(b)
		if err != nil {
			return err
		}
		insert = insert.Values(values...)
	}

	query, args, err := insert.Suffix(psqlbuilder.OnConflictUpdate("id", columns...)).ToSql()
	if err != nil {
		return fmt.Errorf("%w: PersistBookings - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: PersistBookings - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) values(b *domain.Booking) ([]interface{}, error) {
	pet, err := encodePet(b.Pet)
	if err != nil {
		return nil, fmt.Errorf("%w: pet of booking %s: %v", ErrEncode, b.ID, err)
	}
	addOns, err := encodeAddOns(b.AddOns)
	if err != nil {
		return nil, fmt.Errorf("%w: add-ons of booking %s: %v", ErrEncode, b.ID, err)
	}
	cost, err := encodeCost(b.Cost)
	if err != nil {
		return nil, fmt.Errorf("%w: cost of booking %s: %v", ErrEncode, b.ID, err)
	}

	return []interface{}{
		b.ID,
		b.ShortCode,
		b.CustomerID,
		b.CustomerName,
		b.Phone,
		pet,
		b.PackageID,
		b.PackageName,
		pq.Array(b.SingleServices),
		addOns,
		b.GroomerID,
		b.GroomerName,
		b.Date,
		string(b.Slot),
		string(b.Status),
		b.Source,
		cost,
		b.BasePrice,
		b.TotalPrice,
		b.Notes,
		b.CancellationNote,
		b.CompletionNote,
		b.BeforeMedia,
		b.AfterMedia,
		b.Featured,
		b.RescheduledFrom,
		b.CreatedAt,
		b.UpdatedAt,
		b.StartedAt,
		b.CompletedAt,
		b.CancelledAt,
	}, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var (
			booking                domain.Booking
			pet, addOns, cost      []byte
			slot, status           string
			createdAt, updatedAt   sql.NullTime
			startedAt, completedAt sql.NullTime
			cancelledAt            sql.NullTime
			basePrice              sql.NullFloat64
			groomerID              sql.NullString
			singleServices         []string
		)

		err := rows.Scan(
			&booking.ID,
			&booking.ShortCode,
			&booking.CustomerID,
			&booking.CustomerName,
			&booking.Phone,
			&pet,
			&booking.PackageID,
			&booking.PackageName,
			pq.Array(&singleServices),
			&addOns,
			&groomerID,
			&booking.GroomerName,
			&booking.Date,
			&slot,
			&status,
			&booking.Source,
			&cost,
			&basePrice,
			&booking.TotalPrice,
			&booking.Notes,
			&booking.CancellationNote,
			&booking.CompletionNote,
			&booking.BeforeMedia,
			&booking.AfterMedia,
			&booking.Featured,
			&booking.RescheduledFrom,
			&createdAt,
			&updatedAt,
			&startedAt,
			&completedAt,
			&cancelledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		// Статусы из старых записей бывают в произвольном написании
		booking.Status, err = domain.ParseBookingStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %s: %v", ErrInvalidStatus, booking.ID, err)
		}
		booking.Slot, err = domain.ParseTimeSlot(slot)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - booking %s: %v", ErrScanRow, booking.ID, err)
		}
		if booking.Pet, err = decodePet(pet); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - pet of %s: %v", ErrScanRow, booking.ID, err)
		}
		if booking.AddOns, err = decodeAddOns(addOns); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - add-ons of %s: %v", ErrScanRow, booking.ID, err)
		}
		if booking.Cost, err = decodeCost(cost); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - cost of %s: %v", ErrScanRow, booking.ID, err)
		}

		booking.SingleServices = singleServices
		if groomerID.Valid && groomerID.String != "" {
			id := groomerID.String
			booking.GroomerID = &id
		}
		if basePrice.Valid {
			v := basePrice.Float64
			booking.BasePrice = &v
		}
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time
		booking.StartedAt = nullTime(startedAt)
		booking.CompletedAt = nullTime(completedAt)
		booking.CancelledAt = nullTime(cancelledAt)

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
