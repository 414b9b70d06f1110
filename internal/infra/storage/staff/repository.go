package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-booking/pkg/psqlbuilder"
)

var (
	groomerColumns = []string{"id", "name", "specialty", "max_daily_bookings", "sort_order", "active"}
	absenceColumns = []string{"id", "groomer_id", "absence_date", "status", "reason", "created_at"}
)

// Repository репозиторий грумеров и их отсутствий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория персонала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadGroomers возвращает всех грумеров в порядке их определения
func (r *Repository) LoadGroomers(ctx context.Context) ([]*domain.Groomer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groomerColumns...).
		From("groomers").
		OrderBy("sort_order", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadGroomers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadGroomers - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	groomers := make([]*domain.Groomer, 0)
	for rows.Next() {
		var g domain.Groomer
		if err := rows.Scan(&g.ID, &g.Name, &g.Specialty, &g.MaxDailyBookings, &g.Order, &g.Active); err != nil {
			return nil, fmt.Errorf("%w: LoadGroomers - scan row: %v", ErrScanRow, err)
		}
		groomers = append(groomers, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadGroomers - rows error: %v", ErrScanRow, err)
	}

	return groomers, nil
}

// SaveGroomer создает или обновляет грумера
func (r *Repository) SaveGroomer(ctx context.Context, g *domain.Groomer) error {
	if g.MaxDailyBookings < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxDailyBookings, g.MaxDailyBookings)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("groomers").
		Columns(groomerColumns...).
		Values(g.ID, g.Name, g.Specialty, g.MaxDailyBookings, g.Order, g.Active).
		Suffix(psqlbuilder.OnConflictUpdate("id", groomerColumns...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveGroomer - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveGroomer - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// LoadAbsences возвращает все запросы на отсутствие
func (r *Repository) LoadAbsences(ctx context.Context) ([]*domain.Absence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(absenceColumns...).
		From("groomer_absences").
		OrderBy("absence_date", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAbsences - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAbsences - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAbsences(rows)
}

// SaveAbsence создает или обновляет запрос на отсутствие
func (r *Repository) SaveAbsence(ctx context.Context, a *domain.Absence) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("groomer_absences").
		Columns(absenceColumns...).
		Values(a.ID, a.GroomerID, a.Date, string(a.Status), a.Reason, a.CreatedAt).
		Suffix(psqlbuilder.OnConflictUpdate("id", absenceColumns...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveAbsence - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveAbsence - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

func scanAbsences(rows *sql.Rows) ([]*domain.Absence, error) {
	absences := make([]*domain.Absence, 0)
	for rows.Next() {
		var (
			a      domain.Absence
			status string
		)
		if err := rows.Scan(&a.ID, &a.GroomerID, &a.Date, &status, &a.Reason, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanAbsences - scan row: %v", ErrScanRow, err)
		}
		a.Status = domain.AbsenceStatus(status)
		absences = append(absences, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAbsences - rows error: %v", ErrScanRow, err)
	}
	return absences, nil
}
