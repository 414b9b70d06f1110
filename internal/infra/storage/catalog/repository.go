package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-booking/pkg/psqlbuilder"
)

// defaultKey ключ единственного документа каталога
const defaultKey = "default"

// Repository репозиторий каталога цен
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadCatalog читает каталог. Возвращает nil, если каталог ещё не сохранён.
func (r *Repository) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("document").
		From("catalog").
		Where(squirrel.Eq{"key": defaultKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadCatalog - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: LoadCatalog - scan row: %v", ErrScanRow, err)
	}

	c, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return c, nil
}

// SaveCatalog заменяет документ каталога
func (r *Repository) SaveCatalog(ctx context.Context, c *domain.Catalog) error {
	raw, err := Encode(c)
	if err != nil {
		return fmt.Errorf("%w: SaveCatalog - encode document: %v", ErrBuildQuery, err)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("catalog").
		Columns("key", "document", "updated_at").
		Values(defaultKey, raw, squirrel.Expr("NOW()")).
		Suffix(psqlbuilder.OnConflictUpdate("key", "document", "updated_at")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveCatalog - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveCatalog - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}
