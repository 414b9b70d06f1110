package manage_catalog

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// CatalogStore каталог цен (обычно кеш поверх Postgres)
type CatalogStore interface {
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)
	SaveCatalog(ctx context.Context, c *domain.Catalog) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
