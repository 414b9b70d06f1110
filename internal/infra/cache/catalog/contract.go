package catalog

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Source основное хранилище каталога
type Source interface {
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)
	SaveCatalog(ctx context.Context, c *domain.Catalog) error
}

// Metrics учёт попаданий в кеш
type Metrics interface {
	RecordCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
