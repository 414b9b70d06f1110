package main

import (
	"context"
	"fmt"
	"os"

	catalogCache "github.com/bestbuddies/grooming-booking/internal/infra/cache/catalog"
	catalogRepo "github.com/bestbuddies/grooming-booking/internal/infra/storage/catalog"
)

// seedCatalog заменяет каталог содержимым JSON-файла
func seedCatalog(ctx context.Context, store *catalogCache.Cache, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	c, err := catalogRepo.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return store.SaveCatalog(ctx, c)
}
