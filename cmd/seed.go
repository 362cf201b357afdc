package cmd

import (
	"context"
	"log/slog"

	"webshop/internal/adapters/out/postgres/productrepo"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency during seeding,
// where no unit of work is in flight.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ int, _ any) {}

type seedRecord struct {
	id       int
	location kernel.Location
	name     string
	price    float64
	quantity int
}

var defaultCatalog = []seedRecord{
	{1, kernel.Munich, "wireless mouse", 25.00, 10},
	{1, kernel.Cologne, "wireless mouse", 25.00, 5},
	{2, kernel.Frankfurt, "mechanical keyboard", 120.00, 4},
	{2, kernel.Munich, "mechanical keyboard", 120.00, 2},
	{3, kernel.Cologne, "usb-c dock", 180.00, 6},
	{4, kernel.Munich, "4k monitor", 320.00, 3},
	{4, kernel.Frankfurt, "4k monitor", 320.00, 3},
	{4, kernel.Cologne, "4k monitor", 320.00, 1},
}

// SeedCatalog populates the products table with the default catalog when it
// is empty. An already populated catalog is left untouched.
func SeedCatalog(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&productrepo.ProductDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repo := productrepo.NewGormProductRepository(db, noopTracker{})
	for _, record := range defaultCatalog {
		price := record.price
		p, err := product.NewProduct(record.id, record.location, record.name, &price, record.quantity)
		if err != nil {
			return err
		}
		if err := repo.Add(ctx, p); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "Catalog seeded", "records", len(defaultCatalog))
	return nil
}
