package postgres

import (
	"market/internal/adapters/out/postgres/cartrepo"
	"market/internal/adapters/out/postgres/delivererrepo"
	"market/internal/adapters/out/postgres/orderrepo"
	"market/internal/adapters/out/postgres/productrepo"
	"market/internal/adapters/out/postgres/reviewrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&cartrepo.LineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&delivererrepo.DelivererDTO{},
		&reviewrepo.ReviewDTO{},
	)
}
