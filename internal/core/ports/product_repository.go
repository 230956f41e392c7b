package ports

import (
	"context"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
//
// Inventory counters are raced by checkout deductions and restocks, so
// mutating flows read through the ForUpdate variants: the row stays locked
// until the surrounding transaction ends and the subsequent Update cannot
// lose a concurrent write.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product and locks its row for the
	// duration of the current transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetManyForUpdate retrieves the given products and locks their rows
	// for the duration of the current transaction. Rows are locked in a
	// stable id order so two concurrent checkouts cannot deadlock on
	// overlapping product sets. Missing ids are not an error; the caller
	// checks the returned set.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
