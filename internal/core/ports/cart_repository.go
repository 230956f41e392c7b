// Package ports defines the contracts between the application core and
// infrastructure: repositories for the shop aggregates, the unit of work
// transaction boundary, and the outbound message sender used for
// notification fan-out. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"market/internal/core/domain/model/cart"
	"market/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart lines.
//
// Cart quantities are counters raced by repeated buyer taps, so the
// mutating reads lock their rows and Increment is a single atomic
// upsert rather than read-modify-write in the caller.
type CartRepository interface {
	// Increment adds one unit of the product to the buyer's cart,
	// creating the line if it does not exist yet. The operation is
	// atomic per (buyer, product) pair.
	Increment(ctx context.Context, buyer kernel.ChatID, productID kernel.UUID) error

	// GetForUpdate retrieves one cart line and locks its row for the
	// duration of the current transaction. Returns ObjectNotFoundError
	// if the buyer has no such line.
	GetForUpdate(ctx context.Context, buyer kernel.ChatID, productID kernel.UUID) (*cart.Line, error)

	// GetAllForBuyerForUpdate retrieves every cart line of the buyer and
	// locks the rows for the duration of the current transaction, so two
	// concurrent checkouts cannot consume the same lines twice.
	GetAllForBuyerForUpdate(ctx context.Context, buyer kernel.ChatID) ([]*cart.Line, error)

	// Update persists a changed quantity on an existing cart line.
	Update(ctx context.Context, line *cart.Line) error

	// Remove deletes one cart line.
	Remove(ctx context.Context, buyer kernel.ChatID, productID kernel.UUID) error

	// RemoveMany deletes the buyer's cart lines for the given products.
	// Used by checkout to clear the consumed lines in one statement.
	RemoveMany(ctx context.Context, buyer kernel.ChatID, productIDs []kernel.UUID) error
}
