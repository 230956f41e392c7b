package ports

import (
	"context"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	// Add persists a new review aggregate to storage.
	Add(ctx context.Context, aggregate *review.Review) error

	// Update persists changes to an existing review aggregate.
	Update(ctx context.Context, aggregate *review.Review) error

	// GetByOrderAndBuyer retrieves the buyer's review of the given order.
	// Returns ObjectNotFoundError if the buyer has not reviewed it yet.
	GetByOrderAndBuyer(ctx context.Context, orderID kernel.UUID, buyer kernel.ChatID) (*review.Review, error)

	// GetAllForDeliverer retrieves every review left for the deliverer,
	// the input for recomputing the rating summary.
	GetAllForDeliverer(ctx context.Context, delivererID kernel.UUID) ([]*review.Review, error)
}
