package ports

import (
	"context"

	"market/internal/core/domain/model/deliverer"
	"market/internal/core/domain/model/kernel"
)

// DelivererRepository defines the persistence contract for deliverer aggregates.
type DelivererRepository interface {
	// Add persists a new deliverer aggregate to storage.
	Add(ctx context.Context, aggregate *deliverer.Deliverer) error

	// Update persists changes to an existing deliverer aggregate.
	Update(ctx context.Context, aggregate *deliverer.Deliverer) error

	// Get retrieves a deliverer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error)

	// GetByChat retrieves the deliverer registered under the given
	// messaging-platform identity. Returns ObjectNotFoundError if the
	// chat belongs to no deliverer.
	GetByChat(ctx context.Context, chat kernel.ChatID) (*deliverer.Deliverer, error)

	// GetAllActive retrieves every deliverer currently taking orders.
	// This is the recipient pool for new-order fan-out.
	GetAllActive(ctx context.Context) ([]*deliverer.Deliverer, error)
}
