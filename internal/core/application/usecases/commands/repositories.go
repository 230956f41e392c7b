// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"market/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DelivererRepoFactory provides access to the deliverer repository within a transaction.
	DelivererRepoFactory interface {
		DelivererRepository() ports.DelivererRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// CartUoW manages transactions for cart-only operations.
	// Used when commands only touch the buyer's cart lines.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CartProductUoW manages transactions that read products while
	// mutating cart lines, such as adding a catalog item to the cart.
	CartProductUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
	}

	// CartProductUoWFactory creates new cart+product unit of work instances.
	CartProductUoWFactory interface {
		Create() CartProductUoW
	}

	// CheckoutUoW manages the cart-to-order conversion transaction. It
	// spans the cart, inventory, and order aggregates so the deductions,
	// the consumed-line deletions, and the new order commit or roll back
	// as one unit.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cartRepo := uow.CartRepository()
	//   productRepo := uow.ProductRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform the conversion
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderDelivererUoW manages transactions that move an order through
	// its lifecycle on behalf of an actor, resolving the deliverer as needed.
	OrderDelivererUoW interface {
		TxManager
		OrderRepoFactory
		DelivererRepoFactory
	}

	// OrderDelivererUoWFactory creates new order+deliverer unit of work instances.
	OrderDelivererUoWFactory interface {
		Create() OrderDelivererUoW
	}

	// DelivererUoW manages transactions for deliverer-only operations.
	DelivererUoW interface {
		TxManager
		DelivererRepoFactory
	}

	// DelivererUoWFactory creates new deliverer unit of work instances.
	DelivererUoWFactory interface {
		Create() DelivererUoW
	}

	// ProductUoW manages transactions for inventory-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// ReviewUoW manages the review submission transaction: the review
	// upsert, the order ownership checks, and the deliverer's rating
	// summary recompute happen as one unit.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
		DelivererRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
