package commands

import (
	"context"

	"market/internal/core/domain/model/product"
)

// AddToCartCommandHandler handles the business logic for adding catalog
// items to a buyer's cart.
//
// Example:
//
//	handler := NewAddToCartCommandHandler(uowFactory)
//	cmd, _ := NewAddToCartCommand(buyer, productID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddToCartCommandHandler struct {
	uowFactory CartProductUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart add operations.
// Requires a CartProductUoWFactory for transactional persistence.
func NewAddToCartCommandHandler(uowFactory CartProductUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command.
// Verifies the product exists and is on sale, then increments the
// buyer's cart line for it atomically (the line is created on first add).
func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !p.IsAvailable() {
		return product.ErrProductUnavailable
	}

	if err = uow.CartRepository().Increment(ctx, cmd.Buyer(), cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
