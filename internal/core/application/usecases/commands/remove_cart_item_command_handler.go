package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles the business logic for dropping a
// product from a buyer's cart. Removal is idempotent: deleting a line the
// buyer does not have succeeds without effect.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart remove operations.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove command.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	if err := uow.CartRepository().Remove(ctx, cmd.Buyer(), cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
