package commands

import (
	"context"
)

// ReduceCartItemCommandHandler handles the business logic for taking one
// unit of a product out of a buyer's cart.
type ReduceCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewReduceCartItemCommandHandler creates a handler for cart reduce operations.
func NewReduceCartItemCommandHandler(uowFactory CartUoWFactory) ReduceCartItemCommandHandler {
	return ReduceCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reduce command.
// Locks the cart line, decrements its quantity, and removes the line when
// the last unit goes. Reducing a line the buyer does not have surfaces
// the repository's not-found error.
func (h ReduceCartItemCommandHandler) Handle(ctx context.Context, cmd ReduceCartItemCommand) error {
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

	cartRepo := uow.CartRepository()

	line, err := cartRepo.GetForUpdate(ctx, cmd.Buyer(), cmd.ProductID())
	if err != nil {
		return err
	}

	if line.Reduce() {
		err = cartRepo.Update(ctx, line)
	} else {
		err = cartRepo.Remove(ctx, cmd.Buyer(), cmd.ProductID())
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
