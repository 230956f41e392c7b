package commands

import (
	"context"
)

// RestockProductCommandHandler adds units to a product's stock. Restocks
// go through the same locked read as checkout deductions, so the two
// writers of the inventory counter never race destructively.
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRestockProductCommandHandler creates a handler for restock operations.
func NewRestockProductCommandHandler(uowFactory ProductUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command.
func (h RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
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

	productRepo := uow.ProductRepository()

	p, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.Restock(cmd.Quantity()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
