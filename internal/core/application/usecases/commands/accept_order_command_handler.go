package commands

import (
	"context"
)

// AcceptOrderCommandHandler handles a deliverer claiming a placed order.
//
// The order row is read under a lock, so two deliverers racing for the
// same order serialize: the first sets the assignment and the second
// fails on order.ErrAlreadyAssigned with no state change.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewAcceptOrderCommand(orderID, delivererID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrAlreadyAssigned) {
//	    // surface "order already taken" to the deliverer
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderDelivererUoWFactory
	notifier   Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderDelivererUoWFactory, notifier Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the accept command.
// Resolves the deliverer, locks the order, assigns it, and after commit
// tells the buyer who is bringing their order.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	d, err := uow.DelivererRepository().Get(ctx, cmd.DelivererID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Accept(d.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderAccepted(ctx, o, d)

	return nil
}
