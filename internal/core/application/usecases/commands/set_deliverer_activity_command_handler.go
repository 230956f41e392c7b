package commands

import (
	"context"
)

// SetDelivererActivityCommandHandler switches a deliverer's activity
// flag. Inactive deliverers stop receiving new-order notifications but
// keep the orders already assigned to them.
type SetDelivererActivityCommandHandler struct {
	uowFactory DelivererUoWFactory
}

// NewSetDelivererActivityCommandHandler creates a handler for activity changes.
func NewSetDelivererActivityCommandHandler(uowFactory DelivererUoWFactory) SetDelivererActivityCommandHandler {
	return SetDelivererActivityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activity command.
func (h SetDelivererActivityCommandHandler) Handle(ctx context.Context, cmd SetDelivererActivityCommand) error {
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

	delivererRepo := uow.DelivererRepository()

	d, err := delivererRepo.Get(ctx, cmd.DelivererID())
	if err != nil {
		return err
	}

	d.SetActive(cmd.IsActive())

	if err = delivererRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
