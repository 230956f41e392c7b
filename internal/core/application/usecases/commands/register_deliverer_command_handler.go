package commands

import (
	"context"

	"market/internal/core/domain/model/deliverer"
)

// RegisterDelivererCommandHandler handles deliverer onboarding.
type RegisterDelivererCommandHandler struct {
	uowFactory DelivererUoWFactory
}

// NewRegisterDelivererCommandHandler creates a handler for deliverer registration.
func NewRegisterDelivererCommandHandler(uowFactory DelivererUoWFactory) RegisterDelivererCommandHandler {
	return RegisterDelivererCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. New deliverers start active
// and immediately join the new-order notification pool.
func (h RegisterDelivererCommandHandler) Handle(ctx context.Context, cmd RegisterDelivererCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := deliverer.NewDeliverer(cmd.DelivererID(), cmd.Chat(), cmd.Name(), cmd.Phone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DelivererRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
