package commands

import (
	"context"
	"errors"
	"fmt"

	"market/internal/core/domain/model/deliverer"
	"market/internal/core/domain/model/order"
	"market/internal/pkg/errs"
)

// ErrActorNotAllowed is returned when an actor asks for a transition
// their role does not permit, such as a deliverer completing an order
// assigned to someone else.
var ErrActorNotAllowed = errors.New("actor is not allowed to perform this transition")

// AdvanceOrderStatusCommandHandler moves orders through the lifecycle on
// behalf of admins and deliverers.
//
// Transition rules:
//   - placed -> in_progress: admins only; deliverers claim orders through
//     AcceptOrderCommand so the assignment is recorded.
//   - in_progress -> completed: the assigned deliverer, or any admin as
//     an override.
//
// Illegal transitions are rejected by the order's state machine with no
// state change. The order row is locked for the duration, so concurrent
// advances on the same order serialize.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderDelivererUoWFactory
	notifier   Notifier
}

// NewAdvanceOrderStatusCommandHandler creates a handler for lifecycle transitions.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderDelivererUoWFactory,
	notifier Notifier,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the advance command and, after commit, tells the
// buyer about the new status.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.advance(ctx, uow, o, cmd); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	var assigned *deliverer.Deliverer
	if o.Deliverer() != nil {
		if assigned, err = uow.DelivererRepository().Get(ctx, *o.Deliverer()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, o, assigned)

	return nil
}

func (h AdvanceOrderStatusCommandHandler) advance(
	ctx context.Context,
	uow OrderDelivererUoW,
	o *order.Order,
	cmd AdvanceOrderStatusCommand,
) error {
	switch cmd.TargetStatus() {
	case order.InProgress:
		if cmd.ActorRole() != RoleAdmin {
			return ErrActorNotAllowed
		}
		return o.Start()

	case order.Completed:
		if cmd.ActorRole() == RoleDeliverer {
			d, err := uow.DelivererRepository().GetByChat(ctx, cmd.ActorChat())
			if err != nil {
				return err
			}
			if !o.IsAssignedTo(d.ID()) {
				return ErrActorNotAllowed
			}
		}
		return o.Complete()

	default:
		// Placed is the initial status; nothing transitions into it.
		return errs.NewValueIsInvalidErrorWithCause(
			"targetStatus",
			fmt.Errorf("no transition leads to %s", cmd.TargetStatus()),
		)
	}
}
