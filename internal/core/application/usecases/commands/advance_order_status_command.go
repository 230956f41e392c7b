package commands

import (
	"errors"
	"fmt"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// ActorRole identifies who is asking to move an order through its
// lifecycle. The role decides which transitions are allowed.
type ActorRole string

const (
	// RoleAdmin is an operator overseeing orders. Admins may start any
	// placed order and complete any in-progress order.
	RoleAdmin ActorRole = "admin"
	// RoleDeliverer is a courier. Deliverers complete only the orders
	// assigned to them; taking an order goes through AcceptOrderCommand.
	RoleDeliverer ActorRole = "deliverer"
)

// Validate checks that the role is one the lifecycle machine knows.
func (r ActorRole) Validate() error {
	switch r {
	case RoleAdmin, RoleDeliverer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"actorRole",
			fmt.Errorf("%q is not a valid actor role", string(r)),
		)
	}
}

// AdvanceOrderStatusCommand represents an actor's request to move an
// order to the next lifecycle status.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorRole    ActorRole
	actorChat    kernel.ChatID
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order on
// behalf of the given actor. The target status must itself be valid; the
// legality of the transition is checked against the order's current
// state by the handler.
func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	actorRole ActorRole,
	actorChat kernel.ChatID,
	targetStatus order.Status,
) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorRole(actorRole),
		cmd.setActorChat(actorChat),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorRole returns the role of the acting party.
func (c AdvanceOrderStatusCommand) ActorRole() ActorRole {
	return c.actorRole
}

// ActorChat returns the chat identity of the acting party.
func (c AdvanceOrderStatusCommand) ActorChat() kernel.ChatID {
	return c.actorChat
}

// TargetStatus returns the status the actor wants the order in.
func (c AdvanceOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setActorRole(actorRole ActorRole) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *AdvanceOrderStatusCommand) setActorChat(actorChat kernel.ChatID) error {
	if err := actorChat.Validate(); err != nil {
		return err
	}

	c.actorChat = actorChat
	return nil
}

func (c *AdvanceOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
