package commands

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a deliverer's request to take a placed
// order. The first deliverer to accept wins the assignment; later
// attempts are rejected.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	delivererID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a deliverer to claim an order.
func NewAcceptOrderCommand(orderID kernel.UUID, delivererID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDelivererID(delivererID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DelivererID returns the deliverer claiming the order.
func (c AcceptOrderCommand) DelivererID() kernel.UUID {
	return c.delivererID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setDelivererID(delivererID kernel.UUID) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}

	c.delivererID = delivererID
	return nil
}
