package commands

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrSetDelivererActivityCommandIsNotConstructed = errors.New(
	"SetDelivererActivityCommand must be created via NewSetDelivererActivityCommand constructor",
)

// SetDelivererActivityCommand represents switching a deliverer in or out
// of the new-order notification pool.
type SetDelivererActivityCommand struct { //nolint:recvcheck //using for validation
	delivererID kernel.UUID
	isActive    bool

	guard guard.ConstructorGuard
}

// NewSetDelivererActivityCommand creates a command to change a
// deliverer's activity flag.
func NewSetDelivererActivityCommand(delivererID kernel.UUID, isActive bool) (SetDelivererActivityCommand, error) {
	cmd := SetDelivererActivityCommand{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setDelivererID(delivererID); err != nil {
		return SetDelivererActivityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDelivererActivityCommand) Validate() error {
	return c.guard.Validate(ErrSetDelivererActivityCommandIsNotConstructed)
}

// DelivererID returns the deliverer whose activity changes.
func (c SetDelivererActivityCommand) DelivererID() kernel.UUID {
	return c.delivererID
}

// IsActive returns the desired activity state.
func (c SetDelivererActivityCommand) IsActive() bool {
	return c.isActive
}

func (c *SetDelivererActivityCommand) setDelivererID(delivererID kernel.UUID) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}

	c.delivererID = delivererID
	return nil
}
