package commands

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrReduceCartItemCommandIsNotConstructed = errors.New(
	"ReduceCartItemCommand must be created via NewReduceCartItemCommand constructor",
)

// ReduceCartItemCommand represents a buyer's request to take one unit of
// a product out of their cart.
type ReduceCartItemCommand struct { //nolint:recvcheck //using for validation
	buyer     kernel.ChatID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReduceCartItemCommand creates a command to decrement a cart line by
// one unit. Reducing a single-unit line removes it from the cart.
func NewReduceCartItemCommand(buyer kernel.ChatID, productID kernel.UUID) (ReduceCartItemCommand, error) {
	cmd := ReduceCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyer(buyer),
		cmd.setProductID(productID),
	); err != nil {
		return ReduceCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReduceCartItemCommand) Validate() error {
	return c.guard.Validate(ErrReduceCartItemCommandIsNotConstructed)
}

// Buyer returns the cart owner's chat identity.
func (c ReduceCartItemCommand) Buyer() kernel.ChatID {
	return c.buyer
}

// ProductID returns the product being reduced.
func (c ReduceCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *ReduceCartItemCommand) setBuyer(buyer kernel.ChatID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *ReduceCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
