package commands

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand represents a buyer's request to put one more unit of a
// product into their cart.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	buyer     kernel.ChatID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add one unit of a product to
// the buyer's cart. Repeating the command for the same product increments
// the existing line instead of creating a duplicate.
func NewAddToCartCommand(buyer kernel.ChatID, productID kernel.UUID) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyer(buyer),
		cmd.setProductID(productID),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// Buyer returns the cart owner's chat identity.
func (c AddToCartCommand) Buyer() kernel.ChatID {
	return c.buyer
}

// ProductID returns the product being added.
func (c AddToCartCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *AddToCartCommand) setBuyer(buyer kernel.ChatID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *AddToCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
