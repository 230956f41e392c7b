package commands

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a buyer's request to drop a product
// from their cart entirely, regardless of quantity.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	buyer     kernel.ChatID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to delete a cart line.
func NewRemoveCartItemCommand(buyer kernel.ChatID, productID kernel.UUID) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyer(buyer),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// Buyer returns the cart owner's chat identity.
func (c RemoveCartItemCommand) Buyer() kernel.ChatID {
	return c.buyer
}

// ProductID returns the product being removed.
func (c RemoveCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveCartItemCommand) setBuyer(buyer kernel.ChatID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *RemoveCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
