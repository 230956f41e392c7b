package commands

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
)

// CheckoutCommand represents a buyer's request to convert their cart into
// an order delivered to the given address.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(orderID, buyer, "5 Nassef st.", "+201234567890")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, notifier)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrEmptyCart) {
//	    // nothing to convert
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	buyer           kernel.ChatID
	deliveryAddress string
	contactPhone    string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to convert the buyer's cart into
// an order. The order id is generated by the caller so the operation can
// be correlated before the transaction commits. The contact phone is
// optional.
func NewCheckoutCommand(
	orderID kernel.UUID,
	buyer kernel.ChatID,
	deliveryAddress string,
	contactPhone string,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		contactPhone: contactPhone,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyer(buyer),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Buyer returns the chat identity of the buyer checking out.
func (c CheckoutCommand) Buyer() kernel.ChatID {
	return c.buyer
}

// DeliveryAddress returns where the order should be delivered.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// ContactPhone returns the buyer's contact phone, possibly empty.
func (c CheckoutCommand) ContactPhone() string {
	return c.contactPhone
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setBuyer(buyer kernel.ChatID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
