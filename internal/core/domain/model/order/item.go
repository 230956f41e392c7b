package order

import (
	"errors"
	"fmt"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is an immutable snapshot of one consumed cart line. Items are
// created once during order conversion and never edited afterwards;
// they exist only as part of their parent Order.
type Item struct {
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates an order line snapshot for a consumed cart line.
func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the snapshotted product identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the snapshotted unit count.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
