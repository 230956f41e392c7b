package cart

import (
	"errors"
	"fmt"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

// Domain errors for cart operations.
var (
	// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")
)

// Line is one (buyer, product, quantity) record accumulated before order
// conversion. A buyer holds at most one line per product: repeated adds
// increment the quantity, reductions decrement it, and the line disappears
// when the quantity would drop below one or when order conversion consumes
// it.
//
// Example:
//
//	buyer, _ := kernel.NewChatID(784523911)
//	line, err := cart.NewLine(buyer, productID)
//	if err != nil {
//	    // handle validation error
//	}
//	line.Increment() // second add of the same product
type Line struct {
	buyer     kernel.ChatID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewLine creates a cart line for the first add of a product, with quantity 1.
func NewLine(buyer kernel.ChatID, productID kernel.UUID) (*Line, error) {
	return RestoreLine(buyer, productID, 1)
}

// RestoreLine reconstructs a cart line from persistence with an arbitrary
// positive quantity.
func RestoreLine(buyer kernel.ChatID, productID kernel.UUID, quantity int) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setBuyer(buyer),
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// Buyer returns the owning buyer's chat identifier.
func (l *Line) Buyer() kernel.ChatID {
	return l.buyer
}

// ProductID returns the product this line refers to.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the number of units the buyer has accumulated.
func (l *Line) Quantity() int {
	return l.quantity
}

// Increment adds one unit, the effect of a repeated add of the same product.
func (l *Line) Increment() {
	l.quantity++
}

// Reduce removes one unit. It reports whether the line still holds at least
// one unit; false means the caller should remove the line entirely.
func (l *Line) Reduce() bool {
	if l.quantity > 1 {
		l.quantity--
		return true
	}
	return false
}

func (l *Line) setBuyer(buyer kernel.ChatID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	l.buyer = buyer
	return nil
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}
