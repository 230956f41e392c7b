package product

import (
	"errors"
	"fmt"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for product operations.
var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrInsufficientStock is returned when a deduction asks for more units than are on hand.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrProductUnavailable is returned when operating on a product withdrawn from sale.
	ErrProductUnavailable = errors.New("product is not available")
)

// Product is the inventory-side view of a catalog item. The catalog
// attributes (description, images, category) belong to the external catalog
// management; this aggregate carries only what order conversion needs:
// the selling price, the purchase price, and the stock counter.
//
// Invariants:
//   - availableQuantity never goes negative: Deduct refuses a quantity
//     larger than the current counter.
//   - price is positive, purchasePrice is non-negative.
//   - stock is mutated only through Deduct (order conversion) and
//     Restock (catalog restock); both callers go through the same
//     persistence primitive.
//
// Example:
//
//	price := decimal.NewFromFloat(10.00)
//	cost := decimal.NewFromFloat(6.50)
//	p, err := product.NewProduct(kernel.NewUUID(), "Ceylon tea", price, cost, 25)
//	if err != nil {
//	    // handle validation error
//	}
type Product struct {
	id                kernel.UUID
	name              string
	price             decimal.Decimal
	purchasePrice     decimal.Decimal
	availableQuantity int
	isAvailable       bool

	guard guard.ConstructorGuard
}

// NewProduct creates a product with the given pricing and initial stock.
// New products are available for sale by default.
func NewProduct(
	id kernel.UUID,
	name string,
	price decimal.Decimal,
	purchasePrice decimal.Decimal,
	availableQuantity int,
) (*Product, error) {
	p := &Product{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setPurchasePrice(purchasePrice),
		p.setAvailableQuantity(availableQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence, including its
// availability flag.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price decimal.Decimal,
	purchasePrice decimal.Decimal,
	availableQuantity int,
	isAvailable bool,
) (*Product, error) {
	p, err := NewProduct(id, name, price, purchasePrice, availableQuantity)
	if err != nil {
		return nil, err
	}

	p.isAvailable = isAvailable
	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the selling price per unit.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// PurchasePrice returns the acquisition cost per unit.
func (p *Product) PurchasePrice() decimal.Decimal {
	return p.purchasePrice
}

// AvailableQuantity returns the number of units on hand.
func (p *Product) AvailableQuantity() int {
	return p.availableQuantity
}

// IsAvailable reports whether the product is offered for sale.
func (p *Product) IsAvailable() bool {
	return p.isAvailable
}

// Deduct removes quantity units from stock during order conversion.
//
// Returns ErrProductUnavailable for products withdrawn from sale and
// ErrInsufficientStock when fewer than quantity units are on hand; in both
// cases the counter is left untouched, so a failed line can stay in the
// buyer's cart.
func (p *Product) Deduct(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if !p.isAvailable {
		return ErrProductUnavailable
	}

	if p.availableQuantity < quantity {
		return ErrInsufficientStock
	}

	p.availableQuantity -= quantity
	return nil
}

// Restock adds quantity units back to stock. This is the catalog-management
// entry point and the only other writer of the stock counter besides Deduct.
func (p *Product) Restock(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	p.availableQuantity += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	p.price = price
	return nil
}

func (p *Product) setPurchasePrice(purchasePrice decimal.Decimal) error {
	if purchasePrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"purchase price",
			fmt.Errorf("%s is negative", purchasePrice),
		)
	}
	p.purchasePrice = purchasePrice
	return nil
}

func (p *Product) setAvailableQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"available quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	p.availableQuantity = quantity
	return nil
}
