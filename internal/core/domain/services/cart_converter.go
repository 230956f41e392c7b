package services

import (
	"errors"

	"market/internal/core/domain/model/cart"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when converting a cart with no lines.
// Nothing is created and no inventory is touched.
var ErrEmptyCart = errors.New("cart is empty")

// ErrAllLinesRejected is returned when no cart line could be satisfied
// from stock. Creating an order with zero items would break its shape,
// so the whole conversion fails and the cart stays as it was.
var ErrAllLinesRejected = errors.New("no cart line could be satisfied from stock")

// Conversion is the outcome of converting a buyer's cart against live
// inventory. Deductions are applied to the passed product aggregates;
// persisting them, the order, and the cart changes is the caller's job
// inside one transaction.
type Conversion struct {
	// Items are the snapshot lines for the satisfied cart lines.
	Items []order.Item
	// TotalPrice is the cart total over ALL lines at current prices,
	// computed before any deduction. Rejected lines are still counted:
	// the number reflects what the buyer asked for, and FullySatisfied
	// plus RejectedProductIDs tell the caller how much of it shipped.
	TotalPrice decimal.Decimal
	// ConsumedLines are the cart lines that became Items and must be
	// removed from the cart.
	ConsumedLines []*cart.Line
	// RejectedProductIDs are the products with too little stock. Their
	// cart lines stay in place for the buyer to retry or drop.
	RejectedProductIDs []kernel.UUID
	// FullySatisfied is true when every cart line became an order item.
	FullySatisfied bool
}

// CartConverter is a domain service that turns a buyer's cart lines into
// order items against the given inventory.
//
// Business rules:
//   - The total is priced over the full cart before deduction.
//   - Each line deducts its product's stock in full or not at all.
//   - A line that cannot be satisfied is rejected, not clamped.
//   - Rejections never abort the conversion of the remaining lines.
type CartConverter struct{}

// NewCartConverter creates a new CartConverter instance.
func NewCartConverter() CartConverter {
	return CartConverter{}
}

// Convert matches cart lines against their products, deducts stock from
// the satisfiable ones, and builds the order item snapshot.
//
// products must contain an entry for every line's product id; a missing
// entry is a programming error in the caller's load phase and fails the
// conversion.
func (c CartConverter) Convert(lines []*cart.Line, products map[kernel.UUID]*product.Product) (*Conversion, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}

		p, ok := products[line.ProductID()]
		if !ok {
			return nil, product.ErrProductIsNotConstructed
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}

		total = total.Add(p.Price().Mul(decimal.NewFromInt(int64(line.Quantity()))))
	}

	conversion := &Conversion{
		TotalPrice:     total,
		FullySatisfied: true,
	}

	for _, line := range lines {
		p := products[line.ProductID()]

		err := p.Deduct(line.Quantity())
		if errors.Is(err, product.ErrInsufficientStock) || errors.Is(err, product.ErrProductUnavailable) {
			conversion.RejectedProductIDs = append(conversion.RejectedProductIDs, line.ProductID())
			conversion.FullySatisfied = false
			continue
		}
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(line.ProductID(), line.Quantity())
		if err != nil {
			return nil, err
		}

		conversion.Items = append(conversion.Items, item)
		conversion.ConsumedLines = append(conversion.ConsumedLines, line)
	}

	if len(conversion.Items) == 0 {
		return nil, ErrAllLinesRejected
	}

	return conversion, nil
}
