package queries

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery lists a buyer's cart lines joined with current product
// prices and stock, the same view checkout prices against.
type GetCartQuery struct {
	buyer kernel.ChatID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for one buyer's cart.
func NewGetCartQuery(buyer kernel.ChatID) (GetCartQuery, error) {
	if err := buyer.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{buyer: buyer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// Buyer returns the cart owner's chat identity.
func (q GetCartQuery) Buyer() kernel.ChatID {
	return q.buyer
}

// GetCartQueryResponse is one cart line with its product's current
// price and availability.
type GetCartQueryResponse struct {
	ProductID         kernel.UUID
	ProductName       string
	Quantity          int
	UnitPrice         decimal.Decimal
	AvailableQuantity int
	IsAvailable       bool
}

// Subtotal returns the line's current price contribution.
func (r GetCartQueryResponse) Subtotal() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}
