package queries

import (
	"errors"
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery lists every order a buyer has placed, newest first.
type GetBuyerOrdersQuery struct {
	buyer kernel.ChatID

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for one buyer's order history.
func NewGetBuyerOrdersQuery(buyer kernel.ChatID) (GetBuyerOrdersQuery, error) {
	if err := buyer.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	return GetBuyerOrdersQuery{buyer: buyer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// Buyer returns the requested buyer's chat identity.
func (q GetBuyerOrdersQuery) Buyer() kernel.ChatID {
	return q.buyer
}

// GetBuyerOrdersQueryResponse is one entry of a buyer's order history.
type GetBuyerOrdersQueryResponse struct {
	ID         kernel.UUID
	Status     string
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}
