// Package queries contains read-only operations over the store.
// Implements the Query side of the CQRS architecture: handlers read
// directly through SQL into flat response models, bypassing the domain
// aggregates and their invariant machinery.
package queries

import (
	"errors"
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its item snapshot.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", resp.ID, resp.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model for one order: the header plus
// its item lines joined with current product names.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Buyer           kernel.ChatID
	DeliveryAddress string
	ContactPhone    string
	TotalPrice      decimal.Decimal
	Status          string
	DelivererID     *kernel.UUID
	Items           []OrderItemResponse
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItemResponse is one snapshot line of an order. ProductName is the
// product's current name, looked up at read time for display.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
}
