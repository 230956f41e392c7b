package http

import (
	"time"

	"market/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddToCartRequest is the body of POST /api/v1/carts/{buyer}/items.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
}

// CheckoutRequest is the body of POST /api/v1/orders.
type CheckoutRequest struct {
	Buyer           int64  `json:"buyer"`
	DeliveryAddress string `json:"delivery_address"`
	ContactPhone    string `json:"contact_phone,omitempty"`
}

// CheckoutResponse reports the conversion outcome: the new order and the
// products that stayed in the cart for lack of stock.
type CheckoutResponse struct {
	OrderID            string   `json:"order_id"`
	TotalPrice         string   `json:"total_price"`
	FullySatisfied     bool     `json:"fully_satisfied"`
	RejectedProductIDs []string `json:"rejected_product_ids,omitempty"`
}

// AcceptOrderRequest is the body of POST /api/v1/orders/{id}/accept.
type AcceptOrderRequest struct {
	DelivererID string `json:"deliverer_id"`
}

// AdvanceOrderStatusRequest is the body of POST /api/v1/orders/{id}/status.
type AdvanceOrderStatusRequest struct {
	ActorRole string `json:"actor_role"`
	ActorChat int64  `json:"actor_chat"`
	Status    string `json:"status"`
}

// SubmitReviewRequest is the body of POST /api/v1/reviews.
type SubmitReviewRequest struct {
	Buyer   int64  `json:"buyer"`
	OrderID string `json:"order_id"`
	Rating  int    `json:"rating"`
	Text    string `json:"text,omitempty"`
}

// RegisterDelivererRequest is the body of POST /api/v1/deliverers.
type RegisterDelivererRequest struct {
	Chat  int64  `json:"chat"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// RegisterDelivererResponse returns the id the new deliverer profile was
// created under.
type RegisterDelivererResponse struct {
	DelivererID string `json:"deliverer_id"`
}

// SetDelivererActivityRequest is the body of PATCH /api/v1/deliverers/{id}/activity.
type SetDelivererActivityRequest struct {
	IsActive bool `json:"is_active"`
}

// RestockProductRequest is the body of POST /api/v1/products/{id}/restock.
type RestockProductRequest struct {
	Quantity int `json:"quantity"`
}

// Order is the wire representation of an order.
type Order struct {
	ID              string      `json:"id"`
	Buyer           int64       `json:"buyer"`
	DeliveryAddress string      `json:"delivery_address"`
	ContactPhone    string      `json:"contact_phone,omitempty"`
	TotalPrice      string      `json:"total_price"`
	Status          string      `json:"status"`
	DelivererID     *string     `json:"deliverer_id,omitempty"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderSummary is one row of the status-filtered backlog listing.
type OrderSummary struct {
	ID              string    `json:"id"`
	Buyer           int64     `json:"buyer"`
	DeliveryAddress string    `json:"delivery_address"`
	TotalPrice      string    `json:"total_price"`
	CreatedAt       time.Time `json:"created_at"`
}

// BuyerOrderSummary is one row of a buyer's order history.
type BuyerOrderSummary struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	TotalPrice string    `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderItem is one snapshot line of an order on the wire.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// CartLine is one line of a buyer's cart on the wire, priced at the
// product's current price.
type CartLine struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	Quantity          int    `json:"quantity"`
	UnitPrice         string `json:"unit_price"`
	Subtotal          string `json:"subtotal"`
	AvailableQuantity int    `json:"available_quantity"`
	IsAvailable       bool   `json:"is_available"`
}

// Cart is the buyer's cart view: the lines plus their running total.
type Cart struct {
	Lines      []CartLine `json:"lines"`
	TotalPrice string     `json:"total_price"`
}

func orderFromQuery(resp queries.GetOrderQueryResponse) Order {
	var delivererID *string
	if resp.DelivererID != nil {
		s := resp.DelivererID.String()
		delivererID = &s
	}

	items := make([]OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItem{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return Order{
		ID:              resp.ID.String(),
		Buyer:           resp.Buyer.Int64(),
		DeliveryAddress: resp.DeliveryAddress,
		ContactPhone:    resp.ContactPhone,
		TotalPrice:      resp.TotalPrice.String(),
		Status:          resp.Status,
		DelivererID:     delivererID,
		Items:           items,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}

func cartFromQuery(lines []queries.GetCartQueryResponse) Cart {
	cart := Cart{Lines: make([]CartLine, 0, len(lines))}

	total := decimal.Zero
	for _, line := range lines {
		subtotal := line.Subtotal()
		total = total.Add(subtotal)

		cart.Lines = append(cart.Lines, CartLine{
			ProductID:         line.ProductID.String(),
			ProductName:       line.ProductName,
			Quantity:          line.Quantity,
			UnitPrice:         line.UnitPrice.String(),
			Subtotal:          subtotal.String(),
			AvailableQuantity: line.AvailableQuantity,
			IsAvailable:       line.IsAvailable,
		})
	}

	cart.TotalPrice = total.String()
	return cart
}
