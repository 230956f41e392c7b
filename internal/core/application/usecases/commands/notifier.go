package commands

import (
	"context"

	"market/internal/core/domain/model/deliverer"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
)

// Notifier fans out order events to interested chats. Handlers call it
// after a successful commit; deliveries are best-effort and per-recipient
// failures never surface back into the command result.
type Notifier interface {
	// OrderPlaced announces a freshly converted order to the admin pool
	// and, for courier-delivered orders, to every active deliverer.
	OrderPlaced(ctx context.Context, o *order.Order, rejected []kernel.UUID)

	// OrderAccepted tells the buyer their order was taken and by whom.
	OrderAccepted(ctx context.Context, o *order.Order, d *deliverer.Deliverer)

	// OrderStatusChanged tells the buyer the order moved to a new status.
	// d is the assigned deliverer, or nil when the order has none.
	OrderStatusChanged(ctx context.Context, o *order.Order, d *deliverer.Deliverer)
}
