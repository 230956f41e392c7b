package notifications

import (
	"context"
	"log/slog"
	"time"

	"market/internal/core/domain/model/deliverer"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/ports"
)

// PickupAddress is the delivery address marking a self-pickup order.
// Pickup orders are announced to admins only; deliverers are not asked
// to carry what the buyer collects themselves.
const PickupAddress = "pickup"

// defaultSendTimeout bounds one send so a slow recipient cannot stall
// the rest of a fan-out.
const defaultSendTimeout = 5 * time.Second

// Delivery is the per-recipient outcome of a fan-out. Err is nil on
// success; a non-nil Err means this recipient was not reached and the
// remaining recipients were attempted anyway.
type Delivery struct {
	Recipient kernel.ChatID
	Err       error
}

// OrderNotifier fans order events out to the admin pool, the active
// deliverer pool, and individual buyers.
//
// Fan-out is best-effort: each recipient gets one attempt under a send
// timeout, failures are logged and collected but never abort the rest
// of the pool, and nothing is retried. A recipient who misses a
// notification catches up by listing open orders.
//
// Both pools are re-read on every fan-out, so activity changes and admin
// membership changes take effect immediately.
type OrderNotifier struct {
	sender      ports.MessageSender
	admins      ports.AdminDirectory
	deliverers  ports.DelivererRepository
	sendTimeout time.Duration
	logger      *slog.Logger
}

// NewOrderNotifier creates a notifier that delivers through the given
// sender to the admin directory and the active-deliverer pool.
func NewOrderNotifier(
	sender ports.MessageSender,
	admins ports.AdminDirectory,
	deliverers ports.DelivererRepository,
	logger *slog.Logger,
) *OrderNotifier {
	return &OrderNotifier{
		sender:      sender,
		admins:      admins,
		deliverers:  deliverers,
		sendTimeout: defaultSendTimeout,
		logger:      logger.With("component", "notifications"),
	}
}

// OrderPlaced announces a freshly converted order: admins always hear
// about it, active deliverers only when it needs delivering.
func (n *OrderNotifier) OrderPlaced(ctx context.Context, o *order.Order, rejected []kernel.UUID) {
	n.NotifyAdmins(ctx, o, rejected)
	n.NotifyDeliverers(ctx, o)
}

// OrderAccepted tells the buyer who took their order and how to reach them.
func (n *OrderNotifier) OrderAccepted(ctx context.Context, o *order.Order, d *deliverer.Deliverer) {
	n.NotifyBuyer(ctx, o, acceptedText(o, d))
}

// OrderStatusChanged tells the buyer the order's new status. d is the
// assigned deliverer, or nil when the order has none.
func (n *OrderNotifier) OrderStatusChanged(ctx context.Context, o *order.Order, d *deliverer.Deliverer) {
	n.NotifyBuyer(ctx, o, statusChangedText(o, d))
}

// NotifyAdmins sends the admin-facing order summary, buyer contact
// included, to every configured admin chat. Returns the per-recipient
// outcomes.
func (n *OrderNotifier) NotifyAdmins(ctx context.Context, o *order.Order, rejected []kernel.UUID) []Delivery {
	admins, err := n.admins.ListAdminChats(ctx)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to list admin chats", "error", err, "orderId", o.ID())
		return nil
	}

	return n.fanOut(ctx, admins, adminText(o, rejected))
}

// NotifyDeliverers sends the deliverer-facing order summary to every
// active deliverer. Pickup orders are skipped entirely. Returns the
// per-recipient outcomes.
func (n *OrderNotifier) NotifyDeliverers(ctx context.Context, o *order.Order) []Delivery {
	if o.DeliveryAddress() == PickupAddress {
		return nil
	}

	pool, err := n.deliverers.GetAllActive(ctx)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to list active deliverers", "error", err, "orderId", o.ID())
		return nil
	}

	recipients := make([]kernel.ChatID, 0, len(pool))
	for _, d := range pool {
		recipients = append(recipients, d.Chat())
	}

	return n.fanOut(ctx, recipients, delivererText(o))
}

// NotifyBuyer sends one message to the order's buyer and returns the outcome.
func (n *OrderNotifier) NotifyBuyer(ctx context.Context, o *order.Order, text string) Delivery {
	deliveries := n.fanOut(ctx, []kernel.ChatID{o.Buyer()}, text)
	return deliveries[0]
}

func (n *OrderNotifier) fanOut(ctx context.Context, recipients []kernel.ChatID, text string) []Delivery {
	deliveries := make([]Delivery, 0, len(recipients))

	for _, recipient := range recipients {
		err := n.send(ctx, recipient, text)
		if err != nil {
			n.logger.ErrorContext(ctx, "failed to deliver notification",
				"recipient", recipient, "error", err)
		}

		deliveries = append(deliveries, Delivery{Recipient: recipient, Err: err})
	}

	return deliveries
}

func (n *OrderNotifier) send(ctx context.Context, recipient kernel.ChatID, text string) error {
	sendCtx, cancel := context.WithTimeout(ctx, n.sendTimeout)
	defer cancel()

	return n.sender.Send(sendCtx, recipient, text)
}
