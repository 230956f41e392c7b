package notifications

import (
	"fmt"
	"strings"

	"market/internal/core/domain/model/deliverer"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
)

// adminText renders the operator view of a new order. Admins see the
// buyer's contact details so they can follow up directly.
func adminText(o *order.Order, rejected []kernel.UUID) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New order %s\n", o.ID())
	fmt.Fprintf(&b, "Buyer: %s\n", o.Buyer())
	if o.ContactPhone() != "" {
		fmt.Fprintf(&b, "Phone: %s\n", o.ContactPhone())
	}
	fmt.Fprintf(&b, "Address: %s\n", o.DeliveryAddress())
	fmt.Fprintf(&b, "Items: %d, total %s", len(o.Items()), o.TotalPrice())

	if len(rejected) > 0 {
		fmt.Fprintf(&b, "\nOut of stock: %d item(s) stayed in the buyer's cart", len(rejected))
	}

	return b.String()
}

// delivererText renders the courier view of a new order: where to go and
// what it pays, without the buyer's identifiers.
func delivererText(o *order.Order) string {
	return fmt.Sprintf(
		"Order %s is up for grabs\nAddress: %s\nItems: %d, total %s\nFirst to accept takes it",
		o.ID(), o.DeliveryAddress(), len(o.Items()), o.TotalPrice())
}

// acceptedText tells the buyer who is bringing their order.
func acceptedText(o *order.Order, d *deliverer.Deliverer) string {
	return fmt.Sprintf(
		"Your order %s is on its way!\nCourier: %s, phone %s",
		o.ID(), d.Name(), d.Phone())
}

// statusChangedText tells the buyer where their order stands now.
func statusChangedText(o *order.Order, d *deliverer.Deliverer) string {
	var b strings.Builder

	switch o.Status() {
	case order.InProgress:
		fmt.Fprintf(&b, "Your order %s is being prepared", o.ID())
	case order.Completed:
		fmt.Fprintf(&b, "Your order %s has been delivered. Enjoy!", o.ID())
	default:
		fmt.Fprintf(&b, "Your order %s is now %s", o.ID(), o.Status())
	}

	if d != nil && o.Status() != order.Completed {
		fmt.Fprintf(&b, "\nCourier: %s, phone %s", d.Name(), d.Phone())
	}

	return b.String()
}
