package order

import (
	"errors"
	"fmt"
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrDeliveryAddressIsRequired is returned when creating an order without an address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrNoItems is returned when creating an order without a single consumed cart line.
	ErrNoItems = errors.New("order must contain at least one item")
	// ErrAlreadyAssigned is returned when a deliverer tries to accept an order
	// that already has a deliverer.
	ErrAlreadyAssigned = errors.New("order is already assigned to a deliverer")
	// ErrNotAssignedDeliverer is returned when a deliverer other than the assigned
	// one tries to complete the order.
	ErrNotAssignedDeliverer = errors.New("order is assigned to a different deliverer")
)

// Order is the aggregate root for a buyer's purchase: the header created
// from a cart snapshot plus the immutable item lines. It owns the lifecycle
// state machine and the deliverer assignment.
//
// Invariants:
//   - Created only from a non-empty set of consumed cart lines.
//   - totalPrice is fixed at creation; later price changes never touch it.
//   - Status changes only through Start, Accept, and Complete.
//   - delivererID is set exactly once, by the first successful Accept.
//
// Example:
//
//	o, err := order.NewOrder(order.NewOrderArgs{
//	    ID:              kernel.NewUUID(),
//	    Buyer:           buyer,
//	    DeliveryAddress: "5 Nassef st.",
//	    ContactPhone:    "+201234567890",
//	    TotalPrice:      decimal.NewFromFloat(25.00),
//	    Items:           items,
//	})
//	if err != nil {
//	    // handle validation error
//	}
type Order struct {
	id              kernel.UUID
	buyer           kernel.ChatID
	deliveryAddress string
	contactPhone    string
	totalPrice      decimal.Decimal
	status          Status
	delivererID     *kernel.UUID
	items           []Item
	createdAt       time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewOrderArgs carries the fields needed to create an order from a cart
// snapshot. A struct keeps the constructor call sites readable.
type NewOrderArgs struct {
	ID              kernel.UUID
	Buyer           kernel.ChatID
	DeliveryAddress string
	ContactPhone    string
	TotalPrice      decimal.Decimal
	Items           []Item
	Now             time.Time
}

// NewOrder creates an order in Placed status from consumed cart lines.
// The total price is the caller-computed cart total: it is part of the
// snapshot and is never recomputed from the items.
func NewOrder(args NewOrderArgs) (*Order, error) {
	now := args.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	o := &Order{
		status:    Placed,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(args.ID),
		o.setBuyer(args.Buyer),
		o.setDeliveryAddress(args.DeliveryAddress),
		o.setTotalPrice(args.TotalPrice),
		o.setItems(args.Items),
	); err != nil {
		return nil, err
	}

	o.contactPhone = args.ContactPhone
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// Unlike NewOrder it accepts any valid status and an optional assigned
// deliverer, and it validates their consistency: a Placed order cannot
// carry a deliverer.
func RestoreOrder(
	args NewOrderArgs,
	status Status,
	delivererID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(args)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if delivererID != nil {
		if err = delivererID.Validate(); err != nil {
			return nil, err
		}
		if status == Placed {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"status",
				fmt.Errorf("%s order cannot have a deliverer", status),
			)
		}
	}

	o.status = status
	o.delivererID = delivererID
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Buyer returns the chat identifier of the buyer who placed the order.
func (o *Order) Buyer() kernel.ChatID {
	return o.buyer
}

// DeliveryAddress returns where the order should be delivered.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// ContactPhone returns the phone number the buyer supplied at checkout.
func (o *Order) ContactPhone() string {
	return o.contactPhone
}

// TotalPrice returns the cart total snapshotted at creation time.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Deliverer returns the assigned deliverer's ID, or nil if unassigned.
func (o *Order) Deliverer() *kernel.UUID {
	return o.delivererID
}

// Items returns the immutable snapshot lines.
func (o *Order) Items() []Item {
	return o.items
}

// CreatedAt returns when the order was converted from the cart.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last lifecycle change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Start marks the order in progress on behalf of an admin, without
// assigning a deliverer.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Accept assigns the order to a deliverer and marks it in progress.
//
// Assignment happens exactly once: if a deliverer is already set, Accept
// fails with ErrAlreadyAssigned regardless of who asks, and the existing
// assignment is never overwritten.
func (o *Order) Accept(delivererID kernel.UUID) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}

	if o.delivererID != nil {
		return ErrAlreadyAssigned
	}

	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.delivererID = &delivererID
	o.touch()
	return nil
}

// Complete marks the order delivered. Inventory is untouched: stock was
// already deducted at conversion time.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// IsAssignedTo reports whether the given deliverer holds this order.
func (o *Order) IsAssignedTo(delivererID kernel.UUID) bool {
	return o.delivererID != nil && o.delivererID.IsEqual(delivererID)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyer(buyer kernel.ChatID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	o.buyer = buyer
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setTotalPrice(totalPrice decimal.Decimal) error {
	if totalPrice.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total price",
			fmt.Errorf("%s is not greater than 0", totalPrice),
		)
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
