package deliverer

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for deliverer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a deliverer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a deliverer without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDelivererIsNotConstructed is returned when using an improperly initialized Deliverer.
	ErrDelivererIsNotConstructed = errors.New("Deliverer must be created via NewDeliverer constructor")
)

// ratingMax bounds the stored rating summary; individual reviews rate 1 to 5,
// so their mean can never exceed it.
var ratingMax = decimal.NewFromInt(5)

// Deliverer represents a person who delivers orders. It is an aggregate
// root holding the deliverer's identity, contact details, activity flag,
// and the derived rating summary.
//
// Business rules:
//   - A deliverer must have a valid UUID, chat identity, name, and phone.
//   - Only active deliverers receive new-order notifications.
//   - ratingSummary is the mean of all reviews left for the deliverer;
//     it is recomputed whenever a review is submitted or revised. A
//     deliverer with no reviews carries a zero summary.
type Deliverer struct {
	id            kernel.UUID
	chat          kernel.ChatID
	name          string
	phone         string
	isActive      bool
	ratingSummary decimal.Decimal

	guard guard.ConstructorGuard
}

// NewDeliverer creates a deliverer with the given identity and contact
// details. New deliverers start active with no rating summary.
func NewDeliverer(id kernel.UUID, chat kernel.ChatID, name string, phone string) (*Deliverer, error) {
	d := &Deliverer{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setChat(chat),
		d.setName(name),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDeliverer reconstructs a Deliverer aggregate from persistent storage.
func RestoreDeliverer(
	id kernel.UUID,
	chat kernel.ChatID,
	name string,
	phone string,
	isActive bool,
	ratingSummary decimal.Decimal,
) (*Deliverer, error) {
	d, err := NewDeliverer(id, chat, name, phone)
	if err != nil {
		return nil, err
	}

	if err = d.UpdateRatingSummary(ratingSummary); err != nil {
		return nil, err
	}

	d.isActive = isActive
	return d, nil
}

// Validate ensures the deliverer was created through a constructor.
func (d *Deliverer) Validate() error {
	if d == nil || d.guard.Validate(ErrDelivererIsNotConstructed) != nil {
		return ErrDelivererIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliverers by their unique identifiers.
func (d *Deliverer) IsEqual(other *Deliverer) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the deliverer's unique identifier.
func (d *Deliverer) ID() kernel.UUID {
	return d.id
}

// Chat returns the deliverer's messaging-platform identity. Notifications
// about newly placed orders are addressed to it.
func (d *Deliverer) Chat() kernel.ChatID {
	return d.chat
}

// Name returns the deliverer's display name.
func (d *Deliverer) Name() string {
	return d.name
}

// Phone returns the contact phone shared with buyers after acceptance.
func (d *Deliverer) Phone() string {
	return d.phone
}

// IsActive reports whether the deliverer currently takes orders.
func (d *Deliverer) IsActive() bool {
	return d.isActive
}

// RatingSummary returns the mean rating across all reviews, or zero if
// the deliverer has not been reviewed yet.
func (d *Deliverer) RatingSummary() decimal.Decimal {
	return d.ratingSummary
}

// SetActive switches the deliverer in or out of the notification pool.
// Inactive deliverers keep their assigned orders; only fan-out of new
// orders is affected.
func (d *Deliverer) SetActive(isActive bool) {
	d.isActive = isActive
}

// UpdateRatingSummary replaces the stored mean rating. The caller computes
// the mean over the deliverer's reviews; this method only checks the range.
func (d *Deliverer) UpdateRatingSummary(ratingSummary decimal.Decimal) error {
	if ratingSummary.IsNegative() || ratingSummary.GreaterThan(ratingMax) {
		return errs.NewValueIsOutOfRangeError("ratingSummary", ratingSummary, 0, 5)
	}

	d.ratingSummary = ratingSummary
	return nil
}

func (d *Deliverer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Deliverer) setChat(chat kernel.ChatID) error {
	if err := chat.Validate(); err != nil {
		return err
	}
	d.chat = chat
	return nil
}

func (d *Deliverer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Deliverer) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}
