package review

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// RatingMin is the lowest rating a buyer can give.
	RatingMin = 1
	// RatingMax is the highest rating a buyer can give.
	RatingMax = 5
)

// Domain errors for review operations.
var (
	// ErrReviewIsNotConstructed is returned when using an improperly initialized Review.
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")
	// ErrNoReviews is returned when computing a mean over an empty review list.
	ErrNoReviews = errs.NewValueIsRequiredError("reviews")
)

// Review is a buyer's rating of the deliverer who fulfilled an order.
// One review exists per (buyer, order) pair: submitting again revises
// the existing review instead of adding a second one.
type Review struct {
	id          kernel.UUID
	buyer       kernel.ChatID
	delivererID kernel.UUID
	orderID     kernel.UUID
	rating      int
	text        string

	guard guard.ConstructorGuard
}

// NewReview creates a review with a rating between RatingMin and RatingMax.
// The text is optional.
func NewReview(
	id kernel.UUID,
	buyer kernel.ChatID,
	delivererID kernel.UUID,
	orderID kernel.UUID,
	rating int,
	text string,
) (*Review, error) {
	r := &Review{
		text:  text,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setBuyer(buyer),
		r.setDelivererID(delivererID),
		r.setOrderID(orderID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a Review aggregate from persistent storage.
func RestoreReview(
	id kernel.UUID,
	buyer kernel.ChatID,
	delivererID kernel.UUID,
	orderID kernel.UUID,
	rating int,
	text string,
) (*Review, error) {
	return NewReview(id, buyer, delivererID, orderID, rating, text)
}

// Validate ensures the review was created through a constructor.
func (r *Review) Validate() error {
	if r == nil || r.guard.Validate(ErrReviewIsNotConstructed) != nil {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// IsEqual compares two reviews by their unique identifiers.
func (r *Review) IsEqual(other *Review) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// Buyer returns the chat identity of the reviewer.
func (r *Review) Buyer() kernel.ChatID {
	return r.buyer
}

// DelivererID returns the reviewed deliverer's identifier.
func (r *Review) DelivererID() kernel.UUID {
	return r.delivererID
}

// OrderID returns the order this review is attached to.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// Rating returns the numeric rating.
func (r *Review) Rating() int {
	return r.rating
}

// Text returns the optional free-form comment.
func (r *Review) Text() string {
	return r.text
}

// Revise replaces the rating and text of an existing review. A buyer
// re-reviewing an order overwrites their earlier opinion.
func (r *Review) Revise(rating int, text string) error {
	if err := r.setRating(rating); err != nil {
		return err
	}

	r.text = text
	return nil
}

// MeanRating computes the average rating across reviews for a deliverer's
// rating summary. An empty list has no mean and returns ErrNoReviews.
func MeanRating(reviews []*Review) (decimal.Decimal, error) {
	if len(reviews) == 0 {
		return decimal.Decimal{}, ErrNoReviews
	}

	sum := decimal.Zero
	for _, r := range reviews {
		if err := r.Validate(); err != nil {
			return decimal.Decimal{}, err
		}
		sum = sum.Add(decimal.NewFromInt(int64(r.rating)))
	}

	return sum.Div(decimal.NewFromInt(int64(len(reviews)))), nil
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setBuyer(buyer kernel.ChatID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	r.buyer = buyer
	return nil
}

func (r *Review) setDelivererID(delivererID kernel.UUID) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}
	r.delivererID = delivererID
	return nil
}

func (r *Review) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	r.rating = rating
	return nil
}
