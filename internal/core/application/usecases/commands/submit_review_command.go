package commands

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/review"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a buyer rating the deliverer of one of
// their completed orders. Submitting again for the same order revises the
// earlier review instead of adding a second one.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	buyer    kernel.ChatID
	orderID  kernel.UUID
	rating   int
	text     string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to rate the deliverer of an
// order. The rating must be between review.RatingMin and review.RatingMax;
// the text is optional. The review id is used only when this submission
// creates a new review.
func NewSubmitReviewCommand(
	reviewID kernel.UUID,
	buyer kernel.ChatID,
	orderID kernel.UUID,
	rating int,
	text string,
) (SubmitReviewCommand, error) {
	cmd := SubmitReviewCommand{
		text:  text,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setBuyer(buyer),
		cmd.setOrderID(orderID),
		cmd.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier for a newly created review.
func (c SubmitReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// Buyer returns the chat identity of the reviewer.
func (c SubmitReviewCommand) Buyer() kernel.ChatID {
	return c.buyer
}

// OrderID returns the reviewed order.
func (c SubmitReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rating returns the numeric rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Text returns the optional free-form comment.
func (c SubmitReviewCommand) Text() string {
	return c.text
}

func (c *SubmitReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *SubmitReviewCommand) setBuyer(buyer kernel.ChatID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *SubmitReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitReviewCommand) setRating(rating int) error {
	if rating < review.RatingMin || rating > review.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.RatingMin, review.RatingMax)
	}

	c.rating = rating
	return nil
}
