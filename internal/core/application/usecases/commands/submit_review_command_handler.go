package commands

import (
	"context"
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/domain/model/review"
	"market/internal/pkg/errs"
)

var (
	// ErrNotOrderBuyer is returned when someone reviews an order they did not place.
	ErrNotOrderBuyer = errors.New("only the order's buyer can review it")
	// ErrOrderNotCompleted is returned when reviewing an order that is not delivered yet.
	ErrOrderNotCompleted = errors.New("only completed orders can be reviewed")
)

// SubmitReviewCommandHandler records a buyer's rating of a deliverer and
// keeps the deliverer's rating summary in sync.
//
// A review is an upsert keyed by (buyer, order): the first submission
// creates it, later submissions revise the rating and text in place.
// Either way the deliverer's summary is recomputed as the mean over all
// their current ratings, in the same transaction.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
// The order must exist, belong to the reviewer, be completed, and have an
// assigned deliverer; otherwise nothing is written.
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.Buyer().IsEqual(cmd.Buyer()) {
		return ErrNotOrderBuyer
	}
	if o.Status() != order.Completed {
		return ErrOrderNotCompleted
	}
	if o.Deliverer() == nil {
		return order.ErrNotAssignedDeliverer
	}
	delivererID := *o.Deliverer()

	if err = h.upsertReview(ctx, uow, cmd, delivererID); err != nil {
		return err
	}

	reviews, err := uow.ReviewRepository().GetAllForDeliverer(ctx, delivererID)
	if err != nil {
		return err
	}

	mean, err := review.MeanRating(reviews)
	if err != nil {
		return err
	}

	delivererRepo := uow.DelivererRepository()

	d, err := delivererRepo.Get(ctx, delivererID)
	if err != nil {
		return err
	}

	if err = d.UpdateRatingSummary(mean); err != nil {
		return err
	}

	if err = delivererRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h SubmitReviewCommandHandler) upsertReview(
	ctx context.Context,
	uow ReviewUoW,
	cmd SubmitReviewCommand,
	delivererID kernel.UUID,
) error {
	reviewRepo := uow.ReviewRepository()

	existing, err := reviewRepo.GetByOrderAndBuyer(ctx, cmd.OrderID(), cmd.Buyer())
	if err == nil {
		if err = existing.Revise(cmd.Rating(), cmd.Text()); err != nil {
			return err
		}
		return reviewRepo.Update(ctx, existing)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	created, err := review.NewReview(
		cmd.ReviewID(), cmd.Buyer(), delivererID, cmd.OrderID(), cmd.Rating(), cmd.Text())
	if err != nil {
		return err
	}

	return reviewRepo.Add(ctx, created)
}
