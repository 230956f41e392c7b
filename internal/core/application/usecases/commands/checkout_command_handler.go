package commands

import (
	"context"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/domain/model/product"
	"market/internal/core/domain/services"
)

// CheckoutResult reports the outcome of a cart conversion. The order is
// committed even when some lines were rejected for lack of stock; the
// caller surfaces the rejected products to the buyer so they can retry
// or drop them.
type CheckoutResult struct {
	Order              *order.Order
	FullySatisfied     bool
	RejectedProductIDs []kernel.UUID
}

// CheckoutCommandHandler runs the cart-to-order conversion: it prices the
// cart, deducts inventory line by line, snapshots the satisfied lines into
// a new order, and clears them from the cart, all in one transaction.
//
// Cart lines and product rows are read under row locks, so a concurrent
// checkout by the same buyer cannot consume the same lines twice and two
// buyers racing for a product's last units cannot both win them.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	notifier   Notifier
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence and a
// Notifier for the post-commit fan-out.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, notifier Notifier) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the checkout command.
//
// Fails with services.ErrEmptyCart when the buyer has nothing in the cart
// and services.ErrAllLinesRejected when no line could be satisfied; in
// both cases nothing is written. Otherwise the order is created in placed
// status, consumed cart lines are removed, rejected lines stay in the
// cart, and after commit the order is announced to admins and active
// deliverers.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	lines, err := cartRepo.GetAllForBuyerForUpdate(ctx, cmd.Buyer())
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, services.ErrEmptyCart
	}

	productIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID())
	}

	loaded, err := uow.ProductRepository().GetManyForUpdate(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.Product, len(loaded))
	for _, p := range loaded {
		products[p.ID()] = p
	}

	conversion, err := services.NewCartConverter().Convert(lines, products)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(order.NewOrderArgs{
		ID:              cmd.OrderID(),
		Buyer:           cmd.Buyer(),
		DeliveryAddress: cmd.DeliveryAddress(),
		ContactPhone:    cmd.ContactPhone(),
		TotalPrice:      conversion.TotalPrice,
		Items:           conversion.Items,
	})
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	consumedIDs := make([]kernel.UUID, 0, len(conversion.ConsumedLines))
	for _, line := range conversion.ConsumedLines {
		consumedIDs = append(consumedIDs, line.ProductID())

		if err = uow.ProductRepository().Update(ctx, products[line.ProductID()]); err != nil {
			return nil, err
		}
	}

	if err = cartRepo.RemoveMany(ctx, cmd.Buyer(), consumedIDs); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderPlaced(ctx, newOrder, conversion.RejectedProductIDs)

	return &CheckoutResult{
		Order:              newOrder,
		FullySatisfied:     conversion.FullySatisfied,
		RejectedProductIDs: conversion.RejectedProductIDs,
	}, nil
}
