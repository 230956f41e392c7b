// Package http exposes the shop's public API over echo. Handlers parse
// and validate the wire format, delegate to command and query handlers,
// and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"market/internal/core/application/usecases/commands"
	"market/internal/core/application/usecases/queries"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/domain/model/product"
	"market/internal/core/domain/services"
	"market/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addToCartHandler            commands.AddToCartCommandHandler
	reduceCartItemHandler       commands.ReduceCartItemCommandHandler
	removeCartItemHandler       commands.RemoveCartItemCommandHandler
	checkoutHandler             commands.CheckoutCommandHandler
	acceptOrderHandler          commands.AcceptOrderCommandHandler
	advanceOrderStatusHandler   commands.AdvanceOrderStatusCommandHandler
	submitReviewHandler         commands.SubmitReviewCommandHandler
	restockProductHandler       commands.RestockProductCommandHandler
	registerDelivererHandler    commands.RegisterDelivererCommandHandler
	setDelivererActivityHandler commands.SetDelivererActivityCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getOrdersByStatusHandler  queries.GetOrdersByStatusQueryHandler
	getBuyerOrdersHandler     queries.GetBuyerOrdersQueryHandler
	getCartHandler            queries.GetCartQueryHandler
}

// ServerArgs carries the handlers a Server delegates to.
type ServerArgs struct {
	AddToCart            commands.AddToCartCommandHandler
	ReduceCartItem       commands.ReduceCartItemCommandHandler
	RemoveCartItem       commands.RemoveCartItemCommandHandler
	Checkout             commands.CheckoutCommandHandler
	AcceptOrder          commands.AcceptOrderCommandHandler
	AdvanceOrderStatus   commands.AdvanceOrderStatusCommandHandler
	SubmitReview         commands.SubmitReviewCommandHandler
	RestockProduct       commands.RestockProductCommandHandler
	RegisterDeliverer    commands.RegisterDelivererCommandHandler
	SetDelivererActivity commands.SetDelivererActivityCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	GetOrdersByStatus queries.GetOrdersByStatusQueryHandler
	GetBuyerOrders    queries.GetBuyerOrdersQueryHandler
	GetCart           queries.GetCartQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(args ServerArgs) *Server {
	return &Server{
		addToCartHandler:            args.AddToCart,
		reduceCartItemHandler:       args.ReduceCartItem,
		removeCartItemHandler:       args.RemoveCartItem,
		checkoutHandler:             args.Checkout,
		acceptOrderHandler:          args.AcceptOrder,
		advanceOrderStatusHandler:   args.AdvanceOrderStatus,
		submitReviewHandler:         args.SubmitReview,
		restockProductHandler:       args.RestockProduct,
		registerDelivererHandler:    args.RegisterDeliverer,
		setDelivererActivityHandler: args.SetDelivererActivity,
		getOrderHandler:             args.GetOrder,
		getOrdersByStatusHandler:    args.GetOrdersByStatus,
		getBuyerOrdersHandler:       args.GetBuyerOrders,
		getCartHandler:              args.GetCart,
	}
}

// RegisterRoutes registers every endpoint of the public API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/carts/:buyer/items", s.AddToCart)
	api.POST("/carts/:buyer/items/:productID/reduce", s.ReduceCartItem)
	api.DELETE("/carts/:buyer/items/:productID", s.RemoveCartItem)
	api.GET("/carts/:buyer", s.GetCart)

	api.POST("/orders", s.Checkout)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/status", s.AdvanceOrderStatus)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/buyers/:buyer/orders", s.GetBuyerOrders)

	api.POST("/reviews", s.SubmitReview)

	api.POST("/deliverers", s.RegisterDeliverer)
	api.PATCH("/deliverers/:id/activity", s.SetDelivererActivity)

	api.POST("/products/:id/restock", s.RestockProduct)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AddToCart handles POST /api/v1/carts/{buyer}/items - adds one unit of a
// product to the buyer's cart.
func (s *Server) AddToCart(ctx echo.Context) error {
	buyer, err := parseChatID(ctx.Param("buyer"))
	if err != nil {
		return badRequest(ctx, "Invalid buyer id")
	}

	var req AddToCartRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewAddToCartCommand(buyer, productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReduceCartItem handles POST /api/v1/carts/{buyer}/items/{productID}/reduce -
// removes one unit of a product from the buyer's cart.
func (s *Server) ReduceCartItem(ctx echo.Context) error {
	buyer, err := parseChatID(ctx.Param("buyer"))
	if err != nil {
		return badRequest(ctx, "Invalid buyer id")
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewReduceCartItemCommand(buyer, productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.reduceCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/carts/{buyer}/items/{productID} -
// drops a product from the buyer's cart regardless of quantity.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	buyer, err := parseChatID(ctx.Param("buyer"))
	if err != nil {
		return badRequest(ctx, "Invalid buyer id")
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(buyer, productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/carts/{buyer} - retrieves the buyer's cart
// priced at current product prices.
func (s *Server) GetCart(ctx echo.Context) error {
	buyer, err := parseChatID(ctx.Param("buyer"))
	if err != nil {
		return badRequest(ctx, "Invalid buyer id")
	}

	query, err := queries.NewGetCartQuery(buyer)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	lines, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartFromQuery(lines))
}

// Checkout handles POST /api/v1/orders - converts the buyer's cart into an order.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyer, err := kernel.NewChatID(req.Buyer)
	if err != nil {
		return badRequest(ctx, "Invalid buyer id")
	}

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), buyer, req.DeliveryAddress, req.ContactPhone)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	rejected := make([]string, 0, len(result.RejectedProductIDs))
	for _, id := range result.RejectedProductIDs {
		rejected = append(rejected, id.String())
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:            result.Order.ID().String(),
		TotalPrice:         result.Order.TotalPrice().String(),
		FullySatisfied:     result.FullySatisfied,
		RejectedProductIDs: rejected,
	})
}

// AcceptOrder handles POST /api/v1/orders/{id}/accept - claims a placed
// order for a deliverer. First accept wins; the rest get 409.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AcceptOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	delivererID, err := kernel.UUIDFromString(req.DelivererID)
	if err != nil {
		return badRequest(ctx, "Invalid deliverer id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, delivererID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrderStatus handles POST /api/v1/orders/{id}/status - moves an
// order forward through its lifecycle on behalf of an admin or deliverer.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AdvanceOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorChat, err := kernel.NewChatID(req.ActorChat)
	if err != nil {
		return badRequest(ctx, "Invalid actor chat")
	}

	targetStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(
		orderID, commands.ActorRole(req.ActorRole), actorChat, targetStatus)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(resp))
}

// GetOrdersByStatus handles GET /api/v1/orders?status= - lists orders in
// the given status, oldest first.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status")
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resps, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	orders := make([]OrderSummary, 0, len(resps))
	for _, resp := range resps {
		orders = append(orders, OrderSummary{
			ID:              resp.ID.String(),
			Buyer:           resp.Buyer.Int64(),
			DeliveryAddress: resp.DeliveryAddress,
			TotalPrice:      resp.TotalPrice.String(),
			CreatedAt:       resp.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetBuyerOrders handles GET /api/v1/buyers/{buyer}/orders - lists the
// buyer's order history, newest first.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	buyer, err := parseChatID(ctx.Param("buyer"))
	if err != nil {
		return badRequest(ctx, "Invalid buyer id")
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyer)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resps, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	orders := make([]BuyerOrderSummary, 0, len(resps))
	for _, resp := range resps {
		orders = append(orders, BuyerOrderSummary{
			ID:         resp.ID.String(),
			Status:     resp.Status,
			TotalPrice: resp.TotalPrice.String(),
			CreatedAt:  resp.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// SubmitReview handles POST /api/v1/reviews - leaves or revises the
// buyer's review of a completed order.
func (s *Server) SubmitReview(ctx echo.Context) error {
	var req SubmitReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyer, err := kernel.NewChatID(req.Buyer)
	if err != nil {
		return badRequest(ctx, "Invalid buyer id")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), buyer, orderID, req.Rating, req.Text)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterDeliverer handles POST /api/v1/deliverers - registers a new
// deliverer profile for a chat.
func (s *Server) RegisterDeliverer(ctx echo.Context) error {
	var req RegisterDelivererRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	chat, err := kernel.NewChatID(req.Chat)
	if err != nil {
		return badRequest(ctx, "Invalid chat id")
	}

	delivererID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDelivererCommand(delivererID, chat, req.Name, req.Phone)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.registerDelivererHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterDelivererResponse{
		DelivererID: delivererID.String(),
	})
}

// SetDelivererActivity handles PATCH /api/v1/deliverers/{id}/activity -
// toggles whether the deliverer is offered new orders.
func (s *Server) SetDelivererActivity(ctx echo.Context) error {
	delivererID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid deliverer id")
	}

	var req SetDelivererActivityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetDelivererActivityCommand(delivererID, req.IsActive)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setDelivererActivityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestockProduct handles POST /api/v1/products/{id}/restock - adds stock
// to a product and puts it back on sale.
func (s *Server) RestockProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var req RestockProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRestockProductCommand(productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.restockProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseChatID(raw string) (kernel.ChatID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return kernel.ChatID{}, err
	}
	return kernel.NewChatID(id)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application and domain errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrActorNotAllowed),
		errors.Is(err, commands.ErrNotOrderBuyer):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrAllLinesRejected),
		errors.Is(err, commands.ErrOrderNotCompleted),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, product.ErrProductUnavailable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
