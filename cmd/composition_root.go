package cmd

import (
	"log/slog"

	httpserver "market/internal/adapters/in/http"
	"market/internal/adapters/out/chat"
	"market/internal/adapters/out/postgres"
	"market/internal/core/application/usecases/commands"
	"market/internal/core/application/usecases/queries"
	"market/internal/core/ports"
	"market/internal/jobs"
	"market/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and jobs together. Every
// Create method hands out a ready-to-use handler; they are cheap to call
// because all shared state lives in the root.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sender     ports.MessageSender
	admins     ports.AdminDirectory
	notifier   *notifications.OrderNotifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph. It fails only on
// misconfiguration; connecting to collaborators is the caller's job.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	admins, err := chat.NewStaticAdminDirectory(config.AdminChatIDs)
	if err != nil {
		return nil, err
	}

	sender := chat.NewLogSender(logger)
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	notifier := notifications.NewOrderNotifier(
		sender,
		admins,
		delivererRepositoryOutsideTx(uowFactory),
		logger,
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *uowFactory,
		sender:     sender,
		admins:     admins,
		notifier:   notifier,
		logger:     logger,
	}, nil
}

// delivererRepositoryOutsideTx returns a repository bound to the bare
// connection. The notifier reads the active pool after commit, outside
// any unit of work.
func delivererRepositoryOutsideTx(factory *postgres.GormUnitOfWorkFactory) ports.DelivererRepository {
	return factory.Create().DelivererRepository()
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	var f commands.CartProductUoWFactory = FuncCartProductUoWFactory(func() commands.CartProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToCartCommandHandler(f)
}

func (c *CompositionRoot) CreateReduceCartItemCommandHandler() commands.ReduceCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReduceCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderDelivererUoWFactory = FuncOrderDelivererUoWFactory(func() commands.OrderDelivererUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderDelivererUoWFactory = FuncOrderDelivererUoWFactory(func() commands.OrderDelivererUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDelivererCommandHandler() commands.RegisterDelivererCommandHandler {
	var f commands.DelivererUoWFactory = FuncDelivererUoWFactory(func() commands.DelivererUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDelivererCommandHandler(f)
}

func (c *CompositionRoot) CreateSetDelivererActivityCommandHandler() commands.SetDelivererActivityCommandHandler {
	var f commands.DelivererUoWFactory = FuncDelivererUoWFactory(func() commands.DelivererUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDelivererActivityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the echo-facing server over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(httpserver.ServerArgs{
		AddToCart:            c.CreateAddToCartCommandHandler(),
		ReduceCartItem:       c.CreateReduceCartItemCommandHandler(),
		RemoveCartItem:       c.CreateRemoveCartItemCommandHandler(),
		Checkout:             c.CreateCheckoutCommandHandler(),
		AcceptOrder:          c.CreateAcceptOrderCommandHandler(),
		AdvanceOrderStatus:   c.CreateAdvanceOrderStatusCommandHandler(),
		SubmitReview:         c.CreateSubmitReviewCommandHandler(),
		RestockProduct:       c.CreateRestockProductCommandHandler(),
		RegisterDeliverer:    c.CreateRegisterDelivererCommandHandler(),
		SetDelivererActivity: c.CreateSetDelivererActivityCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetOrdersByStatus:    c.CreateGetOrdersByStatusQueryHandler(),
		GetBuyerOrders:       c.CreateGetBuyerOrdersQueryHandler(),
		GetCart:              c.CreateGetCartQueryHandler(),
	})
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrdersByStatusQueryHandler(),
		c.sender,
		c.admins,
		c.config.StaleOrderMaxAge,
		c.logger,
	)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCartProductUoWFactory func() commands.CartProductUoW

func (f FuncCartProductUoWFactory) Create() commands.CartProductUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderDelivererUoWFactory func() commands.OrderDelivererUoW

func (f FuncOrderDelivererUoWFactory) Create() commands.OrderDelivererUoW {
	return f()
}

type FuncDelivererUoWFactory func() commands.DelivererUoW

func (f FuncDelivererUoWFactory) Create() commands.DelivererUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
