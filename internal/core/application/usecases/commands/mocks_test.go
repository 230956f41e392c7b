package commands_test

import (
	"context"
	"testing"

	"market/internal/core/application/usecases/commands"
	"market/internal/core/domain/model/cart"
	"market/internal/core/domain/model/deliverer"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/domain/model/product"
	"market/internal/core/domain/model/review"
	"market/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func chatID(t *testing.T, id int64) kernel.ChatID {
	t.Helper()

	chat, err := kernel.NewChatID(id)
	require.NoError(t, err)
	return chat
}

func testProduct(t *testing.T, price float64, stock int) *product.Product {
	t.Helper()

	p, err := product.NewProduct(
		kernel.NewUUID(), "Pizza", decimal.NewFromFloat(price), decimal.NewFromFloat(price/2), stock)
	require.NoError(t, err)
	return p
}

func testDeliverer(t *testing.T, chat kernel.ChatID) *deliverer.Deliverer {
	t.Helper()

	d, err := deliverer.NewDeliverer(kernel.NewUUID(), chat, "Alice", "+15550101")
	require.NoError(t, err)
	return d
}

func placedOrder(t *testing.T, buyer kernel.ChatID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1)
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderArgs{
		ID:              kernel.NewUUID(),
		Buyer:           buyer,
		DeliveryAddress: "5 Nassef st.",
		TotalPrice:      decimal.NewFromFloat(10.00),
		Items:           []order.Item{item},
	})
	require.NoError(t, err)
	return o
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Increment(ctx context.Context, buyer kernel.ChatID, productID kernel.UUID) error {
	return m.Called(ctx, buyer, productID).Error(0)
}

func (m *MockCartRepository) GetForUpdate(
	ctx context.Context, buyer kernel.ChatID, productID kernel.UUID,
) (*cart.Line, error) {
	args := m.Called(ctx, buyer, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Line), args.Error(1)
}

func (m *MockCartRepository) GetAllForBuyerForUpdate(ctx context.Context, buyer kernel.ChatID) ([]*cart.Line, error) {
	args := m.Called(ctx, buyer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Line), args.Error(1)
}

func (m *MockCartRepository) Update(ctx context.Context, line *cart.Line) error {
	return m.Called(ctx, line).Error(0)
}

func (m *MockCartRepository) Remove(ctx context.Context, buyer kernel.ChatID, productID kernel.UUID) error {
	return m.Called(ctx, buyer, productID).Error(0)
}

func (m *MockCartRepository) RemoveMany(ctx context.Context, buyer kernel.ChatID, productIDs []kernel.UUID) error {
	return m.Called(ctx, buyer, productIDs).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDelivererRepository struct{ mock.Mock }

func (m *MockDelivererRepository) Add(ctx context.Context, d *deliverer.Deliverer) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDelivererRepository) Update(ctx context.Context, d *deliverer.Deliverer) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDelivererRepository) Get(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverer.Deliverer), args.Error(1)
}

func (m *MockDelivererRepository) GetByChat(ctx context.Context, chat kernel.ChatID) (*deliverer.Deliverer, error) {
	args := m.Called(ctx, chat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverer.Deliverer), args.Error(1)
}

func (m *MockDelivererRepository) GetAllActive(ctx context.Context) ([]*deliverer.Deliverer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deliverer.Deliverer), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) GetByOrderAndBuyer(
	ctx context.Context, orderID kernel.UUID, buyer kernel.ChatID,
) (*review.Review, error) {
	args := m.Called(ctx, orderID, buyer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) GetAllForDeliverer(
	ctx context.Context, delivererID kernel.UUID,
) ([]*review.Review, error) {
	args := m.Called(ctx, delivererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

// MockUoW satisfies every per-command unit of work interface, so each
// handler test wires only the repositories it expects to touch.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DelivererRepository() ports.DelivererRepository {
	return m.Called().Get(0).(ports.DelivererRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	return m.Called().Get(0).(ports.ReviewRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	return m.Called().Get(0).(commands.CartUoW)
}

type MockCartProductUoWFactory struct{ mock.Mock }

func (m *MockCartProductUoWFactory) Create() commands.CartProductUoW {
	return m.Called().Get(0).(commands.CartProductUoW)
}

type MockOrderDelivererUoWFactory struct{ mock.Mock }

func (m *MockOrderDelivererUoWFactory) Create() commands.OrderDelivererUoW {
	return m.Called().Get(0).(commands.OrderDelivererUoW)
}

type MockDelivererUoWFactory struct{ mock.Mock }

func (m *MockDelivererUoWFactory) Create() commands.DelivererUoW {
	return m.Called().Get(0).(commands.DelivererUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	return m.Called().Get(0).(commands.ProductUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	return m.Called().Get(0).(commands.ReviewUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderPlaced(ctx context.Context, o *order.Order, rejected []kernel.UUID) {
	m.Called(ctx, o, rejected)
}

func (m *MockNotifier) OrderAccepted(ctx context.Context, o *order.Order, d *deliverer.Deliverer) {
	m.Called(ctx, o, d)
}

func (m *MockNotifier) OrderStatusChanged(ctx context.Context, o *order.Order, d *deliverer.Deliverer) {
	m.Called(ctx, o, d)
}
