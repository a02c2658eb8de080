package commands_test

import (
	"context"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeleteProductRepository struct{ mock.Mock }

func (m *MockDeleteProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockDeleteProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockDeleteProductRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeleteProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeleteUoW struct{ mock.Mock }

func (m *MockDeleteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDeleteUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockDeleteUoWFactory struct{ mock.Mock }

func (m *MockDeleteUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func TestDeleteOrderCommandHandler_Handle_CustomerDeletesCancelled(t *testing.T) {
	ctx := t.Context()

	owner := testActor(t, actor.Customer)
	testOrder := makeTestOrder(t, owner.ID(), order.Cancelled)

	cmd, err := commands.NewDeleteOrderCommand(owner, testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	uow := new(MockDeleteUoW)

	// A cancelled order skips catalog resolution entirely.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Delete", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_CustomerDeletesUnresolvable(t *testing.T) {
	ctx := t.Context()

	owner := testActor(t, actor.Customer)

	resolvable, err := order.NewLineItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	unresolvable, err := order.NewLineItem(kernel.NewUUID(), 2)
	require.NoError(t, err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), owner.ID(), []order.LineItem{resolvable, unresolvable}, 900)
	require.NoError(t, err)
	require.NoError(t, testOrder.ChangeStatus(order.Delivered))

	cmd, err := commands.NewDeleteOrderCommand(owner, testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	productRepo := new(MockDeleteProductRepository)
	uow := new(MockDeleteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Exists", ctx, resolvable.ProductID()).Return(true, nil).Once(),
		productRepo.On("Exists", ctx, unresolvable.ProductID()).Return(false, nil).Once(),
		orderRepo.On("Delete", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_CustomerForbiddenWhenResolvable(t *testing.T) {
	ctx := t.Context()

	owner := testActor(t, actor.Customer)
	testOrder := makeTestOrder(t, owner.ID(), order.Delivered)

	cmd, err := commands.NewDeleteOrderCommand(owner, testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	productRepo := new(MockDeleteProductRepository)
	uow := new(MockDeleteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Exists", ctx, mock.AnythingOfType("kernel.UUID")).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOperationForbidden)

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_AdminSkipsCatalogLookups(t *testing.T) {
	ctx := t.Context()

	admin := testActor(t, actor.Admin)
	testOrder := makeTestOrder(t, kernel.NewUUID(), order.Shipped)

	cmd, err := commands.NewDeleteOrderCommand(admin, testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	uow := new(MockDeleteUoW)

	// Admin deletion is decided on status alone, so no ProductRepository
	// call is registered. Shipped is not cancelled: forbidden.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOperationForbidden)

	var forbidden *errs.OperationForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "delete order", forbidden.Operation)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	admin := testActor(t, actor.Admin)
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrderCommand(admin, orderID)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	uow := new(MockDeleteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
