package commands_test

import (
	"context"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductUoW struct{ mock.Mock }

func (m *MockProductUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

func TestNewCreateProductCommand(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		productID := kernel.NewUUID()

		cmd, err := commands.NewCreateProductCommand(productID, "Ceramic Mug", 1250, true, "mug.png", "kitchen")

		require.NoError(t, err)
		assert.True(t, cmd.ProductID().IsEqual(productID))
		assert.Equal(t, "Ceramic Mug", cmd.Name())
		assert.Equal(t, int64(1250), cmd.Price())
		assert.True(t, cmd.InStock())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "", 100, true, "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Mug", -1, true, "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Ceramic Mug", 1250, true, "mug.png", "kitchen")
	require.NoError(t, err)

	productRepo := new(MockDeleteProductRepository)
	uow := new(MockProductUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID().IsEqual(cmd.ProductID()) && p.Name() == "Ceramic Mug" && p.Price() == 1250
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRemoveProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRemoveProductCommand(kernel.NewUUID())
	require.NoError(t, err)

	productRepo := new(MockDeleteProductRepository)
	uow := new(MockProductUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Delete", ctx, cmd.ProductID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
