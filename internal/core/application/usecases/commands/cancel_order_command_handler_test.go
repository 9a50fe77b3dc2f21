package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

func testPlacedOrder(t *testing.T, itemID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	delivery, err := order.NewDelivery(kernel.NewUUID(), testAddress(t))
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), itemID, 10000, quantity)
	require.NoError(t, err)
	placed, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		delivery,
		[]*order.Line{line},
		time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return placed
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	book := testBook(t, 8)
	existing := testPlacedOrder(t, book.ID(), 2)

	cmd, err := commands.NewCancelOrderCommand(existing.ID())
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForUpdate", ctx, book.ID()).Return(book, nil).Once(),
		itemRepo.On("Update", ctx, book).Return(nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Cancelled, existing.Status())
	require.Equal(t, 10, book.Stock())

	itemRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	book := testBook(t, 10)
	existing := testPlacedOrder(t, book.ID(), 2)
	require.NoError(t, existing.Cancel())

	cmd, err := commands.NewCancelOrderCommand(existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrIllegalCancellation)
	require.ErrorIs(t, err, order.ErrOrderAlreadyCancelled)

	// Stock is not restored a second time.
	require.Equal(t, 10, book.Stock())
	uow.AssertNotCalled(t, "ItemRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CompletedDelivery(t *testing.T) {
	ctx := t.Context()
	book := testBook(t, 8)
	existing := testPlacedOrder(t, book.ID(), 2)
	require.NoError(t, existing.ShipDelivery())
	require.NoError(t, existing.CompleteDelivery())

	cmd, err := commands.NewCancelOrderCommand(existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrIllegalCancellation)
	require.ErrorIs(t, err, order.ErrDeliveryAlreadyCompleted)

	require.Equal(t, order.Placed, existing.Status())
	require.Equal(t, 8, book.Stock())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_RestoreError(t *testing.T) {
	ctx := t.Context()
	book := testBook(t, 8)
	existing := testPlacedOrder(t, book.ID(), 2)

	cmd, err := commands.NewCancelOrderCommand(existing.ID())
	require.NoError(t, err)

	// The restored item is fed back through AddStock with a broken ledger
	// write, so the transaction must roll back instead of committing.
	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForUpdate", ctx, book.ID()).Return(book, nil).Once(),
		itemRepo.On("Update", ctx, book).Return(item.NewInsufficientStockError(book.ID(), 2, 0)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory)

	err := h.Handle(ctx, commands.CancelOrderCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
