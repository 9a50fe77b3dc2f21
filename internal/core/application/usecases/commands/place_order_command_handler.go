package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for placing an order.
//
// The whole operation runs in one transaction: member and item are resolved,
// the item's stock is decremented through the ledger, the delivery snapshots
// the member's address, the line captures the item's current price, and the
// assembled aggregate is persisted. A failure at any step (missing entity,
// insufficient stock) rolls everything back.
//
// The item row is loaded with a row lock so two concurrent placements against
// the same item serialize on the stock check.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Order timestamps are taken from the wall clock.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return NewPlaceOrderCommandHandlerWithClock(uowFactory, time.Now)
}

// NewPlaceOrderCommandHandlerWithClock creates a handler with an injectable
// now-source for deterministic timestamps in tests.
func NewPlaceOrderCommandHandlerWithClock(uowFactory UoWFactory, now func() time.Time) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the order placement command.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	orderingMember, err := uow.MemberRepository().Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	orderedItem, err := itemRepo.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	delivery, err := order.NewDelivery(kernel.NewUUID(), orderingMember.Address())
	if err != nil {
		return err
	}

	if err = orderedItem.RemoveStock(cmd.Quantity()); err != nil {
		return err
	}

	line, err := order.NewLine(kernel.NewUUID(), orderedItem.ID(), orderedItem.Price(), cmd.Quantity())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		orderingMember.ID(),
		delivery,
		[]*order.Line{line},
		h.now(),
	)
	if err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, orderedItem); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
