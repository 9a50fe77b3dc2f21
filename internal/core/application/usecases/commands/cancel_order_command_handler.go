package commands

import (
	"context"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
//
// Cancellation is guarded by the aggregate: an order whose delivery completed,
// or one that was already cancelled, is rejected before any state changes.
// When the guard passes, the status flip and one stock restoration per line
// commit together or not at all, so a cancelled order restores exactly the
// stock it removed, exactly once.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.Cancel(); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	for _, line := range existing.Lines() {
		restoredItem, lineErr := itemRepo.GetForUpdate(ctx, line.ItemID())
		if lineErr != nil {
			return lineErr
		}

		if lineErr = restoredItem.AddStock(line.Quantity()); lineErr != nil {
			return lineErr
		}

		if lineErr = itemRepo.Update(ctx, restoredItem); lineErr != nil {
			return lineErr
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
