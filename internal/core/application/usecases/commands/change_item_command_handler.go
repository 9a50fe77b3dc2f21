package commands

import (
	"context"
)

// ChangeItemCommandHandler handles item detail updates.
// The item is loaded, mutated through its intention-revealing method and
// saved back explicitly; there is no ambient change tracking.
type ChangeItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewChangeItemCommandHandler creates a handler for item update operations.
func NewChangeItemCommandHandler(uowFactory ItemUoWFactory) ChangeItemCommandHandler {
	return ChangeItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item update command.
func (h *ChangeItemCommandHandler) Handle(ctx context.Context, cmd ChangeItemCommand) error {
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

	itemRepo := uow.ItemRepository()

	existing, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = existing.ChangeDetails(cmd.Name(), cmd.Price()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
