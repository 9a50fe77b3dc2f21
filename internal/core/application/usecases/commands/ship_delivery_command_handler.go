package commands

import (
	"context"
)

// ShipDeliveryCommandHandler advances an order's delivery from Ready to InTransit.
type ShipDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipDeliveryCommandHandler creates a handler for delivery shipping operations.
func NewShipDeliveryCommandHandler(uowFactory OrderUoWFactory) ShipDeliveryCommandHandler {
	return ShipDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery shipping command.
func (h *ShipDeliveryCommandHandler) Handle(ctx context.Context, cmd ShipDeliveryCommand) error {
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

	if err = existing.ShipDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
