package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrShipDeliveryCommandIsNotConstructed = errors.New(
	"ShipDeliveryCommand must be created via NewShipDeliveryCommand constructor",
)

// ShipDeliveryCommand represents a request to mark an order's shipment as
// having left the warehouse.
type ShipDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewShipDeliveryCommand creates a command to ship the delivery of the given order.
func NewShipDeliveryCommand(orderID kernel.UUID) (ShipDeliveryCommand, error) {
	deliveryCommand := ShipDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryCommand.setOrderID(orderID); err != nil {
		return ShipDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrShipDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose delivery ships.
func (c ShipDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ShipDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
