package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created
// through the NewDelivery factory method.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery tracks the shipment of one order.
//
// A Delivery is exclusively owned by its Order: it is created together with
// the order, persisted as part of the aggregate, and never shared with or
// reused by another order. The address is a snapshot of the member's address
// taken at order time; later changes to the member's registered address do
// not affect it.
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// address is the shipping destination snapshot
	address kernel.Address

	// status represents the current shipment state
	status DeliveryStatus

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery creates a new Delivery in Ready status for the given destination.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	delivery := &Delivery{
		status:        Ready,
		isConstructed: true,
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setAddress(address),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreDelivery reconstructs a Delivery from persistence with its stored status.
func RestoreDelivery(id kernel.UUID, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	delivery, err := NewDelivery(id, address)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	delivery.status = status
	return delivery, nil
}

// Validate ensures the Delivery instance was properly constructed through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Address returns the shipping destination snapshot.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

// Status returns the current shipment state.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// Ship marks the shipment as having left; the status becomes InTransit.
func (d *Delivery) Ship() error {
	newStatus, err := d.status.Ship()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete marks the shipment as delivered; the status becomes Completed.
// A completed delivery blocks cancellation of its order.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}
