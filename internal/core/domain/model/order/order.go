package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIllegalCancellation is the unwrap target for every rejected cancellation.
	// Callers classify cancellation rejections with errors.Is against this value.
	ErrIllegalCancellation = errors.New("order cannot be cancelled")

	// ErrOrderAlreadyCancelled is the cause when cancelling an already cancelled order.
	// Re-running the cancellation would credit the stock a second time.
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")

	// ErrDeliveryAlreadyCompleted is the cause when cancelling an order whose
	// delivery was already completed.
	ErrDeliveryAlreadyCompleted = errors.New("delivery is already completed")
)

// Order is the aggregate root composing a member reference, a delivery record
// and one or more line entries. The aggregate is the unit of persistence: the
// delivery and the lines are created with the order, saved and removed with
// it, and never shared with another order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and member reference
//   - Owns exactly one delivery and at least one line entry
//   - Total price is always recomputed from the lines, never stored
//   - Status transitions Placed -> Cancelled exactly once
//   - Can only be created through NewOrder or RestoreOrder
//
// Children hold no owning pointer back to the order; navigation from a child
// to its parent goes through identifiers on the read side.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// memberID references the member that placed the order
	memberID kernel.UUID

	// delivery is the exclusively owned shipment record
	delivery *Delivery

	// lines are the exclusively owned line entries (at least one)
	lines []*Line

	// placedAt is the order timestamp
	placedAt time.Time

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder assembles a new Order in Placed status from its already validated
// children. It is called from the place-order use case only; callers outside
// the write path never construct orders directly.
//
// Parameters:
//   - id: Unique identifier for the order
//   - memberID: Identifier of the ordering member
//   - delivery: The shipment record created for this order
//   - lines: One or more line entries
//   - placedAt: The order timestamp
//
// Returns:
//   - *Order: The assembled order if all validations pass
//   - error: Validation error if any part is invalid
func NewOrder(
	id kernel.UUID,
	memberID kernel.UUID,
	delivery *Delivery,
	lines []*Line,
	placedAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setMemberID(memberID),
		order.setDelivery(delivery),
		order.setLines(lines),
		order.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status.
func RestoreOrder(
	id kernel.UUID,
	memberID kernel.UUID,
	delivery *Delivery,
	lines []*Line,
	placedAt time.Time,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, memberID, delivery, lines, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MemberID returns the identifier of the member that placed the order.
func (o *Order) MemberID() kernel.UUID {
	return o.memberID
}

// Delivery returns the order's shipment record.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Lines returns the order's line entries.
func (o *Order) Lines() []*Line {
	return o.lines
}

// PlacedAt returns the order timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the sum of all line subtotals.
// This is a pure computation over the in-memory lines; it never triggers I/O
// and the result is never stored redundantly.
func (o *Order) TotalPrice() int {
	total := 0
	for _, line := range o.lines {
		total += line.Subtotal()
	}
	return total
}

// Cancel transitions the order to Cancelled.
//
// This method enforces the following business rules:
//   - An already cancelled order cannot be cancelled again
//   - An order whose delivery is completed cannot be cancelled
//
// Cancel only flips the aggregate's state. Restoring the stock that was
// removed when the order was placed is the caller's responsibility: the
// cancel use case walks the lines and credits each item's ledger within the
// same transaction.
//
// Returns:
//   - nil on successful cancellation
//   - an error matching ErrIllegalCancellation if the order may not be cancelled
func (o *Order) Cancel() error {
	if o.status == Cancelled {
		return fmt.Errorf("%w: %w", ErrIllegalCancellation, ErrOrderAlreadyCancelled)
	}

	if o.delivery.Status() == Completed {
		return fmt.Errorf("%w: %w", ErrIllegalCancellation, ErrDeliveryAlreadyCompleted)
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIllegalCancellation, err)
	}

	o.status = newStatus
	return nil
}

// ShipDelivery marks the order's shipment as having left.
// Valid only while the delivery is Ready.
func (o *Order) ShipDelivery() error {
	return o.delivery.Ship()
}

// CompleteDelivery marks the order's shipment as delivered.
// Valid only while the delivery is InTransit. After completion the order can
// no longer be cancelled.
func (o *Order) CompleteDelivery() error {
	return o.delivery.Complete()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	o.memberID = memberID
	return nil
}

func (o *Order) setDelivery(delivery *Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}
