package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one item/quantity/price entry within an order.
//
// A Line is exclusively owned by its Order and persisted as part of the
// aggregate. The unit price is captured from the item at order time and
// deliberately decoupled from the item's current price, so historical orders
// stay stable when prices change.
type Line struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// itemID references the ordered item
	itemID kernel.UUID

	// price is the unit price captured at order time
	price int

	// quantity is the ordered amount (must be positive)
	quantity int

	// isConstructed ensures the line was created via a constructor
	isConstructed bool
}

// NewLine creates a new Line binding an item, the unit price charged at order
// time, and a positive quantity.
func NewLine(id kernel.UUID, itemID kernel.UUID, price int, quantity int) (*Line, error) {
	line := &Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setItemID(itemID),
		line.setPrice(price),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a Line from persistence.
// It applies the same validation as NewLine.
func RestoreLine(id kernel.UUID, itemID kernel.UUID, price int, quantity int) (*Line, error) {
	return NewLine(id, itemID, price, quantity)
}

// Validate ensures the Line instance was properly constructed through a constructor.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}

	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ItemID returns the identifier of the ordered item.
func (l *Line) ItemID() kernel.UUID {
	return l.itemID
}

// Price returns the unit price captured at order time.
func (l *Line) Price() int {
	return l.price
}

// Quantity returns the ordered amount.
func (l *Line) Quantity() int {
	return l.quantity
}

// Subtotal returns quantity times the captured unit price.
func (l *Line) Subtotal() int {
	return l.price * l.quantity
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *Line) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is not greater than 0", price))
	}
	l.price = price
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}
