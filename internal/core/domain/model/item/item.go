// Package item contains the Item entity and its stock ledger.
// An item tracks the available quantity of one sellable product; the ledger
// invariant is that stock never goes negative, and AddStock/RemoveStock are
// the only two operations allowed to change it.
package item

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created through
	// the NewItem factory method. This ensures all items are properly validated.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrInsufficientStock is the unwrap target of InsufficientStockError.
	// Callers classify stock shortages with errors.Is against this value.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError indicates that a stock decrement would drive the
// available quantity negative. The decrement is rejected as a whole; stock is
// left unchanged.
type InsufficientStockError struct {
	ItemID    kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given item.
func NewInsufficientStockError(itemID kernel.UUID, requested int, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ItemID:    itemID,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: item %s, requested %d, available %d",
		ErrInsufficientStock, e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Item represents one sellable product together with its stock ledger.
//
// Item follows these invariants:
//   - Must have a valid unique identifier and a valid kind
//   - Must have a non-empty name and a positive unit price
//   - Stock quantity is never negative
//   - Stock is mutated only through AddStock and RemoveStock
//   - Can only be created through NewItem or RestoreItem
//
// The unit price is the item's current list price. Orders capture the price
// into their line entries at order time, so changing it here never rewrites
// the total of an already placed order.
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// kind is the item's category
	kind Kind

	// name is the item's display name
	name string

	// price is the current unit price
	price int

	// stock is the available quantity (never negative)
	stock int

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a new Item instance with validation. This is the only way
// to create a valid Item, ensuring all business invariants are maintained.
func NewItem(id kernel.UUID, kind Kind, name string, price int, stock int) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setKind(kind),
		item.setName(name),
		item.setPrice(price),
		item.setStock(stock),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
// It applies the same validation as NewItem.
func RestoreItem(id kernel.UUID, kind Kind, name string, price int, stock int) (*Item, error) {
	return NewItem(id, kind, name, price, stock)
}

// Validate ensures the Item instance was properly constructed through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Kind returns the item's category.
func (i *Item) Kind() Kind {
	return i.kind
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current unit price.
func (i *Item) Price() int {
	return i.price
}

// Stock returns the available quantity.
func (i *Item) Stock() int {
	return i.stock
}

// AddStock increases the available quantity by the given amount.
// The amount must be positive; there is no upper bound.
func (i *Item) AddStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.stock += quantity
	return nil
}

// RemoveStock decreases the available quantity by the given amount.
//
// The amount must be positive. If it exceeds the available quantity the
// whole decrement is rejected with InsufficientStockError and stock is left
// unchanged; there is no partial decrement.
func (i *Item) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if quantity > i.stock {
		return NewInsufficientStockError(i.id, quantity, i.stock)
	}

	i.stock -= quantity
	return nil
}

// ChangeDetails replaces the item's display name and unit price.
// Stock is untouched; already placed orders keep their captured price.
func (i *Item) ChangeDetails(name string, price int) error {
	if err := errors.Join(
		i.setName(name),
		i.setPrice(price),
	); err != nil {
		return err
	}

	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid", fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}
