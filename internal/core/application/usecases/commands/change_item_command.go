package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrChangeItemCommandIsNotConstructed = errors.New(
	"ChangeItemCommand must be created via NewChangeItemCommand constructor",
)

// ChangeItemCommand represents a request to update an item's display name and
// unit price. Stock is deliberately out of scope; it only changes through the
// ledger operations on the write path for orders.
type ChangeItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	name   string
	price  int

	guard guard.ConstructorGuard
}

// NewChangeItemCommand creates a command to update an item's details.
func NewChangeItemCommand(itemID kernel.UUID, name string, price int) (ChangeItemCommand, error) {
	itemCommand := ChangeItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
	); err != nil {
		return ChangeItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to change.
func (c ChangeItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name.
func (c ChangeItemCommand) Name() string {
	return c.name
}

// Price returns the new unit price.
func (c ChangeItemCommand) Price() int {
	return c.price
}

func (c *ChangeItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *ChangeItemCommand) setPrice(price int) error {
	if price <= 0 {
		return ErrItemPriceIsInvalid
	}

	c.price = price
	return nil
}
