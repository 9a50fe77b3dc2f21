package commands

import (
	"errors"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrItemPriceIsInvalid = errors.New("item price must be greater than 0")
	ErrItemStockIsInvalid = errors.New("item stock must not be negative")
)

// CreateItemCommand represents a request to register a new sellable item
// with its kind, display name, unit price and initial stock.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	kind   item.Kind
	name   string
	price  int
	stock  int

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to register a new item.
// Validates that the item ID and kind are valid, the name is not empty,
// the price is positive and the initial stock is not negative.
func NewCreateItemCommand(
	itemID kernel.UUID,
	kind item.Kind,
	name string,
	price int,
	stock int,
) (CreateItemCommand, error) {
	itemCommand := CreateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setKind(kind),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
		itemCommand.setStock(stock),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Kind returns the item's category.
func (c CreateItemCommand) Kind() item.Kind {
	return c.kind
}

// Name returns the item's display name.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Price returns the item's unit price.
func (c CreateItemCommand) Price() int {
	return c.price
}

// Stock returns the item's initial stock quantity.
func (c CreateItemCommand) Stock() int {
	return c.stock
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setKind(kind item.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateItemCommand) setPrice(price int) error {
	if price <= 0 {
		return ErrItemPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateItemCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrItemStockIsInvalid
	}

	c.stock = stock
	return nil
}
