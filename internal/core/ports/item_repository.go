package ports

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for items and their stock ledger.
type ItemRepository interface {
	// Add persists a new item to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item, including its stock quantity.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by its unique identifier.
	// Returns an ObjectNotFoundError when no item with the identifier exists.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetForUpdate retrieves an item and locks its row for the duration of the
	// current transaction. Stock mutations must load through this method so two
	// concurrent decrements against the same item serialize on the row lock and
	// cannot both pass the stock check.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetAllBelowStock retrieves all items whose stock is strictly below the
	// given threshold. Used by the low-stock reporting job.
	GetAllBelowStock(ctx context.Context, threshold int) ([]*item.Item, error)
}
