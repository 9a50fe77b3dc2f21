package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is the unit of persistence: the order row, its delivery and
// its lines are written and read together.
type OrderRepository interface {
	// Add persists a new order aggregate to storage: the order itself, its
	// delivery and all of its lines, in the ambient transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Only the order
	// and delivery state can change after placement; lines are immutable.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a complete order aggregate by its unique identifier,
	// including its delivery and all of its lines.
	// Returns an ObjectNotFoundError when no order with the identifier exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
