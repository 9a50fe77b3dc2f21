package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrGetOrdersWithLinesQueryIsNotConstructed = errors.New(
	"GetOrdersWithLinesQuery must be created via NewGetOrdersWithLinesQuery constructor",
)

// GetOrdersWithLinesQuery retrieves all orders in one query joining every
// association including the lines. The collection join duplicates each root
// row once per line, so the handler deduplicates in memory and the database
// cannot apply offset pagination to this shape. Use GetOrdersPagedQuery when
// paging is needed.
type GetOrdersWithLinesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersWithLinesQuery creates a query for the single-join order listing.
func NewGetOrdersWithLinesQuery() GetOrdersWithLinesQuery {
	return GetOrdersWithLinesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersWithLinesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersWithLinesQueryIsNotConstructed)
}
