package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrGetOrdersFlatQueryIsNotConstructed = errors.New(
	"GetOrdersFlatQuery must be created via NewGetOrdersFlatQuery constructor",
)

// GetOrdersFlatQuery retrieves all orders through one fully denormalized
// join and regroups the flat rows in memory. Unlike GetOrdersWithLinesQuery
// the regrouping does not depend on the rows of one order arriving
// adjacently; orders are keyed by ID and emitted in first-appearance order.
type GetOrdersFlatQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersFlatQuery creates a query for the flat-join order listing.
func NewGetOrdersFlatQuery() GetOrdersFlatQuery {
	return GetOrdersFlatQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersFlatQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersFlatQueryIsNotConstructed)
}
