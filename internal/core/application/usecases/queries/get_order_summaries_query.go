package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrGetOrderSummariesQueryIsNotConstructed = errors.New(
	"GetOrderSummariesQuery must be created via NewGetOrderSummariesQuery constructor",
)

// GetOrderSummariesQuery retrieves all orders projected directly into their
// display shape, one header query plus one line query per order.
type GetOrderSummariesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderSummariesQuery creates a query for the order summary listing.
func NewGetOrderSummariesQuery() GetOrderSummariesQuery {
	return GetOrderSummariesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummariesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummariesQueryIsNotConstructed)
}
