package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrGetOrderSummariesBatchedQueryIsNotConstructed = errors.New(
	"GetOrderSummariesBatchedQuery must be created via NewGetOrderSummariesBatchedQuery constructor",
)

// GetOrderSummariesBatchedQuery retrieves all orders projected directly into
// their display shape with a fixed query count: one header query plus one
// IN-batched line query, regardless of how many orders exist.
type GetOrderSummariesBatchedQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderSummariesBatchedQuery creates a query for the batched summary listing.
func NewGetOrderSummariesBatchedQuery() GetOrderSummariesBatchedQuery {
	return GetOrderSummariesBatchedQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummariesBatchedQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummariesBatchedQueryIsNotConstructed)
}
