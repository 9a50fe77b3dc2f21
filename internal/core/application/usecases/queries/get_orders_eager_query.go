package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrGetOrdersEagerQueryIsNotConstructed = errors.New(
	"GetOrdersEagerQuery must be created via NewGetOrdersEagerQuery constructor",
)

// GetOrdersEagerQuery retrieves all orders with the member and delivery
// joined into the root query. Lines are still fetched with one query per
// order, so this strategy issues 1+N queries for N orders.
type GetOrdersEagerQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersEagerQuery creates a query for the to-one-joined order listing.
func NewGetOrdersEagerQuery() GetOrdersEagerQuery {
	return GetOrdersEagerQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersEagerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersEagerQueryIsNotConstructed)
}
