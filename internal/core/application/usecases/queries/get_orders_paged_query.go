package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrGetOrdersPagedQueryIsNotConstructed = errors.New(
		"GetOrdersPagedQuery must be created via NewGetOrdersPagedQuery constructor",
	)
	ErrOffsetIsInvalid = errors.New("offset must not be negative")
	ErrLimitIsInvalid  = errors.New("limit must be greater than 0")
)

// GetOrdersPagedQuery retrieves a page of orders. To-one associations are
// joined and paged in SQL; the page's lines are then loaded with a single
// IN query. Exactly two queries per page, regardless of page size.
//
// This is the strategy the list endpoints should default to.
type GetOrdersPagedQuery struct {
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersPagedQuery creates a query for one page of the order listing.
// Offset must not be negative and limit must be positive.
func NewGetOrdersPagedQuery(offset int, limit int) (GetOrdersPagedQuery, error) {
	pagedQuery := GetOrdersPagedQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pagedQuery.setOffset(offset),
		pagedQuery.setLimit(limit),
	); err != nil {
		return GetOrdersPagedQuery{}, err
	}

	return pagedQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersPagedQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersPagedQueryIsNotConstructed)
}

// Offset returns the number of orders to skip.
func (q GetOrdersPagedQuery) Offset() int {
	return q.offset
}

// Limit returns the maximum number of orders to return.
func (q GetOrdersPagedQuery) Limit() int {
	return q.limit
}

func (q *GetOrdersPagedQuery) setOffset(offset int) error {
	if offset < 0 {
		return ErrOffsetIsInvalid
	}

	q.offset = offset
	return nil
}

func (q *GetOrdersPagedQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}
