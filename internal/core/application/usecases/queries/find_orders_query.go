package queries

import (
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrFindOrdersQueryIsNotConstructed = errors.New(
	"FindOrdersQuery must be created via NewFindOrdersQuery constructor",
)

// FindOrdersQuery retrieves orders filtered by member name and order status.
// Both filters are optional; an empty value means the dimension is not
// filtered, so the zero-filter query is equivalent to listing everything.
type FindOrdersQuery struct {
	memberName string
	status     order.Status
	hasStatus  bool

	guard guard.ConstructorGuard
}

// NewFindOrdersQuery creates a filtered order search.
// memberName matches member names containing the value; pass "" to skip.
// status must be a valid status name ("Placed", "Cancelled") or "" to skip.
func NewFindOrdersQuery(memberName string, status string) (FindOrdersQuery, error) {
	findQuery := FindOrdersQuery{
		memberName: memberName,
		guard:      guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return FindOrdersQuery{}, err
		}
		findQuery.status = parsed
		findQuery.hasStatus = true
	}

	return findQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q FindOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersQueryIsNotConstructed)
}

// MemberName returns the member name filter, or "" when unfiltered.
func (q FindOrdersQuery) MemberName() string {
	return q.memberName
}

// Status returns the status filter. Only meaningful when HasStatus is true.
func (q FindOrdersQuery) Status() order.Status {
	return q.status
}

// HasStatus reports whether the status filter is set.
func (q FindOrdersQuery) HasStatus() bool {
	return q.hasStatus
}
