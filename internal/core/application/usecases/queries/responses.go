// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain model and repositories entirely, reading
// through raw SQL into response shapes tailored for the API.
//
// The order listing exists in several deliberately different retrieval
// strategies. They all produce the same response shape from the same data,
// but differ in how many round trips they make and how much duplicated row
// traffic the collection join causes:
//
//   - GetOrdersQuery: one query per order and per association. Simple and slow.
//   - GetOrdersEagerQuery: members and deliveries joined in one pass, lines
//     still fetched per order.
//   - GetOrdersWithLinesQuery: everything in one join. Root rows arrive
//     duplicated per line, so offset pagination is unusable here.
//   - GetOrdersPagedQuery: to-one joins paged in SQL, lines batched with one
//     IN query for the whole page.
//   - GetOrderSummariesQuery: direct projection into the display shape, one
//     header query plus one line projection query per order.
//   - GetOrderSummariesBatchedQuery: the same projection with the per-order
//     line queries collapsed into a single IN query.
//   - GetOrdersFlatQuery: one flat join regrouped in memory.
//
// FindOrdersQuery is the filtered search used by the order list screen.
package queries

import (
	"time"

	"shop/internal/core/domain/model/kernel"
)

// OrderResponse is the order shape returned by the list queries.
// Every retrieval strategy produces this same shape so callers can switch
// strategies without changing their handling code.
type OrderResponse struct {
	ID         kernel.UUID
	MemberName string
	PlacedAt   time.Time
	Status     string
	Address    kernel.Address
	Lines      []OrderLineResponse
}

// OrderLineResponse is one purchased line within an OrderResponse.
// ItemName reflects the item's current name; Price is the unit price
// captured at placement time.
type OrderLineResponse struct {
	ItemName string
	Price    int
	Quantity int
}

// OrderSummaryResponse is the display projection returned by
// GetOrderSummariesQuery. Unlike OrderResponse it is never assembled from
// duplicated join rows; headers and lines are projected directly, so no
// regrouping happens at all.
type OrderSummaryResponse struct {
	ID         kernel.UUID
	MemberName string
	PlacedAt   time.Time
	Status     string
	Address    kernel.Address
	Lines      []OrderLineResponse
}
