package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves orders with per-association follow-up queries.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the naive order listing.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are sorted by placement time, then ID
// for a stable ordering across all retrieval strategies.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	type orderRow struct {
		id       kernel.UUID
		memberID uuid.UUID
		placedAt time.Time
		status   int
	}

	orderRows := make([]orderRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			member_id,
			placed_at,
			status
		FROM orders
		ORDER BY placed_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row orderRow
		var id uuid.UUID

		if err = rows.Scan(&id, &row.memberID, &row.placedAt, &row.status); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.id = orderID
		orderRows = append(orderRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(orderRows))
	for _, row := range orderRows {
		resp := OrderResponse{
			ID:       row.id,
			PlacedAt: row.placedAt,
			Status:   order.Status(row.status).String(),
		}

		memberRow := h.db.WithContext(ctx).Raw(`
			SELECT name FROM members WHERE id = ?
		`, row.memberID).Row()
		if err = memberRow.Scan(&resp.MemberName); err != nil {
			return nil, err
		}

		var city, street, zipCode string
		deliveryRow := h.db.WithContext(ctx).Raw(`
			SELECT address_city, address_street, address_zip_code
			FROM deliveries
			WHERE order_id = ?
		`, row.id.Bytes()).Row()
		if err = deliveryRow.Scan(&city, &street, &zipCode); err != nil {
			return nil, err
		}

		address, addrErr := kernel.NewAddress(city, street, zipCode)
		if addrErr != nil {
			return nil, addrErr
		}
		resp.Address = address

		lines, linesErr := loadOrderLines(ctx, h.db, row.id)
		if linesErr != nil {
			return nil, linesErr
		}
		resp.Lines = lines

		orders = append(orders, resp)
	}

	return orders, nil
}
