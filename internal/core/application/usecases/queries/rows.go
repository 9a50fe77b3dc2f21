package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadOrderLines fetches the lines of a single order, joined with the item
// name, ordered by line ID.
func loadOrderLines(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.name,
			ol.price,
			ol.quantity
		FROM order_lines ol
		JOIN items i ON i.id = ol.item_id
		WHERE ol.order_id = ?
		ORDER BY ol.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		if err = rows.Scan(&line.ItemName, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// loadOrderLinesBatch fetches the lines of many orders in one IN query and
// returns them grouped by order ID. This is what keeps the paged strategy at
// a fixed query count regardless of page size.
func loadOrderLinesBatch(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[uuid.UUID][]OrderLineResponse, error) {
	grouped := make(map[uuid.UUID][]OrderLineResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			ol.order_id,
			i.name,
			ol.price,
			ol.quantity
		FROM order_lines ol
		JOIN items i ON i.id = ol.item_id
		WHERE ol.order_id IN ?
		ORDER BY ol.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var line OrderLineResponse

		if err = rows.Scan(&orderID, &line.ItemName, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		grouped[orderID] = append(grouped[orderID], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return grouped, nil
}

// scanOrderHead converts the shared (id, member name, placed_at, status,
// address) column prefix of the joined queries into an OrderResponse without
// lines.
func scanOrderHead(
	id uuid.UUID,
	memberName string,
	placedAt time.Time,
	status int,
	city, street, zipCode string,
) (OrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	address, err := kernel.NewAddress(city, street, zipCode)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:         orderID,
		MemberName: memberName,
		PlacedAt:   placedAt,
		Status:     order.Status(status).String(),
		Address:    address,
	}, nil
}
