package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindOrdersQueryHandler retrieves orders matching a search filter.
type FindOrdersQueryHandler struct {
	db *gorm.DB
}

// NewFindOrdersQueryHandler creates a handler for the filtered order search.
func NewFindOrdersQueryHandler(db *gorm.DB) FindOrdersQueryHandler {
	return FindOrdersQueryHandler{db: db}
}

// Handle executes the search. The WHERE clause is assembled from the filters
// that are actually set; lines for the matching orders load in one IN query.
func (h FindOrdersQueryHandler) Handle(
	ctx context.Context,
	query FindOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := strings.Builder{}
	sql.WriteString(`
		SELECT
			o.id,
			m.name,
			o.placed_at,
			o.status,
			d.address_city,
			d.address_street,
			d.address_zip_code
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.order_id = o.id
	`)

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if query.MemberName() != "" {
		conditions = append(conditions, "m.name LIKE ?")
		args = append(args, "%"+query.MemberName()+"%")
	}

	if query.HasStatus() {
		conditions = append(conditions, "o.status = ?")
		args = append(args, int(query.Status()))
	}

	if len(conditions) > 0 {
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(conditions, " AND "))
	}

	sql.WriteString(" ORDER BY o.placed_at, o.id")

	orders := make([]OrderResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var memberName string
		var placedAt time.Time
		var status int
		var city, street, zipCode string

		err = rows.Scan(&id, &memberName, &placedAt, &status, &city, &street, &zipCode)
		if err != nil {
			return nil, err
		}

		resp, headErr := scanOrderHead(id, memberName, placedAt, status, city, street, zipCode)
		if headErr != nil {
			return nil, headErr
		}
		orders = append(orders, resp)
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	grouped, err := loadOrderLinesBatch(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Lines = grouped[orderIDs[i]]
	}

	return orders, nil
}
