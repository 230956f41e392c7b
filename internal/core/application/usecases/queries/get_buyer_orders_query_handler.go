package queries

import (
	"context"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler reads a buyer's order history from the database.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer order history.
// Requires a GORM database connection for query execution.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]GetBuyerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_price,
			created_at
		FROM orders
		WHERE buyer_id = ?
		ORDER BY created_at DESC
	`, query.Buyer().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetBuyerOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetBuyerOrdersQueryResponse
		var id uuid.UUID
		var status int

		if err = rows.Scan(&id, &status, &resp.TotalPrice, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
