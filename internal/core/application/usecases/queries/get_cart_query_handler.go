package queries

import (
	"context"

	"market/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a buyer's cart with product details from the
// database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart listings.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. An empty cart yields an empty slice, not an
// error; deciding what an empty cart means is the caller's business.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) ([]GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.product_id,
			p.name,
			l.quantity,
			p.price,
			p.available_quantity,
			p.is_available
		FROM cart_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.buyer_id = ?
		ORDER BY p.name
	`, query.Buyer().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]GetCartQueryResponse, 0)
	for rows.Next() {
		var line GetCartQueryResponse
		var productID uuid.UUID

		err = rows.Scan(
			&productID,
			&line.ProductName,
			&line.Quantity,
			&line.UnitPrice,
			&line.AvailableQuantity,
			&line.IsAvailable,
		)
		if err != nil {
			return nil, err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
