// Package cartrepo persists cart lines, mapping between the domain model
// and its relational representation. A cart is not stored as one row;
// each (buyer, product) pair is its own line keyed by the composite
// primary key.
package cartrepo

import (
	"market/internal/core/domain/model/cart"
	"market/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LineDTO represents the database structure for persisting cart lines.
type LineDTO struct {
	BuyerID   int64     `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null"`
}

// TableName specifies the database table name for cart lines.
func (LineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(line *cart.Line) LineDTO {
	return LineDTO{
		BuyerID:   line.Buyer().Int64(),
		ProductID: line.ProductID().Bytes(),
		Quantity:  line.Quantity(),
	}
}

func toDomain(dto LineDTO) (*cart.Line, error) {
	buyer, err := kernel.NewChatID(dto.BuyerID)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return cart.RestoreLine(buyer, productID, dto.Quantity)
}
