// Package productrepo persists product aggregates, mapping between the
// domain model and its relational representation.
package productrepo

import (
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"not null"`
	Price             decimal.Decimal `gorm:"type:decimal(12,2)"`
	PurchasePrice     decimal.Decimal `gorm:"type:decimal(12,2)"`
	AvailableQuantity int
	IsAvailable       bool `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:                p.ID().Bytes(),
		Name:              p.Name(),
		Price:             p.Price(),
		PurchasePrice:     p.PurchasePrice(),
		AvailableQuantity: p.AvailableQuantity(),
		IsAvailable:       p.IsAvailable(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Price,
		dto.PurchasePrice,
		dto.AvailableQuantity,
		dto.IsAvailable,
	)
}
