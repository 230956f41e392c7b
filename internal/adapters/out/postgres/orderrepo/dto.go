// Package orderrepo persists order aggregates, mapping between the domain
// model and its relational representation. The order header and its item
// snapshot live in separate tables; items are immutable after creation.
package orderrepo

import (
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps come from the aggregate, not from GORM's conventions.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID         int64     `gorm:"index"`
	DeliveryAddress string
	ContactPhone    string
	TotalPrice      decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status          int             `gorm:"index"`
	DelivererID     *uuid.UUID      `gorm:"type:uuid;index"`
	Items           []ItemDTO       `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line of an order's item snapshot.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null"`
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var delivererID *uuid.UUID
	if id := o.Deliverer(); id != nil {
		raw := id.Bytes()
		delivererID = &raw
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   o.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		BuyerID:         o.Buyer().Int64(),
		DeliveryAddress: o.DeliveryAddress(),
		ContactPhone:    o.ContactPhone(),
		TotalPrice:      o.TotalPrice(),
		Status:          int(o.Status()),
		DelivererID:     delivererID,
		Items:           items,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyer, err := kernel.NewChatID(dto.BuyerID)
	if err != nil {
		return nil, err
	}

	var delivererID *kernel.UUID
	if dto.DelivererID != nil {
		dID, delivererErr := kernel.UUIDFromBytes((*dto.DelivererID)[:])
		if delivererErr != nil {
			return nil, delivererErr
		}

		delivererID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		order.NewOrderArgs{
			ID:              id,
			Buyer:           buyer,
			DeliveryAddress: dto.DeliveryAddress,
			ContactPhone:    dto.ContactPhone,
			TotalPrice:      dto.TotalPrice,
			Items:           items,
		},
		order.Status(dto.Status),
		delivererID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
