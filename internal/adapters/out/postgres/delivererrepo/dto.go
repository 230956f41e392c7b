// Package delivererrepo persists deliverer aggregates, mapping between
// the domain model and its relational representation.
package delivererrepo

import (
	"market/internal/core/domain/model/deliverer"
	"market/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DelivererDTO represents the database structure for persisting deliverer
// aggregates. The chat id is unique: one chat, one deliverer profile.
type DelivererDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ChatID        int64           `gorm:"uniqueIndex"`
	Name          string          `gorm:"not null"`
	Phone         string          `gorm:"not null"`
	IsActive      bool            `gorm:"index"`
	RatingSummary decimal.Decimal `gorm:"type:decimal(4,2)"`
}

// TableName specifies the database table name for deliverer entities.
func (DelivererDTO) TableName() string {
	return "deliverers"
}

func fromDomain(d *deliverer.Deliverer) DelivererDTO {
	return DelivererDTO{
		ID:            d.ID().Bytes(),
		ChatID:        d.Chat().Int64(),
		Name:          d.Name(),
		Phone:         d.Phone(),
		IsActive:      d.IsActive(),
		RatingSummary: d.RatingSummary(),
	}
}

func toDomain(dto DelivererDTO) (*deliverer.Deliverer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	chat, err := kernel.NewChatID(dto.ChatID)
	if err != nil {
		return nil, err
	}

	return deliverer.RestoreDeliverer(id, chat, dto.Name, dto.Phone, dto.IsActive, dto.RatingSummary)
}
