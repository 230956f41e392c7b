// Package reviewrepo persists review aggregates, mapping between the
// domain model and its relational representation.
package reviewrepo

import (
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting review
// aggregates. One buyer leaves at most one review per order; the unique
// index enforces it below the application.
type ReviewDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID     int64     `gorm:"uniqueIndex:idx_reviews_order_buyer"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_order_buyer"`
	DelivererID uuid.UUID `gorm:"type:uuid;index"`
	Rating      int       `gorm:"not null"`
	Text        string
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:          r.ID().Bytes(),
		BuyerID:     r.Buyer().Int64(),
		OrderID:     r.OrderID().Bytes(),
		DelivererID: r.DelivererID().Bytes(),
		Rating:      r.Rating(),
		Text:        r.Text(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyer, err := kernel.NewChatID(dto.BuyerID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	delivererID, err := kernel.UUIDFromBytes(dto.DelivererID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, buyer, delivererID, orderID, dto.Rating, dto.Text)
}
