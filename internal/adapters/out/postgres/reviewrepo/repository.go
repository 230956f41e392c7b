package reviewrepo

import (
	"context"
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/review"
	"market/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a revised review to the database.
func (r *GormReviewRepository) Update(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReviewDTO{}).Where("id = ?", dto.ID).
		Select("rating", "text").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderAndBuyer retrieves the buyer's review of the given order.
func (r *GormReviewRepository) GetByOrderAndBuyer(
	ctx context.Context, orderID kernel.UUID, buyer kernel.ChatID,
) (*review.Review, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND buyer_id = ?", orderID.Bytes(), buyer.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForDeliverer retrieves every review left for the deliverer.
func (r *GormReviewRepository) GetAllForDeliverer(
	ctx context.Context, delivererID kernel.UUID,
) ([]*review.Review, error) {
	if err := delivererID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReviewDTO
	err := r.db.WithContext(ctx).Find(&dtos, "deliverer_id = ?", delivererID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		rv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, nil
}
