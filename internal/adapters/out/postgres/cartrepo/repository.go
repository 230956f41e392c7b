package cartrepo

import (
	"context"
	"errors"

	"market/internal/core/domain/model/cart"
	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Increment adds one unit of the product to the buyer's cart. The upsert
// is a single statement, so two taps racing on the same line both land
// instead of one overwriting the other.
func (r *GormCartRepository) Increment(ctx context.Context, buyer kernel.ChatID, productID kernel.UUID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	if err := productID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(
		`INSERT INTO cart_lines (buyer_id, product_id, quantity) VALUES (?, ?, 1)
		 ON CONFLICT (buyer_id, product_id) DO UPDATE SET quantity = cart_lines.quantity + 1`,
		buyer.Int64(), productID.Bytes(),
	).Error
}

// GetForUpdate retrieves one cart line and locks its row until the current
// transaction ends.
func (r *GormCartRepository) GetForUpdate(
	ctx context.Context, buyer kernel.ChatID, productID kernel.UUID,
) (*cart.Line, error) {
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto LineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "buyer_id = ? AND product_id = ?", buyer.Int64(), productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cartLine", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForBuyerForUpdate retrieves every cart line of the buyer and locks
// the rows until the current transaction ends, so a concurrent checkout on
// the same cart waits instead of consuming the same lines twice.
func (r *GormCartRepository) GetAllForBuyerForUpdate(
	ctx context.Context, buyer kernel.ChatID,
) ([]*cart.Line, error) {
	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("buyer_id = ?", buyer.Int64()).
		Order("product_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Update persists a changed quantity on an existing cart line.
func (r *GormCartRepository) Update(ctx context.Context, line *cart.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	result := r.db.WithContext(ctx).Model(&LineDTO{}).
		Where("buyer_id = ? AND product_id = ?", dto.BuyerID, dto.ProductID).
		Update("quantity", dto.Quantity)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Remove deletes one cart line.
func (r *GormCartRepository) Remove(ctx context.Context, buyer kernel.ChatID, productID kernel.UUID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	if err := productID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("buyer_id = ? AND product_id = ?", buyer.Int64(), productID.Bytes()).
		Delete(&LineDTO{}).Error
}

// RemoveMany deletes the buyer's cart lines for the given products in one
// statement. Checkout uses it to clear the consumed lines.
func (r *GormCartRepository) RemoveMany(
	ctx context.Context, buyer kernel.ChatID, productIDs []kernel.UUID,
) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(productIDs))
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Where("buyer_id = ? AND product_id IN ?", buyer.Int64(), raw).
		Delete(&LineDTO{}).Error
}
