package repository

import (
	"context"
	"time"

	"candle-shop-api/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DiscountRepository interface {
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]*model.DiscountCode, error)
	FindApplicable(ctx context.Context, code string, now time.Time) (*model.DiscountCode, error)
	Create(ctx context.Context, discount *model.DiscountCode) error
	Update(ctx context.Context, discount *model.DiscountCode) error
	Delete(ctx context.Context, id uint) error
}

type discountRepoImpl struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepoImpl{
		db: db,
	}
}

func (r *discountRepoImpl) Seed(ctx context.Context) error {
	discount := &model.DiscountCode{
		Code:          "WELCOME10",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(10),
		IsActive:      true,
	}

	return r.db.WithContext(ctx).
		Where("code = ?", discount.Code).
		FirstOrCreate(discount).Error
}

func (r *discountRepoImpl) List(ctx context.Context) ([]*model.DiscountCode, error) {
	var discounts []*model.DiscountCode
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&discounts).Error

	if err != nil {
		return nil, err
	}

	return discounts, nil
}

// FindApplicable returns the code only when it is active and unexpired.
// Validation is read-only: codes stay reusable until deactivated.
func (r *discountRepoImpl) FindApplicable(ctx context.Context, code string, now time.Time) (*model.DiscountCode, error) {
	var discount model.DiscountCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", now).
		First(&discount).Error

	if err != nil {
		return nil, err
	}

	return &discount, nil
}

func (r *discountRepoImpl) Create(ctx context.Context, discount *model.DiscountCode) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *discountRepoImpl) Update(ctx context.Context, discount *model.DiscountCode) error {
	result := r.db.WithContext(ctx).Model(&model.DiscountCode{}).
		Where("id = ?", discount.ID).
		Updates(map[string]interface{}{
			"code":           discount.Code,
			"discount_type":  discount.DiscountType,
			"discount_value": discount.DiscountValue,
			"is_active":      discount.IsActive,
			"expires_at":     discount.ExpiresAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *discountRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.DiscountCode{}, id)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
