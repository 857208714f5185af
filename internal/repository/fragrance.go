package repository

import (
	"context"
	"fmt"

	"candle-shop-api/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FragranceRepository interface {
	Seed(ctx context.Context) error
	ListActive(ctx context.Context) ([]*model.Fragrance, error)
	FindByID(ctx context.Context, id uint) (*model.Fragrance, error)
	Create(ctx context.Context, fragrance *model.Fragrance) error
	Update(ctx context.Context, fragrance *model.Fragrance) error
	Deactivate(ctx context.Context, id uint) error

	FindSizeByID(ctx context.Context, sizeID uint) (*model.FragranceSize, error)
	FindSizesByIDs(ctx context.Context, tx *gorm.DB, sizeIDs []uint) ([]*model.FragranceSize, error)
	CreateSize(ctx context.Context, size *model.FragranceSize) error
	UpdateSize(ctx context.Context, size *model.FragranceSize) error
	DeactivateSize(ctx context.Context, sizeID uint) error
	SetStock(ctx context.Context, sizeID uint, quantity int) (*model.FragranceSize, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, sizeID uint, quantity int) error
}

type fragranceRepoImpl struct {
	db *gorm.DB
}

func NewFragranceRepository(db *gorm.DB) FragranceRepository {
	return &fragranceRepoImpl{
		db: db,
	}
}

func (r *fragranceRepoImpl) Seed(ctx context.Context) error {
	fragrances := []model.Fragrance{
		{Name: "Lavender Dreams", Description: "Relaxing lavender scented candle with hints of chamomile", ImageURL: "https://images.unsplash.com/photo-1602874801006-504e3b7c5c59?w=400", IsActive: true},
		{Name: "Vanilla Bliss", Description: "Sweet vanilla bean candle with warm caramel undertones", ImageURL: "https://images.unsplash.com/photo-1603006905003-be475563bc59?w=400", IsActive: true},
		{Name: "Ocean Breeze", Description: "Fresh ocean-inspired scent with sea salt and driftwood", ImageURL: "https://images.unsplash.com/photo-1602874801006-504e3b7c5c59?w=400", IsActive: true},
	}

	for i := range fragrances {
		f := &fragrances[i]
		err := r.db.WithContext(ctx).
			Where("name = ?", f.Name).
			FirstOrCreate(f).Error
		if err != nil {
			return err
		}

		sizes := []model.FragranceSize{
			{FragranceID: f.ID, SizeName: "6 oz", BurnTime: "30-35", Price: decimal.NewFromFloat(18.00), StockQuantity: 15, SKU: fmt.Sprintf("FRAG%d-6OZ", f.ID), IsActive: true},
			{FragranceID: f.ID, SizeName: "9 oz", BurnTime: "45-50", Price: decimal.NewFromFloat(28.00), StockQuantity: 10, SKU: fmt.Sprintf("FRAG%d-9OZ", f.ID), IsActive: true},
			{FragranceID: f.ID, SizeName: "12 oz", BurnTime: "60-70", Price: decimal.NewFromFloat(38.00), StockQuantity: 8, SKU: fmt.Sprintf("FRAG%d-12OZ", f.ID), IsActive: true},
		}
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&sizes).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *fragranceRepoImpl) ListActive(ctx context.Context) ([]*model.Fragrance, error) {
	var fragrances []*model.Fragrance
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("price ASC")
		}).
		Order("created_at DESC").
		Find(&fragrances).Error

	if err != nil {
		return nil, err
	}

	return fragrances, nil
}

func (r *fragranceRepoImpl) FindByID(ctx context.Context, id uint) (*model.Fragrance, error) {
	var fragrance model.Fragrance
	err := r.db.WithContext(ctx).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("price ASC")
		}).
		First(&fragrance, id).Error

	if err != nil {
		return nil, err
	}

	return &fragrance, nil
}

func (r *fragranceRepoImpl) Create(ctx context.Context, fragrance *model.Fragrance) error {
	return r.db.WithContext(ctx).Create(fragrance).Error
}

func (r *fragranceRepoImpl) Update(ctx context.Context, fragrance *model.Fragrance) error {
	result := r.db.WithContext(ctx).Model(&model.Fragrance{}).
		Where("id = ?", fragrance.ID).
		Updates(map[string]interface{}{
			"name":        fragrance.Name,
			"description": fragrance.Description,
			"image_url":   fragrance.ImageURL,
			"is_active":   fragrance.IsActive,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *fragranceRepoImpl) Deactivate(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&model.Fragrance{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *fragranceRepoImpl) FindSizeByID(ctx context.Context, sizeID uint) (*model.FragranceSize, error) {
	var size model.FragranceSize
	err := r.db.WithContext(ctx).First(&size, sizeID).Error
	if err != nil {
		return nil, err
	}

	return &size, nil
}

// FindSizesByIDs returns active variants only; retired ones are not
// sellable, so callers treat a shorter result as an unknown variant.
func (r *fragranceRepoImpl) FindSizesByIDs(ctx context.Context, tx *gorm.DB, sizeIDs []uint) ([]*model.FragranceSize, error) {
	if tx == nil {
		tx = r.db
	}

	var sizes []*model.FragranceSize
	err := tx.WithContext(ctx).
		Where("id IN ?", sizeIDs).
		Where("is_active = ?", true).
		Find(&sizes).Error

	if err != nil {
		return nil, err
	}

	return sizes, nil
}

func (r *fragranceRepoImpl) CreateSize(ctx context.Context, size *model.FragranceSize) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *fragranceRepoImpl) UpdateSize(ctx context.Context, size *model.FragranceSize) error {
	result := r.db.WithContext(ctx).Model(&model.FragranceSize{}).
		Where("id = ?", size.ID).
		Updates(map[string]interface{}{
			"size_name":      size.SizeName,
			"burn_time":      size.BurnTime,
			"price":          size.Price,
			"stock_quantity": size.StockQuantity,
			"sku":            size.SKU,
			"is_active":      size.IsActive,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *fragranceRepoImpl) DeactivateSize(ctx context.Context, sizeID uint) error {
	result := r.db.WithContext(ctx).Model(&model.FragranceSize{}).
		Where("id = ?", sizeID).
		Update("is_active", false)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// SetStock overwrites the stock level (admin inventory correction), as
// opposed to the relative decrement used at order placement.
func (r *fragranceRepoImpl) SetStock(ctx context.Context, sizeID uint, quantity int) (*model.FragranceSize, error) {
	var size model.FragranceSize
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.FragranceSize{}).
			Where("id = ?", sizeID).
			Update("stock_quantity", quantity)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.First(&size, sizeID).Error
	})

	return &size, err
}

// DecrementStock subtracts quantity only when enough stock remains.
// Zero rows affected means the variant is missing or under-stocked; the
// caller treats that as insufficient stock and rolls back.
func (r *fragranceRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, sizeID uint, quantity int) error {
	result := tx.WithContext(ctx).Model(&model.FragranceSize{}).
		Where("id = ? AND stock_quantity >= ?", sizeID, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
