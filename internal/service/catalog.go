package service

import (
	"context"
	"errors"
	"fmt"

	"candle-shop-api/internal/dto"
	"candle-shop-api/internal/model"
	"candle-shop-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// defaultSizes are the variants every new fragrance starts with. Admins
// adjust prices and stock afterwards.
var defaultSizes = []struct {
	SizeName string
	BurnTime string
	Price    decimal.Decimal
}{
	{SizeName: "6 oz", BurnTime: "30-35", Price: decimal.NewFromInt(18)},
	{SizeName: "9 oz", BurnTime: "45-50", Price: decimal.NewFromInt(28)},
	{SizeName: "12 oz", BurnTime: "60-70", Price: decimal.NewFromInt(38)},
}

type CatalogService interface {
	ListFragrances(ctx context.Context) ([]*model.Fragrance, error)
	GetFragrance(ctx context.Context, id uint) (*model.Fragrance, error)
	CreateFragrance(ctx context.Context, req *dto.FragranceRequest) (*model.Fragrance, error)
	UpdateFragrance(ctx context.Context, id uint, req *dto.FragranceRequest) (*model.Fragrance, error)
	DeleteFragrance(ctx context.Context, id uint) error

	AddSize(ctx context.Context, fragranceID uint, req *dto.FragranceSizeRequest) (*model.FragranceSize, error)
	UpdateSize(ctx context.Context, sizeID uint, req *dto.FragranceSizeRequest) (*model.FragranceSize, error)
	DeleteSize(ctx context.Context, sizeID uint) error
	UpdateStock(ctx context.Context, sizeID uint, quantity int) (*model.FragranceSize, error)
}

type catalogServiceImpl struct {
	fragRepo repository.FragranceRepository
}

func NewCatalogService(fragRepo repository.FragranceRepository) CatalogService {
	return &catalogServiceImpl{
		fragRepo: fragRepo,
	}
}

func (s *catalogServiceImpl) ListFragrances(ctx context.Context) ([]*model.Fragrance, error) {
	return s.fragRepo.ListActive(ctx)
}

func (s *catalogServiceImpl) GetFragrance(ctx context.Context, id uint) (*model.Fragrance, error) {
	fragrance, err := s.fragRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return fragrance, nil
}

// CreateFragrance also seeds the three default size variants so a new
// fragrance is sellable straight away.
func (s *catalogServiceImpl) CreateFragrance(ctx context.Context, req *dto.FragranceRequest) (*model.Fragrance, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	fragrance := &model.Fragrance{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := s.fragRepo.Create(ctx, fragrance); err != nil {
		return nil, fmt.Errorf("store fragrance: %w", err)
	}

	for _, d := range defaultSizes {
		size := &model.FragranceSize{
			FragranceID: fragrance.ID,
			SizeName:    d.SizeName,
			BurnTime:    d.BurnTime,
			Price:       d.Price,
			SKU:         generateSKU(fragrance.ID, d.SizeName),
			IsActive:    true,
		}
		if err := s.fragRepo.CreateSize(ctx, size); err != nil {
			return nil, fmt.Errorf("seed default size: %w", err)
		}
		fragrance.Sizes = append(fragrance.Sizes, *size)
	}

	return fragrance, nil
}

func (s *catalogServiceImpl) UpdateFragrance(ctx context.Context, id uint, req *dto.FragranceRequest) (*model.Fragrance, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	fragrance := &model.Fragrance{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		fragrance.IsActive = *req.IsActive
	}

	if err := s.fragRepo.Update(ctx, fragrance); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update fragrance: %w", err)
	}

	return s.fragRepo.FindByID(ctx, id)
}

// DeleteFragrance is a soft delete. Rows stay for order-item references.
func (s *catalogServiceImpl) DeleteFragrance(ctx context.Context, id uint) error {
	err := s.fragRepo.Deactivate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *catalogServiceImpl) AddSize(ctx context.Context, fragranceID uint, req *dto.FragranceSizeRequest) (*model.FragranceSize, error) {
	if req.SizeName == "" {
		return nil, fmt.Errorf("%w: size_name is required", ErrValidation)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	if _, err := s.fragRepo.FindByID(ctx, fragranceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sku := req.SKU
	if sku == "" {
		sku = generateSKU(fragranceID, req.SizeName)
	}

	size := &model.FragranceSize{
		FragranceID:   fragranceID,
		SizeName:      req.SizeName,
		BurnTime:      req.BurnTime,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		SKU:           sku,
		IsActive:      true,
	}

	if err := s.fragRepo.CreateSize(ctx, size); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSKU
		}
		return nil, fmt.Errorf("store size: %w", err)
	}

	return size, nil
}

func (s *catalogServiceImpl) UpdateSize(ctx context.Context, sizeID uint, req *dto.FragranceSizeRequest) (*model.FragranceSize, error) {
	if req.SizeName == "" {
		return nil, fmt.Errorf("%w: size_name is required", ErrValidation)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	size := &model.FragranceSize{
		ID:            sizeID,
		SizeName:      req.SizeName,
		BurnTime:      req.BurnTime,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		SKU:           req.SKU,
		IsActive:      true,
	}
	if req.IsActive != nil {
		size.IsActive = *req.IsActive
	}

	if err := s.fragRepo.UpdateSize(ctx, size); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSKU
		}
		return nil, fmt.Errorf("update size: %w", err)
	}

	return s.fragRepo.FindSizeByID(ctx, sizeID)
}

func (s *catalogServiceImpl) DeleteSize(ctx context.Context, sizeID uint) error {
	err := s.fragRepo.DeactivateSize(ctx, sizeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *catalogServiceImpl) UpdateStock(ctx context.Context, sizeID uint, quantity int) (*model.FragranceSize, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: stock_quantity must not be negative", ErrValidation)
	}

	size, err := s.fragRepo.SetStock(ctx, sizeID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return size, nil
}

func generateSKU(fragranceID uint, sizeName string) string {
	return fmt.Sprintf("FRAG%d-%s-%s", fragranceID, skuFragment(sizeName), uuid.NewString()[:8])
}

func skuFragment(sizeName string) string {
	out := make([]rune, 0, len(sizeName))
	for _, r := range sizeName {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, r-'a'+'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		}
	}
	return string(out)
}
