package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"candle-shop-api/internal/dto"
	"candle-shop-api/internal/model"
	"candle-shop-api/internal/repository"

	"gorm.io/gorm"
)

// NormalizeCode maps raw user input to the stored form of a discount code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type DiscountService interface {
	Validate(ctx context.Context, code string) (*model.DiscountCode, error)
	List(ctx context.Context) ([]*model.DiscountCode, error)
	Create(ctx context.Context, req *dto.DiscountRequest) (*model.DiscountCode, error)
	Update(ctx context.Context, id uint, req *dto.DiscountRequest) (*model.DiscountCode, error)
	Delete(ctx context.Context, id uint) error
}

type discountServiceImpl struct {
	discountRepo repository.DiscountRepository
}

func NewDiscountService(discountRepo repository.DiscountRepository) DiscountService {
	return &discountServiceImpl{
		discountRepo: discountRepo,
	}
}

// Validate is read-only: it never marks a code as used, so a code stays
// reusable by any number of carts until it expires or is deactivated.
func (s *discountServiceImpl) Validate(ctx context.Context, code string) (*model.DiscountCode, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, fmt.Errorf("%w: code is required", ErrValidation)
	}

	discount, err := s.discountRepo.FindApplicable(ctx, normalized, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFoundOrExpired
		}
		return nil, fmt.Errorf("look up discount: %w", err)
	}

	return discount, nil
}

func (s *discountServiceImpl) List(ctx context.Context) ([]*model.DiscountCode, error) {
	return s.discountRepo.List(ctx)
}

func (s *discountServiceImpl) Create(ctx context.Context, req *dto.DiscountRequest) (*model.DiscountCode, error) {
	if err := validateDiscountRequest(req); err != nil {
		return nil, err
	}

	discount := &model.DiscountCode{
		Code:          NormalizeCode(req.Code),
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		IsActive:      true,
		ExpiresAt:     req.ExpiresAt,
	}
	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("store discount: %w", err)
	}

	return discount, nil
}

func (s *discountServiceImpl) Update(ctx context.Context, id uint, req *dto.DiscountRequest) (*model.DiscountCode, error) {
	if err := validateDiscountRequest(req); err != nil {
		return nil, err
	}

	discount := &model.DiscountCode{
		ID:            id,
		Code:          NormalizeCode(req.Code),
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		IsActive:      true,
		ExpiresAt:     req.ExpiresAt,
	}
	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("update discount: %w", err)
	}

	return discount, nil
}

func (s *discountServiceImpl) Delete(ctx context.Context, id uint) error {
	err := s.discountRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func validateDiscountRequest(req *dto.DiscountRequest) error {
	if NormalizeCode(req.Code) == "" {
		return fmt.Errorf("%w: code is required", ErrValidation)
	}
	if req.DiscountType != "percentage" && req.DiscountType != "fixed" {
		return fmt.Errorf("%w: discount_type must be percentage or fixed", ErrValidation)
	}
	if !req.DiscountValue.IsPositive() {
		return fmt.Errorf("%w: discount_value must be positive", ErrValidation)
	}
	return nil
}
