package service

import (
	"context"
	"testing"
	"time"

	"candle-shop-api/internal/dto"
	"candle-shop-api/internal/model"
	"candle-shop-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscountService(t *testing.T, db *gorm.DB) DiscountService {
	t.Helper()
	return NewDiscountService(repository.NewDiscountRepository(db))
}

func seedDiscount(t *testing.T, db *gorm.DB, code string, active bool, expiresAt *time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.DiscountCode{
		Code:          code,
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(10),
		IsActive:      active,
		ExpiresAt:     expiresAt,
	}).Error)
}

func TestValidateApplicability(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name      string
		active    bool
		expiresAt *time.Time
		wantErr   error
	}{
		{"active without expiry", true, nil, nil},
		{"active with future expiry", true, &future, nil},
		{"active but expired", true, &past, ErrCodeNotFoundOrExpired},
		{"inactive", false, nil, ErrCodeNotFoundOrExpired},
		{"inactive and expired", false, &past, ErrCodeNotFoundOrExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := newDiscountService(t, db)
			seedDiscount(t, db, "SAVE10", tt.active, tt.expiresAt)

			discount, err := svc.Validate(context.Background(), "SAVE10")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "SAVE10", discount.Code)
		})
	}
}

func TestValidateNormalizesInput(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscountService(t, db)
	seedDiscount(t, db, "WELCOME10", true, nil)

	discount, err := svc.Validate(context.Background(), "  welcome10  ")
	require.NoError(t, err)
	require.Equal(t, "WELCOME10", discount.Code)
}

func TestValidateUnknownCode(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscountService(t, db)

	_, err := svc.Validate(context.Background(), "NOPE")
	require.ErrorIs(t, err, ErrCodeNotFoundOrExpired)

	_, err = svc.Validate(context.Background(), "   ")
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateUppercasesAndRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscountService(t, db)

	created, err := svc.Create(context.Background(), &dto.DiscountRequest{
		Code:          "spring20",
		DiscountType:  "fixed",
		DiscountValue: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	require.Equal(t, "SPRING20", created.Code)

	_, err = svc.Create(context.Background(), &dto.DiscountRequest{
		Code:          "SPRING20",
		DiscountType:  "fixed",
		DiscountValue: decimal.NewFromInt(20),
	})
	require.ErrorIs(t, err, ErrDuplicateCode)
}

func TestCreateInactiveCodePersistsInactive(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscountService(t, db)

	inactive := false
	_, err := svc.Create(context.Background(), &dto.DiscountRequest{
		Code:          "DORMANT5",
		DiscountType:  "fixed",
		DiscountValue: decimal.NewFromInt(5),
		IsActive:      &inactive,
	})
	require.NoError(t, err)

	// The false flag must survive the insert, not be swallowed by a
	// column default.
	var stored model.DiscountCode
	require.NoError(t, db.Where("code = ?", "DORMANT5").First(&stored).Error)
	require.False(t, stored.IsActive)

	_, err = svc.Validate(context.Background(), "DORMANT5")
	require.ErrorIs(t, err, ErrCodeNotFoundOrExpired)
}

func TestCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscountService(t, db)

	_, err := svc.Create(context.Background(), &dto.DiscountRequest{
		Code:          "BAD",
		DiscountType:  "half-off",
		DiscountValue: decimal.NewFromInt(50),
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), &dto.DiscountRequest{
		Code:          "BAD",
		DiscountType:  "fixed",
		DiscountValue: decimal.Zero,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscountService(t, db)
	seedDiscount(t, db, "TOGGLE", true, nil)

	var stored model.DiscountCode
	require.NoError(t, db.Where("code = ?", "TOGGLE").First(&stored).Error)

	inactive := false
	updated, err := svc.Update(context.Background(), stored.ID, &dto.DiscountRequest{
		Code:          "TOGGLE",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(15),
		IsActive:      &inactive,
	})
	require.NoError(t, err)
	require.False(t, updated.IsActive)

	// Deactivated codes no longer validate.
	_, err = svc.Validate(context.Background(), "TOGGLE")
	require.ErrorIs(t, err, ErrCodeNotFoundOrExpired)

	require.NoError(t, svc.Delete(context.Background(), stored.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), stored.ID), ErrNotFound)

	_, err = svc.Update(context.Background(), stored.ID, &dto.DiscountRequest{
		Code:          "TOGGLE",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(15),
	})
	require.ErrorIs(t, err, ErrNotFound)
}
