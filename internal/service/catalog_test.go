package service

import (
	"context"
	"testing"

	"candle-shop-api/internal/dto"
	"candle-shop-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T, db *gorm.DB) CatalogService {
	t.Helper()
	return NewCatalogService(repository.NewFragranceRepository(db))
}

func TestCreateFragranceSeedsDefaultSizes(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	fragrance, err := svc.CreateFragrance(context.Background(), &dto.FragranceRequest{
		Name:        "Cedar & Smoke",
		Description: "Woody evening candle",
	})
	require.NoError(t, err)
	require.Len(t, fragrance.Sizes, 3)

	sizeNames := make([]string, len(fragrance.Sizes))
	skus := make(map[string]bool)
	for i, size := range fragrance.Sizes {
		sizeNames[i] = size.SizeName
		require.NotEmpty(t, size.SKU)
		require.False(t, skus[size.SKU], "SKUs must be unique")
		skus[size.SKU] = true
	}
	require.ElementsMatch(t, []string{"6 oz", "9 oz", "12 oz"}, sizeNames)
}

func TestSoftDeleteHidesFromListing(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	fragrance, err := svc.CreateFragrance(context.Background(), &dto.FragranceRequest{Name: "Rose Garden"})
	require.NoError(t, err)

	listed, err := svc.ListFragrances(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, svc.DeleteFragrance(context.Background(), fragrance.ID))

	listed, err = svc.ListFragrances(context.Background())
	require.NoError(t, err)
	require.Empty(t, listed)

	// Soft delete: the row remains reachable by id for order history.
	got, err := svc.GetFragrance(context.Background(), fragrance.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func TestDeactivatedSizeHiddenFromFragrance(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	fragrance, err := svc.CreateFragrance(context.Background(), &dto.FragranceRequest{Name: "Honey Oat"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSize(context.Background(), fragrance.Sizes[0].ID))

	got, err := svc.GetFragrance(context.Background(), fragrance.ID)
	require.NoError(t, err)
	require.Len(t, got.Sizes, 2)
}

func TestAddSizeRejectsDuplicateSKU(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	fragrance, err := svc.CreateFragrance(context.Background(), &dto.FragranceRequest{Name: "Clove & Orange"})
	require.NoError(t, err)

	_, err = svc.AddSize(context.Background(), fragrance.ID, &dto.FragranceSizeRequest{
		SizeName: "16 oz",
		Price:    decimal.RequireFromString("48.00"),
		SKU:      "BIG-ONE",
	})
	require.NoError(t, err)

	_, err = svc.AddSize(context.Background(), fragrance.ID, &dto.FragranceSizeRequest{
		SizeName: "16 oz deluxe",
		Price:    decimal.RequireFromString("52.00"),
		SKU:      "BIG-ONE",
	})
	require.ErrorIs(t, err, ErrDuplicateSKU)
}

func TestAddSizeUnknownFragrance(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	_, err := svc.AddSize(context.Background(), 999, &dto.FragranceSizeRequest{
		SizeName: "6 oz",
		Price:    decimal.RequireFromString("18.00"),
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStockOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	fragrance, err := svc.CreateFragrance(context.Background(), &dto.FragranceRequest{Name: "Sandalwood"})
	require.NoError(t, err)
	sizeID := fragrance.Sizes[0].ID

	size, err := svc.UpdateStock(context.Background(), sizeID, 42)
	require.NoError(t, err)
	require.Equal(t, 42, size.StockQuantity)

	_, err = svc.UpdateStock(context.Background(), sizeID, -1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStock(context.Background(), 999, 5)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListActiveOrdersSizesByPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	_, err := svc.CreateFragrance(context.Background(), &dto.FragranceRequest{Name: "Spiced Pear"})
	require.NoError(t, err)

	listed, err := svc.ListFragrances(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	sizes := listed[0].Sizes
	require.Len(t, sizes, 3)
	for i := 1; i < len(sizes); i++ {
		require.True(t, sizes[i-1].Price.LessThanOrEqual(sizes[i].Price))
	}
}
