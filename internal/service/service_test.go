package service

import (
	"context"
	"fmt"
	"testing"

	"candle-shop-api/internal/client"
	"candle-shop-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a uniquely named in-memory sqlite database so tests
// never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Fragrance{},
		&model.FragranceSize{},
		&model.Order{},
		&model.OrderItem{},
		&model.DiscountCode{},
	))

	return db
}

func createFragranceWithSize(t *testing.T, db *gorm.DB, name, sizeName string, price decimal.Decimal, stock int) *model.FragranceSize {
	t.Helper()

	fragrance := &model.Fragrance{Name: name, IsActive: true}
	require.NoError(t, db.Create(fragrance).Error)

	size := &model.FragranceSize{
		FragranceID:   fragrance.ID,
		SizeName:      sizeName,
		BurnTime:      "30-35",
		Price:         price,
		StockQuantity: stock,
		SKU:           fmt.Sprintf("TEST-%s", uuid.NewString()[:8]),
		IsActive:      true,
	}
	require.NoError(t, db.Create(size).Error)

	return size
}

// fakeStripeClient satisfies client.StripeClient without network I/O.
type fakeStripeClient struct {
	intents map[string]*client.PaymentIntent
}

func newFakeStripeClient() *fakeStripeClient {
	return &fakeStripeClient{intents: make(map[string]*client.PaymentIntent)}
}

func (f *fakeStripeClient) addIntent(id, status string, amount int64) {
	f.intents[id] = &client.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret",
		Status:       status,
		Amount:       amount,
		Currency:     "gbp",
	}
}

func (f *fakeStripeClient) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency, receiptEmail string) (*client.PaymentIntent, error) {
	intent := &client.PaymentIntent{
		ID:           "pi_" + uuid.NewString()[:12],
		ClientSecret: "secret_" + uuid.NewString()[:12],
		Status:       "requires_payment_method",
		Amount:       amountMinorUnits,
		Currency:     currency,
	}
	f.intents[intent.ID] = intent
	return intent, nil
}

func (f *fakeStripeClient) GetPaymentIntent(ctx context.Context, intentID string) (*client.PaymentIntent, error) {
	intent, ok := f.intents[intentID]
	if !ok {
		return nil, fmt.Errorf("stripe error 404: no such payment_intent %s", intentID)
	}
	return intent, nil
}
