package service

import (
	"context"
	"testing"

	"candle-shop-api/internal/config"
	"candle-shop-api/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) AuthService {
	t.Helper()
	return NewAuthService(
		repository.NewUserRepository(db),
		config.JWT{Secret: "test-secret", ExpiryMinutes: 60},
		config.Admin{Email: "admin@candleshop.local", Password: "hunter22"},
	)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	require.NoError(t, svc.SeedAdmin(context.Background()))

	resp, err := svc.Login(context.Background(), "admin@candleshop.local", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@candleshop.local", claims.Subject)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	require.NoError(t, svc.SeedAdmin(context.Background()))

	_, err := svc.Login(context.Background(), "admin@candleshop.local", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@candleshop.local", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	require.NoError(t, svc.SeedAdmin(context.Background()))
	require.NoError(t, svc.SeedAdmin(context.Background()))

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.VerifyToken("not-a-token")
	require.Error(t, err)
}
