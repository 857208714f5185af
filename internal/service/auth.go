package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"candle-shop-api/internal/config"
	"candle-shop-api/internal/dto"
	"candle-shop-api/internal/model"
	"candle-shop-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	SeedAdmin(ctx context.Context) error
	VerifyToken(tokenString string) (*jwt.RegisteredClaims, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWT
	adminCfg config.Admin
}

func NewAuthService(userRepo repository.UserRepository, jwtCfg config.JWT, adminCfg config.Admin) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		adminCfg: adminCfg,
	}
}

// SeedAdmin creates the bootstrap admin account when it does not exist.
// Without a configured password no account is created.
func (s *authServiceImpl) SeedAdmin(ctx context.Context) error {
	if s.adminCfg.Password == "" {
		return nil
	}

	_, err := s.userRepo.FindByEmail(ctx, s.adminCfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return s.userRepo.Create(ctx, &model.User{
		Email:        s.adminCfg.Email,
		PasswordHash: string(hash),
		Role:         "admin",
	})
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(time.Duration(s.jwtCfg.ExpiryMinutes) * time.Minute)
	claims := &jwt.RegisteredClaims{
		Subject:   user.Email,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authServiceImpl) VerifyToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
