package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"candle-shop-api/internal/client"
	"candle-shop-api/internal/config"
	"candle-shop-api/internal/repository"
	"candle-shop-api/internal/server"
	"candle-shop-api/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)

	db := client.InitPostgresClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(&cfg.Stripe)

	userRepo := repository.NewUserRepository(db)
	fragranceRepo := repository.NewFragranceRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWT, cfg.Admin)
	catalogService := service.NewCatalogService(fragranceRepo)
	discountService := service.NewDiscountService(discountRepo)
	orderService := service.NewOrderService(
		db, stripeClient, cfg.Stripe.Currency,
		orderRepo,
		fragranceRepo,
		discountRepo,
	)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	if err := seed(seedCtx, fragranceRepo, discountRepo, authService); err != nil {
		logger.Fatal().Err(err).Msg("seed database")
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(logger, authService, catalogService, discountService, orderService)

	logger.Info().Str("addr", serverAddr).Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info().Msg("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server shutdown error")
	}
}

func newLogger(logCfg config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(logCfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if logCfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().Timestamp().Logger()
}

func seed(
	ctx context.Context,
	fragranceRepo repository.FragranceRepository,
	discountRepo repository.DiscountRepository,
	authService service.AuthService,
) error {
	if err := fragranceRepo.Seed(ctx); err != nil {
		return fmt.Errorf("seed fragrances: %w", err)
	}
	if err := discountRepo.Seed(ctx); err != nil {
		return fmt.Errorf("seed discount codes: %w", err)
	}
	if err := authService.SeedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}
