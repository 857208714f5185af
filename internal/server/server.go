package server

import (
	"context"

	"candle-shop-api/internal/handler"
	custommw "candle-shop-api/internal/middleware"
	"candle-shop-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

type Server struct {
	echo            *echo.Echo
	authService     service.AuthService
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
	discountHandler *handler.DiscountHandler
	orderHandler    *handler.OrderHandler
}

func NewServer(
	logger zerolog.Logger,
	authService service.AuthService,
	catalogService service.CatalogService,
	discountService service.DiscountService,
	orderService service.OrderService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		authService:     authService,
		authHandler:     handler.NewAuthHandler(authService),
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		discountHandler: handler.NewDiscountHandler(discountService),
		orderHandler:    handler.NewOrderHandler(orderService),
	}

	s.setupRoutes()
	return s
}

func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			evt := logger.Info()
			if v.Error != nil {
				evt = logger.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request completed")
			return nil
		},
	})
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/auth/login", s.authHandler.Login)

	admin := custommw.AuthMiddleware(s.authService)

	// -------- catalog --------
	fragrances := api.Group("/fragrances")
	fragrances.GET("", s.catalogHandler.ListFragrances)
	fragrances.GET("/:id", s.catalogHandler.GetFragrance)
	fragrances.POST("", s.catalogHandler.CreateFragrance, admin)
	fragrances.PUT("/:id", s.catalogHandler.UpdateFragrance, admin)
	fragrances.DELETE("/:id", s.catalogHandler.DeleteFragrance, admin)
	fragrances.POST("/:id/sizes", s.catalogHandler.AddSize, admin)
	fragrances.PUT("/sizes/:sizeId", s.catalogHandler.UpdateSize, admin)
	fragrances.DELETE("/sizes/:sizeId", s.catalogHandler.DeleteSize, admin)
	fragrances.PATCH("/sizes/:sizeId/stock", s.catalogHandler.UpdateStock, admin)

	// -------- discounts --------
	discounts := api.Group("/discounts")
	discounts.POST("/validate", s.discountHandler.Validate)
	discounts.GET("", s.discountHandler.List, admin)
	discounts.POST("", s.discountHandler.Create, admin)
	discounts.PUT("/:id", s.discountHandler.Update, admin)
	discounts.DELETE("/:id", s.discountHandler.Delete, admin)

	// -------- orders --------
	orders := api.Group("/orders")
	orders.POST("/create-payment-intent", s.orderHandler.CreatePaymentIntent)
	orders.POST("", s.orderHandler.PlaceOrder)
	orders.GET("", s.orderHandler.ListOrders, admin)
	orders.GET("/:id", s.orderHandler.GetOrder, admin)
	orders.PUT("/:id/status", s.orderHandler.UpdateStatus, admin)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
