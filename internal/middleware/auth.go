package middleware

import (
	"net/http"
	"strings"

	"candle-shop-api/internal/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards admin routes with a bearer JWT issued by the
// auth service.
func AuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := authService.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("user_email", claims.Subject)
			return next(c)
		}
	}
}
