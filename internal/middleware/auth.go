// File: internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/config"
	"rest-boilerplate/internal/service"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context, secret string) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyToken(parts[1], secret)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token: "+err.Error())
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer 令牌並將 Claims 放入 context
func RequireAuth(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, cfg.SecretKey)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
