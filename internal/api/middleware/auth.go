package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adminboard/user-service/internal/core/domain"
	"github.com/adminboard/user-service/internal/core/ports"
)

// UserContextKey is where Auth stores the resolved principal.
const UserContextKey = "current_user"

// Auth extracts the bearer token, verifies it, resolves the subject to a
// stored user and injects that user into the request context. The subject
// lookup is what rejects tokens for since-deleted accounts; the token itself
// stays signature-valid until expiry.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				// A token whose subject no longer resolves is an
				// authentication failure, not a missing resource: 404 is
				// reserved for the target of the request.
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				// Token errors carry their own 401 mapping.
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
