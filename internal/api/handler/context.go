package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminboard/user-service/internal/api/middleware"
	"github.com/adminboard/user-service/internal/core/domain"
)

// currentUser extracts the principal injected by the Auth middleware. Its
// presence proves the middleware ran; handlers on authenticated routes fail
// fast with 401 rather than passing a nil caller into the service layer.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
