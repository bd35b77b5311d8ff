package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/propelrent/rentwise/internal/api/middleware"
	"github.com/propelrent/rentwise/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. Its
// absence means the route was mounted without Auth.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(middleware.KeySession).(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sess, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
