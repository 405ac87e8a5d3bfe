package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/partnerhub/admin-api/internal/api/middleware"
	"github.com/partnerhub/admin-api/internal/core/domain"
)

// actor extracts the principal injected by the admission gate. Its
// absence means a route was registered outside the gated group, which is
// a wiring bug, so the request is refused rather than attributed to a
// zero actor.
func actor(c echo.Context) (domain.Actor, error) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return a, nil
}

// pathID parses the named numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
