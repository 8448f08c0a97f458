package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/barfigueiras/reservas/internal/api/middleware"
	"github.com/barfigueiras/reservas/internal/core/domain"
)

// ctxSession returns the session injected by the Auth middleware. Its absence
// means the route was mounted without Auth; reject with 401.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, domain.MsgSessionExpired)
	}
	return session, nil
}

// optionalSession returns nil for anonymous callers.
func optionalSession(c echo.Context) *domain.Session {
	session, _ := c.Get(middleware.SessionKey).(*domain.Session)
	return session
}

// paramID parses the :id path parameter. Malformed ids read as missing.
func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrReservationNotFound
	}
	return id, nil
}

// warnIfDegraded marks a mutating response when the durable store is failing:
// the change is kept in memory for this run only.
func warnIfDegraded(c echo.Context, degraded bool) {
	if degraded {
		c.Response().Header().Set("Warning", fmt.Sprintf("199 - %q", domain.MsgStorageWarning))
	}
}
