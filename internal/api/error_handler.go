package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and pt-BR message.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

// echoMessage localizes echo's stock router errors and passes ours through.
func echoMessage(he *echo.HTTPError) string {
	msg := fmt.Sprintf("%v", he.Message)
	if msg != http.StatusText(he.Code) {
		return msg
	}
	switch he.Code {
	case http.StatusNotFound:
		return domain.MsgRouteNotFound
	case http.StatusMethodNotAllowed:
		return domain.MsgMethodNotAllowed
	case http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return domain.MsgInvalidPayload
	}
	return msg
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: echoMessage(he)}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidReservation):
		return http.StatusBadRequest, errorResponse{
			Error:   domain.MsgInvalidReservation,
			Details: details(err, domain.ErrInvalidReservation),
		}
	case errors.Is(err, domain.ErrInvalidUser):
		return http.StatusBadRequest, errorResponse{Error: domain.MsgInvalidUser}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: domain.MsgInvalidCredentials}
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, errorResponse{Error: domain.MsgSessionExpired}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: domain.MsgForbidden}
	case errors.Is(err, domain.ErrReservationNotFound):
		return http.StatusNotFound, errorResponse{Error: domain.MsgReservationNotFound}
	case errors.Is(err, domain.ErrNoPendingReservation):
		return http.StatusNotFound, errorResponse{Error: domain.MsgNoPending}
	case errors.Is(err, domain.ErrSuggestionNotFound):
		return http.StatusNotFound, errorResponse{Error: domain.MsgSuggestionNotFound}
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict, errorResponse{Error: domain.MsgDuplicateUsername}
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, errorResponse{Error: domain.MsgInvalidTransition}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: domain.MsgGenericFailure}
}

// details returns what follows sentinel in the wrapped message, e.g. the
// failing field of a rejected reservation.
func details(err, sentinel error) string {
	_, rest, found := strings.Cut(err.Error(), sentinel.Error()+": ")
	if !found {
		return ""
	}
	return rest
}
