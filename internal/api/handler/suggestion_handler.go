package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barfigueiras/reservas/internal/core/ports"
)

// SuggestionHandler serves the event-concept suggestion of a reservation.
type SuggestionHandler struct {
	reservations ports.ReservationService
	suggestions  ports.SuggestionService
}

func NewSuggestionHandler(reservations ports.ReservationService, suggestions ports.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{reservations: reservations, suggestions: suggestions}
}

// Get handles GET /v1/reservations/:id/suggestion.
//
// @Summary      Latest suggestion of a reservation
// @Description  state is pending until the generator answers, then ready or failed.
// @Tags         suggestions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  domain.Suggestion
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservations/{id}/suggestion [get]
func (h *SuggestionHandler) Get(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.reservations.GetFor(ctx, session.Viewer(), id); err != nil {
		return err
	}
	sug, err := h.suggestions.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sug)
}

// Request handles POST /v1/reservations/:id/suggestion. A new request
// supersedes any answer still in flight.
//
// @Summary      Request a new suggestion
// @Tags         suggestions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      202  {object}  domain.Suggestion
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservations/{id}/suggestion [post]
func (h *SuggestionHandler) Request(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	r, err := h.reservations.GetFor(ctx, session.Viewer(), id)
	if err != nil {
		return err
	}
	sug, err := h.suggestions.Request(ctx, *r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, sug)
}
