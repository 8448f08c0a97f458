package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

// PendingHandler exposes the per-session reservation flow of the
// new-reservation tab.
type PendingHandler struct {
	pending     ports.PendingService
	suggestions ports.SuggestionService
	log         zerolog.Logger
	now         func() time.Time
}

func NewPendingHandler(pending ports.PendingService, suggestions ports.SuggestionService, log zerolog.Logger) *PendingHandler {
	return &PendingHandler{pending: pending, suggestions: suggestions, log: log, now: time.Now}
}

// Get handles GET /v1/pending.
//
// @Summary      Current pending reservation
// @Tags         pending
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pendingResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/pending [get]
func (h *PendingHandler) Get(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	p, err := h.pending.Current(c.Request().Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.render(c, session, p, nil))
}

// Save handles PUT /v1/pending. The draft is stored as typed; it is validated
// on confirm.
//
// @Summary      Save the form draft
// @Tags         pending
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reservationRequest  true  "Draft fields"
// @Success      200   {object}  pendingResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/pending [put]
func (h *PendingHandler) Save(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.MsgInvalidPayload)
	}

	p, err := h.pending.SaveDraft(c.Request().Context(), session, toDraft(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pendingResponse{Pending: p})
}

// Reset handles DELETE /v1/pending ("Fazer Nova Reserva").
//
// @Summary      Discard the pending reservation
// @Tags         pending
// @Security     BearerAuth
// @Success      204
// @Router       /v1/pending [delete]
func (h *PendingHandler) Reset(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.pending.Reset(c.Request().Context(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Confirm handles POST /v1/pending/confirm.
//
// @Summary      Confirm the pending reservation
// @Tags         pending
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pendingResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/pending/confirm [post]
func (h *PendingHandler) Confirm(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	p, r, err := h.pending.Confirm(c.Request().Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.render(c, session, p, r))
}

// Edit handles POST /v1/pending/edit.
//
// @Summary      Re-open the confirmed reservation for changes
// @Tags         pending
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pendingResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/pending/edit [post]
func (h *PendingHandler) Edit(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	p, err := h.pending.Edit(c.Request().Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pendingResponse{Pending: p})
}

// EditReservation handles POST /v1/reservations/:id/edit, loading a listed
// reservation into the form.
//
// @Summary      Edit a listed reservation
// @Tags         pending
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  pendingResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservations/{id}/edit [post]
func (h *PendingHandler) EditReservation(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	p, err := h.pending.EditReservation(c.Request().Context(), session, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pendingResponse{Pending: p})
}

// Cancel handles POST /v1/pending/cancel.
//
// @Summary      Cancel the confirmed reservation
// @Tags         pending
// @Security     BearerAuth
// @Success      204
// @Failure      409  {object}  errorResponse
// @Router       /v1/pending/cancel [post]
func (h *PendingHandler) Cancel(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.pending.CancelConfirmed(c.Request().Context(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// render attaches the confirmed reservation and its suggestion, when any.
func (h *PendingHandler) render(c echo.Context, session *domain.Session, p *domain.PendingReservation, r *domain.Reservation) pendingResponse {
	resp := pendingResponse{Pending: p}
	if p.Stage != domain.StageConfirmed {
		return resp
	}
	if r == nil {
		r = &domain.Reservation{ID: p.ReservationID, Owner: session.User.Username}
		r.Apply(p.Draft)
	}
	rr := toReservationResponse(*r, domain.RoleOfSession(session), h.now())
	resp.Reservation = &rr

	sug, err := h.suggestions.Get(c.Request().Context(), r.ID)
	if err == nil {
		resp.Suggestion = sug
	} else if !errors.Is(err, domain.ErrSuggestionNotFound) {
		h.log.Warn().Err(err).Int64("reservation_id", r.ID).Msg("failed to load suggestion")
	}
	return resp
}
