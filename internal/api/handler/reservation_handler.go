package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

// ReservationHandler handles HTTP requests for reservation operations.
type ReservationHandler struct {
	reservations ports.ReservationService
	pending      ports.PendingService
	suggestions  ports.SuggestionService
	log          zerolog.Logger
	now          func() time.Time
}

func NewReservationHandler(
	reservations ports.ReservationService,
	pending ports.PendingService,
	suggestions ports.SuggestionService,
	log zerolog.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		pending:      pending,
		suggestions:  suggestions,
		log:          log,
		now:          time.Now,
	}
}

// Create handles POST /v1/reservations. The caller becomes the owner.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reservationRequest  true  "Reservation details"
// @Success      201   {object}  reservationResult
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.MsgInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidReservation, err)
	}

	r, err := h.reservations.Create(c.Request().Context(), session.User.Username, toDraft(req))
	if err != nil {
		return err
	}

	warnIfDegraded(c, h.reservations.Degraded())
	return c.JSON(http.StatusCreated, reservationResult{
		Reservation: toReservationResponse(*r, domain.RoleOfSession(session), h.now()),
		Suggestion:  h.requestSuggestion(c, *r),
	})
}

// List handles GET /v1/reservations.
//
// @Summary      List reservations visible to the caller
// @Description  Administrators see every reservation, clients only their own.
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        order  query     string  false  "date_desc (default) or insertion"
// @Success      200    {object}  listReservationsResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	order := ports.OrderDateDesc
	if c.QueryParam("order") == string(ports.OrderInsertion) {
		order = ports.OrderInsertion
	}

	items, err := h.reservations.ListFor(c.Request().Context(), session.Viewer(), order)
	if err != nil {
		return err
	}

	role := domain.RoleOfSession(session)
	title := "Minhas Reservas"
	if role == domain.RoleAdmin {
		title = "Todas as Reservas"
	}
	return c.JSON(http.StatusOK, listReservationsResponse{
		Title: title,
		Order: string(order),
		Items: toReservationResponses(items, role, h.now()),
		Total: len(items),
	})
}

// Get handles GET /v1/reservations/:id.
//
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  reservationResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	r, err := h.reservations.GetFor(c.Request().Context(), session.Viewer(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReservationResponse(*r, domain.RoleOfSession(session), h.now()))
}

// Update handles PUT /v1/reservations/:id. Id and owner never change.
//
// @Summary      Update a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Reservation id"
// @Param        body  body      reservationRequest  true  "Reservation details"
// @Success      200   {object}  reservationResult
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/reservations/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.MsgInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidReservation, err)
	}

	ctx := c.Request().Context()
	if _, err := h.reservations.GetFor(ctx, session.Viewer(), id); err != nil {
		return err
	}
	r, err := h.reservations.Update(ctx, id, toDraft(req))
	if err != nil {
		return err
	}

	warnIfDegraded(c, h.reservations.Degraded())
	return c.JSON(http.StatusOK, reservationResult{
		Reservation: toReservationResponse(*r, domain.RoleOfSession(session), h.now()),
		Suggestion:  h.requestSuggestion(c, *r),
	})
}

// Delete handles DELETE /v1/reservations/:id.
//
// @Summary      Cancel a reservation
// @Tags         reservations
// @Security     BearerAuth
// @Param        id   path  int  true  "Reservation id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
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
	if err := h.reservations.Cancel(ctx, id); err != nil {
		return err
	}
	if err := h.suggestions.Forget(ctx, id); err != nil {
		h.log.Warn().Err(err).Int64("reservation_id", id).Msg("failed to forget suggestion")
	}
	if err := h.pending.Forget(ctx, id); err != nil {
		h.log.Warn().Err(err).Int64("reservation_id", id).Msg("failed to discard pending reservation")
	}

	warnIfDegraded(c, h.reservations.Degraded())
	return c.NoContent(http.StatusNoContent)
}

// Catalogue handles GET /v1/occasions.
//
// @Summary      Occasions and event types accepted by the form
// @Tags         reservations
// @Produce      json
// @Success      200  {object}  catalogueResponse
// @Router       /v1/occasions [get]
func (h *ReservationHandler) Catalogue(c echo.Context) error {
	return c.JSON(http.StatusOK, catalogueResponse{
		Occasions:  h.reservations.Occasions().Names(),
		EventTypes: []string{string(domain.EventTypeCommon), string(domain.EventTypePackage)},
	})
}

// requestSuggestion schedules a suggestion for r; failures never fail the request.
func (h *ReservationHandler) requestSuggestion(c echo.Context, r domain.Reservation) *domain.Suggestion {
	sug, err := h.suggestions.Request(c.Request().Context(), r)
	if err != nil {
		h.log.Warn().Err(err).Int64("reservation_id", r.ID).Msg("failed to request suggestion")
		return nil
	}
	return sug
}
