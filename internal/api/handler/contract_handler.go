package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
	"github.com/barfigueiras/reservas/internal/infrastructure/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ContractHandler serves the event-contracts tab. Contracts are placeholders
// keyed by reservation.
type ContractHandler struct {
	reservations ports.ReservationService
	now          func() time.Time
}

func NewContractHandler(reservations ports.ReservationService) *ContractHandler {
	return &ContractHandler{reservations: reservations, now: time.Now}
}

// List handles GET /v1/contracts.
//
// @Summary      Reservations with a contract entry
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listContractsResponse
// @Router       /v1/contracts [get]
func (h *ContractHandler) List(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	items, err := h.reservations.ListFor(c.Request().Context(), session.Viewer(), ports.OrderInsertion)
	if err != nil {
		return err
	}

	resp := listContractsResponse{Items: toContractItems(items)}
	if len(items) == 0 {
		resp.Message = domain.MsgNoContracts
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/contracts/:id.
//
// @Summary      Contract of a reservation
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  contractResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/contracts/{id} [get]
func (h *ContractHandler) Get(c echo.Context) error {
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
	return c.JSON(http.StatusOK, contractResponse{
		Reservation: toReservationResponse(*r, domain.RoleOfSession(session), h.now()),
		Viewer:      domain.MsgContractPlaceholder + r.Name,
	})
}

// Export handles GET /v1/contracts/export.
//
// @Summary      Download the visible reservations as a spreadsheet
// @Tags         contracts
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /v1/contracts/export [get]
func (h *ContractHandler) Export(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	items, err := h.reservations.ListFor(c.Request().Context(), session.Viewer(), ports.OrderInsertion)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	now := h.now()
	if err := export.WriteReservations(&buf, items, now); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="contratos-`+now.Format("20060102")+`.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
