package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/barfigueiras/reservas/internal/core/ports"
)

type NavigationHandler struct {
	navigation ports.NavigationService
}

func NewNavigationHandler(navigation ports.NavigationService) *NavigationHandler {
	return &NavigationHandler{navigation: navigation}
}

// Resolve handles GET /v1/navigation. Anonymous callers are sent to the login
// or register screen.
//
// @Summary      Resolve the screen and tab to render
// @Tags         navigation
// @Produce      json
// @Param        screen  query     string  false  "login, register or app"
// @Param        tab     query     string  false  "nova_reserva, minhas_reservas or contratos"
// @Param        select  query     bool    false  "true when the tab was clicked"
// @Success      200     {object}  ports.NavigationState
// @Router       /v1/navigation [get]
func (h *NavigationHandler) Resolve(c echo.Context) error {
	sel, _ := strconv.ParseBool(c.QueryParam("select"))
	state, err := h.navigation.Resolve(c.Request().Context(), optionalSession(c), ports.NavigationRequest{
		Screen: ports.Screen(c.QueryParam("screen")),
		Tab:    ports.Tab(c.QueryParam("tab")),
		Select: sel,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}
