package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account. It does not log the user in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.MsgInvalidPayload)
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:      req.Username,
		Name:          req.Name,
		Establishment: req.Establishment,
	}, req.Password)
	if err != nil {
		return err
	}

	warnIfDegraded(c, h.authService.Degraded())
	return c.JSON(http.StatusCreated, registerResponse{Message: domain.MsgRegistered, User: user})
}

// Login authenticates a user and returns a JWT bound to a new session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.MsgInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		// Missing fields get the generic credentials error.
		return domain.ErrInvalidCredentials
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	user := res.Session.User
	return c.JSON(http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.Session.ExpiresAt,
		Role:      domain.RoleOfSession(res.Session),
		User:      &user,
	})
}

// Logout ends the caller's session and drops its pending reservation.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), session.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{User: session.User, Role: domain.RoleOfSession(session)})
}

// Users lists registered accounts. Administrator only.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AuthHandler) Users(c echo.Context) error {
	users := h.authService.Users()
	return c.JSON(http.StatusOK, usersResponse{Items: users, Total: len(users)})
}
