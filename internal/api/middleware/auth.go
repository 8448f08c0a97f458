package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// SessionKey is the echo context key holding the *domain.Session of the caller.
const SessionKey = "session"

// SessionResolver looks up the server-side session named by a token.
type SessionResolver interface {
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Auth validates the JWT, resolves its session and injects it into context.
// Tokens whose session was logged out or expired are rejected.
func Auth(jwtSecret string, sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.MsgLoginRequired)
			}
			if err := authenticate(c, authHeader, jwtSecret, sessions); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// OptionalAuth behaves like Auth when an Authorization header is present and
// lets anonymous requests through otherwise.
func OptionalAuth(jwtSecret string, sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				c.Set("role", string(domain.RoleAnonymous))
				return next(c)
			}
			if err := authenticate(c, authHeader, jwtSecret, sessions); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func authenticate(c echo.Context, authHeader, jwtSecret string, sessions SessionResolver) error {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.MsgInvalidAuthHeader)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.MsgSessionExpired)
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.MsgInvalidToken)
	}
	session, err := sessions.Session(c.Request().Context(), sid)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.MsgSessionExpired)
	}

	c.Set(SessionKey, session)
	c.Set("username", session.User.Username)
	c.Set("role", string(domain.RoleOfSession(session)))
	return nil
}
