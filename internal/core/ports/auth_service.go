package ports

import (
	"context"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// RegisterInput is the candidate account submitted on the registration screen.
type RegisterInput struct {
	Username      string
	Name          string
	Establishment string
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Token   string
	Session *domain.Session
}

type AuthService interface {
	Register(ctx context.Context, candidate RegisterInput, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	// Session resolves a session id issued by Login.
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
	// Users lists the registry without credentials.
	Users() []domain.User
	// Degraded reports whether the last write of the registry failed.
	Degraded() bool
}
