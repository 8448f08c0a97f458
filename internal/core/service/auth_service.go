package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
	"github.com/barfigueiras/reservas/internal/pkg/metrics"
)

// AuthOptions configures the identity service.
type AuthOptions struct {
	JWTSecret   string
	TokenTTL    time.Duration
	Seed        domain.User // administrator created when the registry is empty
	Credentials Credentials
}

// AuthService owns the user registry and the login sessions.
type AuthService struct {
	mu    sync.RWMutex
	users []domain.User

	coll     *collection
	sessions ports.SessionStore
	pending  ports.PendingStore
	creds    Credentials
	seed     domain.User

	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

func NewAuthService(store ports.CollectionStore, sessions ports.SessionStore, pending ports.PendingStore, opts AuthOptions, logger zerolog.Logger) *AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.Credentials == nil {
		opts.Credentials = PlainCredentials{}
	}
	seed := opts.Seed
	seed.Username = domain.AdminUsername
	return &AuthService{
		coll:      newCollection(ports.CollectionUsers, store, logger),
		sessions:  sessions,
		pending:   pending,
		creds:     opts.Credentials,
		seed:      seed,
		jwtSecret: opts.JWTSecret,
		tokenTTL:  opts.TokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Load reads the user registry. A missing or corrupt collection falls back to
// the seed administrator; a registry without the administrator gets it back.
func (s *AuthService) Load(ctx context.Context) error {
	var records []userRecord
	users := []domain.User{}
	if s.coll.load(ctx, &records) {
		users = fromUserRecords(records)
	}

	hasAdmin := false
	for _, u := range users {
		if u.Username == domain.AdminUsername {
			hasAdmin = true
			break
		}
	}
	if !hasAdmin {
		admin := s.seed
		sealed, err := s.creds.Seal(admin.Password)
		if err != nil {
			return fmt.Errorf("seal seed password: %w", err)
		}
		admin.Password = sealed
		users = append([]domain.User{admin}, users...)
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()

	s.logger.Info().Int("users", len(users)).Msg("user registry loaded")
	return nil
}

// Register appends a new user. It does not log the user in. Every field is
// required and the username is stored exactly as typed, so one with
// surrounding spaces is rejected rather than silently changed.
func (s *AuthService) Register(ctx context.Context, candidate ports.RegisterInput, password string) (*domain.User, error) {
	username := candidate.Username
	name := strings.TrimSpace(candidate.Name)
	establishment := strings.TrimSpace(candidate.Establishment)
	if username == "" || username != strings.TrimSpace(username) {
		return nil, domain.ErrInvalidUser
	}
	if password == "" || name == "" || establishment == "" {
		return nil, domain.ErrInvalidUser
	}

	sealed, err := s.creds.Seal(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := domain.User{
		Username:      username,
		Password:      sealed,
		Name:          name,
		Establishment: establishment,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, domain.ErrDuplicateUsername
		}
	}
	s.users = append(s.users, user)
	s.coll.save(ctx, toUserRecords(s.users))

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Str("username", username).Msg("user registered")

	out := user
	return &out, nil
}

// Authenticate returns the user whose username and password both match.
func (s *AuthService) Authenticate(_ context.Context, username, password string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username && s.creds.Matches(u.Password, password) {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// Login authenticates, opens a session and signs a token for it.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	now := s.now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}
	session.User.Password = ""

	if err := s.sessions.Put(ctx, session, s.tokenTTL); err != nil {
		return nil, fmt.Errorf("login: store session: %w", err)
	}

	token, err := s.generateToken(session)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", string(domain.RoleOf(user))).Msg("user logged in")

	return &ports.LoginResult{Token: token, Session: session}, nil
}

// Logout ends the session and discards its pending reservation.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.pending.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrNoPendingReservation) {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to discard pending reservation")
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.logger.Info().Str("session_id", sessionID).Msg("user logged out")
	return nil
}

func (s *AuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// Users returns a copy of the registry without credentials.
func (s *AuthService) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		u.Password = ""
		out = append(out, u)
	}
	return out
}

func (s *AuthService) Degraded() bool { return s.coll.degraded.Load() }

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      session.ID,
		"username": session.User.Username,
		"role":     string(domain.RoleOf(&session.User)),
		"exp":      session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
