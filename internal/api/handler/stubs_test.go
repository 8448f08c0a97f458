package handler

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/barfigueiras/reservas/internal/api/middleware"
	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

var errBoom = errors.New("boom")

type stubAuthService struct {
	registerFn func(ctx context.Context, candidate ports.RegisterInput, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	loggedOut  []string
	users      []domain.User
	degraded   bool
}

func (s *stubAuthService) Register(ctx context.Context, candidate ports.RegisterInput, password string) (*domain.User, error) {
	return s.registerFn(ctx, candidate, password)
}

func (s *stubAuthService) Authenticate(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = append(s.loggedOut, sessionID)
	return nil
}

func (s *stubAuthService) Session(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubAuthService) Users() []domain.User { return s.users }
func (s *stubAuthService) Degraded() bool       { return s.degraded }

type stubReservationService struct {
	items     []domain.Reservation
	created   []domain.ReservationDraft
	cancelled []int64
	lastOrder ports.ListOrder
	createErr error
	degraded  bool
}

func (s *stubReservationService) Create(_ context.Context, owner string, d domain.ReservationDraft) (*domain.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, d)
	r := domain.NewReservation(int64(1000+len(s.items)), owner, d)
	s.items = append(s.items, r)
	return &r, nil
}

func (s *stubReservationService) Update(_ context.Context, id int64, d domain.ReservationDraft) (*domain.Reservation, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Apply(d)
			r := s.items[i]
			return &r, nil
		}
	}
	return nil, domain.ErrReservationNotFound
}

func (s *stubReservationService) Cancel(_ context.Context, id int64) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.cancelled = append(s.cancelled, id)
			return nil
		}
	}
	return domain.ErrReservationNotFound
}

func (s *stubReservationService) ListFor(_ context.Context, v domain.Viewer, order ports.ListOrder) ([]domain.Reservation, error) {
	s.lastOrder = order
	out := []domain.Reservation{}
	for _, r := range s.items {
		if v.Sees(r.Owner) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubReservationService) GetFor(_ context.Context, v domain.Viewer, id int64) (*domain.Reservation, error) {
	for _, r := range s.items {
		if r.ID == id && v.Sees(r.Owner) {
			return &r, nil
		}
	}
	return nil, domain.ErrReservationNotFound
}

func (s *stubReservationService) Occasions() domain.OccasionSet { return domain.NewOccasionSet() }
func (s *stubReservationService) Degraded() bool                { return s.degraded }

type stubSuggestionService struct {
	requested []int64
	forgotten []int64
	byID      map[int64]*domain.Suggestion
}

func (s *stubSuggestionService) Request(_ context.Context, r domain.Reservation) (*domain.Suggestion, error) {
	s.requested = append(s.requested, r.ID)
	return &domain.Suggestion{ReservationID: r.ID, RequestID: "req-1", State: domain.SuggestionPending}, nil
}

func (s *stubSuggestionService) Process(context.Context, ports.SuggestionJob) error { return nil }

func (s *stubSuggestionService) Reject(context.Context, ports.SuggestionJob, error) error { return nil }

func (s *stubSuggestionService) Get(_ context.Context, id int64) (*domain.Suggestion, error) {
	if sug, ok := s.byID[id]; ok {
		return sug, nil
	}
	return nil, domain.ErrSuggestionNotFound
}

func (s *stubSuggestionService) Forget(_ context.Context, id int64) error {
	s.forgotten = append(s.forgotten, id)
	return nil
}

type stubPendingService struct {
	current   *domain.PendingReservation
	saved     []domain.ReservationDraft
	forgotten []int64
	resets    int
	err       error
}

func (s *stubPendingService) Current(context.Context, *domain.Session) (*domain.PendingReservation, error) {
	if s.current == nil {
		return nil, domain.ErrNoPendingReservation
	}
	return s.current, nil
}

func (s *stubPendingService) SaveDraft(_ context.Context, session *domain.Session, d domain.ReservationDraft) (*domain.PendingReservation, error) {
	s.saved = append(s.saved, d)
	s.current = &domain.PendingReservation{SessionID: session.ID, Stage: domain.StageDrafting, Draft: d}
	return s.current, nil
}

func (s *stubPendingService) Confirm(_ context.Context, session *domain.Session) (*domain.PendingReservation, *domain.Reservation, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	r := domain.NewReservation(4242, session.User.Username, s.current.Draft)
	s.current.Stage = domain.StageConfirmed
	s.current.ReservationID = r.ID
	return s.current, &r, nil
}

func (s *stubPendingService) Edit(context.Context, *domain.Session) (*domain.PendingReservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.current.Stage = domain.StageEditing
	return s.current, nil
}

func (s *stubPendingService) EditReservation(_ context.Context, session *domain.Session, id int64) (*domain.PendingReservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.current = &domain.PendingReservation{SessionID: session.ID, Stage: domain.StageEditing, ReservationID: id}
	return s.current, nil
}

func (s *stubPendingService) CancelConfirmed(context.Context, *domain.Session) error { return s.err }

func (s *stubPendingService) Reset(context.Context, *domain.Session) error {
	s.resets++
	s.current = nil
	return nil
}

func (s *stubPendingService) Forget(_ context.Context, id int64) error {
	s.forgotten = append(s.forgotten, id)
	return nil
}

// newContext builds an echo context carrying session, as the Auth middleware would.
func newContext(method, target, body string, session *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		c.Set(middleware.SessionKey, session)
	}
	return c, rec
}

func clientSession(username string) *domain.Session {
	return &domain.Session{ID: "sid-" + username, User: domain.User{Username: username, Name: "Cliente"}}
}

func adminSession() *domain.Session {
	return &domain.Session{ID: "sid-admin", User: domain.User{Username: domain.AdminUsername, Name: "Admin"}}
}

const validBody = `{"name":"Ana","phone":"11999990000","guest_count":10,"date":"2030-05-01","time":"19:00","occasion":"aniversário","event_type":"Comum"}`
