package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, candidate ports.RegisterInput, password string) (*domain.User, error) {
			if candidate.Username != "alice" || candidate.Name != "Alice" || password != "secret" {
				t.Fatalf("unexpected args: %+v %s", candidate, password)
			}
			return &domain.User{Username: candidate.Username, Name: candidate.Name, Establishment: candidate.Establishment}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newContext(http.MethodPost, "/v1/auth/register",
		`{"username":"alice","password":"secret","name":"Alice","establishment":"Bar"}`, nil)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != domain.MsgRegistered || resp.User.Username != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if rec.Header().Get("Warning") != "" {
		t.Fatalf("no warning expected on healthy storage")
	}
}

func TestAuthHandler_Register_DegradedStorageWarns(t *testing.T) {
	stub := &stubAuthService{
		degraded: true,
		registerFn: func(_ context.Context, candidate ports.RegisterInput, _ string) (*domain.User, error) {
			return &domain.User{Username: candidate.Username}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/v1/auth/register",
		`{"username":"alice","password":"secret","name":"Alice"}`, nil)
	if err := NewAuthHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Header().Get("Warning") == "" {
		t.Fatalf("expected storage warning header")
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput, string) (*domain.User, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}
	c, _ := newContext(http.MethodPost, "/v1/auth/register", `{"username":"bob","password":"x","name":"Bob"}`, nil)

	err := NewAuthHandler(stub).Register(c)
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	expires := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "admin" || password != "figueiras2024" {
				t.Fatalf("unexpected credentials")
			}
			return &ports.LoginResult{
				Token:   "signed",
				Session: &domain.Session{ID: "sid", User: domain.User{Username: "admin"}, ExpiresAt: expires},
			}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"figueiras2024"}`, nil)
	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "signed" || resp.Role != domain.RoleAdmin || !resp.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_MissingFieldsAreInvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	c, _ := newContext(http.MethodPost, "/v1/auth/login", `{"username":"admin"}`, nil)

	err := NewAuthHandler(stub).Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	stub := &stubAuthService{}
	c, rec := newContext(http.MethodPost, "/v1/auth/logout", "", clientSession("ana"))

	if err := NewAuthHandler(stub).Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(stub.loggedOut) != 1 || stub.loggedOut[0] != "sid-ana" {
		t.Fatalf("unexpected logout calls: %v", stub.loggedOut)
	}
}

func TestAuthHandler_Me_RequiresSession(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/v1/me", "", nil)
	if err := NewAuthHandler(&stubAuthService{}).Me(c); err == nil {
		t.Fatal("expected error without session")
	}
}

func TestAuthHandler_Users(t *testing.T) {
	stub := &stubAuthService{users: []domain.User{{Username: "admin"}, {Username: "ana"}}}
	c, rec := newContext(http.MethodGet, "/v1/admin/users", "", adminSession())

	if err := NewAuthHandler(stub).Users(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp usersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected 2 users, got %d", resp.Total)
	}
}
