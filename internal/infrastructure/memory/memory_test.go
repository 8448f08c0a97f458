package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

func TestCollectionStore_LoadMissing(t *testing.T) {
	s := NewCollectionStore()
	if _, err := s.Load(context.Background(), "users"); !errors.Is(err, domain.ErrCollectionNotFound) {
		t.Errorf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestCollectionStore_SaveReplacesPayload(t *testing.T) {
	s := NewCollectionStore()
	ctx := context.Background()

	payload := []byte(`[1]`)
	_ = s.Save(ctx, "reservations", payload)
	payload[1] = '9'
	_ = s.Save(ctx, "users", []byte(`[]`))

	got, err := s.Load(ctx, "reservations")
	if err != nil || string(got) != `[1]` {
		t.Fatalf("Load = %q, %v", got, err)
	}

	_ = s.Save(ctx, "reservations", []byte(`[2,3]`))
	got, _ = s.Load(ctx, "reservations")
	if string(got) != `[2,3]` {
		t.Errorf("Save should replace the collection, got %q", got)
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	s := NewSessionStore()
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Put(ctx, &domain.Session{ID: "a", User: domain.User{Username: "joao"}}, time.Minute)

	got, err := s.Get(ctx, "a")
	if err != nil || got.User.Username != "joao" {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	now = now.Add(time.Minute)
	if _, err := s.Get(ctx, "a"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expired session: expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	_ = s.Put(ctx, &domain.Session{ID: "a"}, 0)
	_ = s.Delete(ctx, "a")
	if _, err := s.Get(ctx, "a"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "a"); err != nil {
		t.Errorf("deleting twice should succeed, got %v", err)
	}
}

func TestPendingStore(t *testing.T) {
	s := NewPendingStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "a"); !errors.Is(err, domain.ErrNoPendingReservation) {
		t.Fatalf("expected ErrNoPendingReservation, got %v", err)
	}

	_ = s.Put(ctx, &domain.PendingReservation{SessionID: "a", Stage: domain.StageDrafting})
	got, _ := s.Get(ctx, "a")
	got.Stage = domain.StageConfirmed
	again, _ := s.Get(ctx, "a")
	if again.Stage != domain.StageDrafting {
		t.Error("Get must return a copy")
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "a"); !errors.Is(err, domain.ErrNoPendingReservation) {
		t.Errorf("second delete: expected ErrNoPendingReservation, got %v", err)
	}
}

func TestPendingStore_DeleteByReservation(t *testing.T) {
	s := NewPendingStore()
	ctx := context.Background()

	_ = s.Put(ctx, &domain.PendingReservation{SessionID: "maria", Stage: domain.StageConfirmed, ReservationID: 7})
	_ = s.Put(ctx, &domain.PendingReservation{SessionID: "maria-2", Stage: domain.StageEditing, ReservationID: 7})
	_ = s.Put(ctx, &domain.PendingReservation{SessionID: "joao", Stage: domain.StageConfirmed, ReservationID: 8})
	_ = s.Put(ctx, &domain.PendingReservation{SessionID: "ana", Stage: domain.StageDrafting})

	n, err := s.DeleteByReservation(ctx, 7)
	if err != nil || n != 2 {
		t.Fatalf("DeleteByReservation = %d, %v; want 2", n, err)
	}
	for _, id := range []string{"maria", "maria-2"} {
		if _, err := s.Get(ctx, id); !errors.Is(err, domain.ErrNoPendingReservation) {
			t.Errorf("%s: expected ErrNoPendingReservation, got %v", id, err)
		}
	}
	for _, id := range []string{"joao", "ana"} {
		if _, err := s.Get(ctx, id); err != nil {
			t.Errorf("%s must survive: %v", id, err)
		}
	}
	if n, _ := s.DeleteByReservation(ctx, 0); n != 0 {
		t.Errorf("id 0 matches drafts: removed %d", n)
	}
}

func TestSuggestionStore(t *testing.T) {
	s := NewSuggestionStore()
	ctx := context.Background()

	_ = s.Put(ctx, &domain.Suggestion{ReservationID: 7, RequestID: "r1", State: domain.SuggestionPending})
	_ = s.Put(ctx, &domain.Suggestion{ReservationID: 7, RequestID: "r2", State: domain.SuggestionReady})

	got, err := s.Get(ctx, 7)
	if err != nil || got.RequestID != "r2" {
		t.Fatalf("Get = %+v, %v", got, err)
	}
	_ = s.Delete(ctx, 7)
	if _, err := s.Get(ctx, 7); !errors.Is(err, domain.ErrSuggestionNotFound) {
		t.Errorf("expected ErrSuggestionNotFound, got %v", err)
	}
}
