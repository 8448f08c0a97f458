package messaging

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

func TestEncode(t *testing.T) {
	e := domain.ReservationEvent{
		Type:        domain.EventReservationCreated,
		Reservation: domain.Reservation{ID: 42, Owner: "joao", EventType: domain.EventTypeCommon},
		OccurredAt:  time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := Encode(e)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body is not json: %v", err)
	}
	if got["type"] != "reservation.created" {
		t.Errorf("type = %v", got["type"])
	}
	r, _ := got["reservation"].(map[string]any)
	if r["owner"] != "joao" || r["event_type"] != "Comum" {
		t.Errorf("reservation = %v", r)
	}
}
