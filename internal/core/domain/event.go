package domain

import "time"

// ReservationEventType names a lifecycle transition published after persistence.
type ReservationEventType string

const (
	EventReservationCreated   ReservationEventType = "reservation.created"
	EventReservationUpdated   ReservationEventType = "reservation.updated"
	EventReservationCancelled ReservationEventType = "reservation.cancelled"
)

// ReservationEvent is the payload sent to the message broker.
type ReservationEvent struct {
	Type        ReservationEventType `json:"type"`
	Reservation Reservation          `json:"reservation"`
	OccurredAt  time.Time            `json:"occurred_at"`
}
