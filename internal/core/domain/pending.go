package domain

import "time"

// PendingStage is the client-side step of the reservation flow held for a session.
type PendingStage string

const (
	StageDrafting  PendingStage = "drafting"
	StageConfirmed PendingStage = "confirmed"
	StageEditing   PendingStage = "editing"
)

// PendingReservation is the in-progress reservation tied to one session. While
// drafting a new booking ReservationID is zero; once confirmed it points at the
// persisted record it represents.
type PendingReservation struct {
	SessionID     string           `json:"session_id"`
	Stage         PendingStage     `json:"stage"`
	ReservationID int64            `json:"reservation_id,omitempty"`
	Draft         ReservationDraft `json:"draft"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Represents reports whether the pending record stands for reservation id.
func (p *PendingReservation) Represents(id int64) bool {
	return p != nil && p.ReservationID != 0 && p.ReservationID == id
}
