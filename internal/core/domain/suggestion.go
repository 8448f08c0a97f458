package domain

import "time"

// SuggestionState is the lifecycle of one suggestion request. Exactly one state is
// visible at a time.
type SuggestionState string

const (
	SuggestionPending SuggestionState = "pending"
	SuggestionReady   SuggestionState = "ready"
	SuggestionFailed  SuggestionState = "failed"
)

// Suggestion tracks the latest event-concept request for a reservation. It lives
// apart from the persisted reservation fields.
type Suggestion struct {
	ReservationID int64           `json:"reservation_id"`
	RequestID     string          `json:"request_id"`
	State         SuggestionState `json:"state"`
	Text          string          `json:"text,omitempty"`
	Error         string          `json:"error,omitempty"`
	RequestedAt   time.Time       `json:"requested_at"`
	CompletedAt   time.Time       `json:"completed_at,omitempty"`
}
