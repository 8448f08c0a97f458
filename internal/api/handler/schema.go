package handler

import (
	"time"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Identity ---

type registerRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Name          string `json:"name"`
	Establishment string `json:"establishment"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Role      domain.Role  `json:"role"`
	User      *domain.User `json:"user"`
}

type meResponse struct {
	User domain.User `json:"user"`
	Role domain.Role `json:"role"`
}

type usersResponse struct {
	Items []domain.User `json:"items"`
	Total int           `json:"total"`
}

// --- Reservations ---

// reservationRequest is validated on direct create/update. The pending draft
// endpoint binds the same shape without validation.
type reservationRequest struct {
	Name       string `json:"name"        validate:"required"`
	Phone      string `json:"phone"       validate:"required"`
	GuestCount int    `json:"guest_count" validate:"gte=1"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	Time       string `json:"time"        validate:"required,datetime=15:04"`
	Occasion   string `json:"occasion"    validate:"required"`
	EventType  string `json:"event_type"  validate:"required"`
}

type reservationLinks struct {
	Self       string `json:"self"`
	Suggestion string `json:"suggestion"`
	Contract   string `json:"contract"`
}

type reservationResponse struct {
	ID         int64            `json:"id"`
	Number     string           `json:"number"`
	Owner      string           `json:"owner,omitempty"`
	Name       string           `json:"name"`
	Phone      string           `json:"phone"`
	GuestCount int              `json:"guest_count"`
	Date       string           `json:"date"`
	Time       string           `json:"time"`
	Occasion   string           `json:"occasion"`
	EventType  string           `json:"event_type"`
	Upcoming   bool             `json:"upcoming"`
	Links      reservationLinks `json:"_links"`
}

type listReservationsResponse struct {
	Title string                `json:"title"`
	Order string                `json:"order"`
	Items []reservationResponse `json:"items"`
	Total int                   `json:"total"`
}

type reservationResult struct {
	Reservation reservationResponse `json:"reservation"`
	Suggestion  *domain.Suggestion  `json:"suggestion,omitempty"`
}

type catalogueResponse struct {
	Occasions  []string `json:"occasions"`
	EventTypes []string `json:"event_types"`
}

// --- Pending flow ---

type pendingResponse struct {
	Pending     *domain.PendingReservation `json:"pending"`
	Reservation *reservationResponse       `json:"reservation,omitempty"`
	Suggestion  *domain.Suggestion         `json:"suggestion,omitempty"`
}

// --- Contracts ---

type contractItem struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
	Date   string `json:"date"`
}

type listContractsResponse struct {
	Items   []contractItem `json:"items"`
	Message string         `json:"message,omitempty"`
}

type contractResponse struct {
	Reservation reservationResponse `json:"reservation"`
	Viewer      string              `json:"viewer"`
}

// --- Health ---

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Degraded     bool                        `json:"storage_degraded"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}
