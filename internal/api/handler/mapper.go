package handler

import (
	"strconv"
	"time"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// --- Request → Domain ---

func toDraft(req reservationRequest) domain.ReservationDraft {
	return domain.ReservationDraft{
		Name:       req.Name,
		Phone:      req.Phone,
		GuestCount: req.GuestCount,
		Date:       req.Date,
		Time:       req.Time,
		Occasion:   req.Occasion,
		EventType:  domain.EventType(req.EventType),
	}
}

// --- Domain → Response ---

// toReservationResponse renders r for viewer. The owner is shown to the
// administrator only.
func toReservationResponse(r domain.Reservation, role domain.Role, now time.Time) reservationResponse {
	self := "/v1/reservations/" + strconv.FormatInt(r.ID, 10)
	resp := reservationResponse{
		ID:         r.ID,
		Number:     r.ShortNumber(),
		Name:       r.Name,
		Phone:      r.Phone,
		GuestCount: r.GuestCount,
		Date:       r.Date,
		Time:       r.Time,
		Occasion:   r.Occasion,
		EventType:  string(r.EventType),
		Upcoming:   r.IsUpcoming(now),
		Links: reservationLinks{
			Self:       self,
			Suggestion: self + "/suggestion",
			Contract:   "/v1/contracts/" + strconv.FormatInt(r.ID, 10),
		},
	}
	if role == domain.RoleAdmin {
		resp.Owner = r.Owner
	}
	return resp
}

func toReservationResponses(items []domain.Reservation, role domain.Role, now time.Time) []reservationResponse {
	out := make([]reservationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReservationResponse(r, role, now))
	}
	return out
}

func toContractItems(items []domain.Reservation) []contractItem {
	out := make([]contractItem, 0, len(items))
	for _, r := range items {
		out = append(out, contractItem{ID: r.ID, Number: r.ShortNumber(), Name: r.Name, Date: r.Date})
	}
	return out
}
