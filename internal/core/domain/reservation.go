package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// EventType is the service style booked for the event.
type EventType string

const (
	EventTypeCommon  EventType = "Comum"
	EventTypePackage EventType = "Pacote"
)

// ParseEventType accepts the localized values and their English aliases.
func ParseEventType(s string) (EventType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "comum", "common":
		return EventTypeCommon, true
	case "pacote", "package":
		return EventTypePackage, true
	}
	return "", false
}

// DefaultOccasions is the built-in occasion catalogue.
var DefaultOccasions = []string{
	"aniversário",
	"casamento",
	"noivado",
	"dia dos namorados",
	"batismo",
	"reunião",
}

// OccasionSet is the catalogue of accepted occasions. Matching is case-insensitive
// and the catalogue spelling is kept.
type OccasionSet struct {
	names []string
	index map[string]string
}

// NewOccasionSet builds the default catalogue extended with extra.
func NewOccasionSet(extra ...string) OccasionSet {
	set := OccasionSet{index: make(map[string]string)}
	for _, name := range append(append([]string{}, DefaultOccasions...), extra...) {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, dup := set.index[key]; dup {
			continue
		}
		set.index[key] = name
		set.names = append(set.names, name)
	}
	return set
}

// Names returns the catalogue in declaration order.
func (s OccasionSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Lookup returns the canonical spelling of name.
func (s OccasionSet) Lookup(name string) (string, bool) {
	canonical, ok := s.index[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// ReservationDraft carries the mutable fields of a reservation.
type ReservationDraft struct {
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	GuestCount int       `json:"guest_count"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Occasion   string    `json:"occasion"`
	EventType  EventType `json:"event_type"`
}

// Normalize validates the draft against the occasion catalogue and returns it
// with canonical occasion and event type spellings.
func (d ReservationDraft) Normalize(occasions OccasionSet) (ReservationDraft, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Date = strings.TrimSpace(d.Date)
	d.Time = strings.TrimSpace(d.Time)

	switch {
	case d.Name == "":
		return d, fmt.Errorf("%w: "+detailRequired, ErrInvalidReservation, "name")
	case d.Phone == "":
		return d, fmt.Errorf("%w: "+detailRequired, ErrInvalidReservation, "phone")
	case d.GuestCount < 1:
		return d, fmt.Errorf("%w: %s", ErrInvalidReservation, detailMinGuests)
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return d, fmt.Errorf("%w: %s", ErrInvalidReservation, detailDateFormat)
	}
	if _, err := time.Parse(TimeLayout, d.Time); err != nil {
		return d, fmt.Errorf("%w: %s", ErrInvalidReservation, detailTimeFormat)
	}

	occasion, ok := occasions.Lookup(d.Occasion)
	if !ok {
		return d, fmt.Errorf("%w: "+detailUnknownOccas, ErrInvalidReservation, d.Occasion)
	}
	d.Occasion = occasion

	et, ok := ParseEventType(string(d.EventType))
	if !ok {
		return d, fmt.Errorf("%w: "+detailUnknownEvent, ErrInvalidReservation, d.EventType)
	}
	d.EventType = et
	return d, nil
}

// Reservation is a confirmed booking. ID and Owner never change after creation.
type Reservation struct {
	ID         int64     `json:"id"`
	Owner      string    `json:"owner"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	GuestCount int       `json:"guest_count"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Occasion   string    `json:"occasion"`
	EventType  EventType `json:"event_type"`
}

// NewReservation stamps id and owner on a validated draft.
func NewReservation(id int64, owner string, d ReservationDraft) Reservation {
	r := Reservation{ID: id, Owner: owner}
	r.Apply(d)
	return r
}

// Apply replaces every mutable field with the draft values.
func (r *Reservation) Apply(d ReservationDraft) {
	r.Name = d.Name
	r.Phone = d.Phone
	r.GuestCount = d.GuestCount
	r.Date = d.Date
	r.Time = d.Time
	r.Occasion = d.Occasion
	r.EventType = d.EventType
}

// Draft returns the mutable fields of r.
func (r Reservation) Draft() ReservationDraft {
	return ReservationDraft{
		Name:       r.Name,
		Phone:      r.Phone,
		GuestCount: r.GuestCount,
		Date:       r.Date,
		Time:       r.Time,
		Occasion:   r.Occasion,
		EventType:  r.EventType,
	}
}

// ShortNumber is the last five digits of the id, shown to guests as the booking number.
func (r Reservation) ShortNumber() string {
	s := strconv.FormatInt(r.ID, 10)
	if len(s) > 5 {
		return s[len(s)-5:]
	}
	return s
}

// IsUpcoming reports whether the reservation date is today or later. The date is a
// wall-clock date, so it is compared in the location of now.
func (r Reservation) IsUpcoming(now time.Time) bool {
	day, err := time.ParseInLocation(DateLayout, r.Date, now.Location())
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return !day.Before(today)
}
