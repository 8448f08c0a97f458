package domain

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUser        = errors.New("invalid user")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidReservation  = errors.New("invalid reservation")
	ErrForbidden           = errors.New("access forbidden")

	ErrNoPendingReservation = errors.New("no pending reservation")
	ErrInvalidTransition    = errors.New("invalid pending reservation transition")

	ErrCollectionNotFound = errors.New("collection not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSuggestionNotFound = errors.New("suggestion not found")
)
