package domain

import "time"

// Session holds the authenticated user of one login. It is never persisted
// with the durable collections.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RoleOfSession returns RoleAnonymous for a nil session.
func RoleOfSession(s *Session) Role {
	if s == nil {
		return RoleAnonymous
	}
	return RoleOf(&s.User)
}

// Viewer returns the projection scope of the session owner.
func (s *Session) Viewer() Viewer {
	if s == nil {
		return Viewer{Role: RoleAnonymous}
	}
	return ViewerOf(&s.User)
}
