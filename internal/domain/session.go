package domain

import "time"

// Role is the role a user authenticated with
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// Session is an authenticated actor identity held by the gateway.
// ID is gateway-issued and handed to the caller; Token is the bearer token
// issued by the backend, attached to every outbound booking call.
type Session struct {
	ID        string
	UserID    int64
	Nickname  string
	Role      Role
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired returns true if the session is past its expiry time
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
