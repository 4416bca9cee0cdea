package login

import "github.com/linkup-team/linkup-gateway/internal/domain"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model. SessionID is the bearer credential for
// all further gateway calls.
type LoginResponse struct {
	SessionID string `json:"sessionId"`
	UserID    int64  `json:"userId"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role"`
}

// FromSession converts a session into the HTTP response
func FromSession(s *domain.Session) *LoginResponse {
	return &LoginResponse{
		SessionID: s.ID,
		UserID:    s.UserID,
		Nickname:  s.Nickname,
		Role:      string(s.Role),
	}
}
