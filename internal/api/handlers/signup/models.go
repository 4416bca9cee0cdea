package signup

import (
	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/service/auth"
)

// Role spellings accepted from UI clients, matching the backend contract
const (
	roleMentor  = "MENTOR"
	roleStudent = "STUDENT"
)

// SignupRequest HTTP request model. Role selects which profile section is
// required: mentor for MENTOR, student for STUDENT.
type SignupRequest struct {
	Email    string               `json:"email"`
	Password string               `json:"password"`
	Nickname string               `json:"nickname"`
	Age      int                  `json:"age"`
	Role     string               `json:"role"`
	Mentor   *auth.MentorProfile  `json:"mentor,omitempty"`
	Student  *auth.StudentProfile `json:"student,omitempty"`
}

// ToMentorRequest converts the HTTP request into the mentor service request
func (r *SignupRequest) ToMentorRequest() *auth.MentorSignupRequest {
	req := &auth.MentorSignupRequest{
		Email:    r.Email,
		Password: r.Password,
		Nickname: r.Nickname,
		Age:      r.Age,
	}
	if r.Mentor != nil {
		req.Mentor = *r.Mentor
	}
	return req
}

// ToMenteeRequest converts the HTTP request into the mentee service request
func (r *SignupRequest) ToMenteeRequest() *auth.MenteeSignupRequest {
	req := &auth.MenteeSignupRequest{
		Email:    r.Email,
		Password: r.Password,
		Nickname: r.Nickname,
		Age:      r.Age,
	}
	if r.Student != nil {
		req.Student = *r.Student
	}
	return req
}

// SignupResponse HTTP response model
type SignupResponse struct {
	SessionID string `json:"sessionId"`
	UserID    int64  `json:"userId"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role"`
}

// FromSession converts a session into the HTTP response
func FromSession(s *domain.Session) *SignupResponse {
	return &SignupResponse{
		SessionID: s.ID,
		UserID:    s.UserID,
		Nickname:  s.Nickname,
		Role:      string(s.Role),
	}
}
