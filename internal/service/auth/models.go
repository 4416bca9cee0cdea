package auth

// Wire models for the backend auth API. The backend spells roles MENTOR and
// STUDENT; the gateway maps them onto domain.Role on the way in.

const (
	wireRoleMentor  = "MENTOR"
	wireRoleStudent = "STUDENT"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID          int64  `json:"id"`
	AccessToken string `json:"accessToken"`
	Nickname    string `json:"nickname"`
	Role        string `json:"role"`
}

type signupResponse struct {
	ID          int64  `json:"id"`
	AccessToken string `json:"accessToken"`
	Nickname    string `json:"nickname"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Message     string `json:"message"`
}

// MentorSignupRequest carries the mentor signup fields
type MentorSignupRequest struct {
	Email    string
	Password string
	Nickname string
	Age      int
	Mentor   MentorProfile
}

// MentorProfile is the mentor-specific part of a signup
type MentorProfile struct {
	JobTitle        string `json:"jobTitle"`
	Major           string `json:"major"`
	Intro           string `json:"intro"`
	Tags            string `json:"tags"`
	OrgName         string `json:"orgName"`
	VerificationURL string `json:"verificationUrl"`
}

// MenteeSignupRequest carries the mentee signup fields
type MenteeSignupRequest struct {
	Email    string
	Password string
	Nickname string
	Age      int
	Student  StudentProfile
}

// StudentProfile is the mentee-specific part of a signup
type StudentProfile struct {
	Grade     string `json:"grade"`
	Region    string `json:"region"`
	Interests string `json:"interests"`
}

type mentorSignupPayload struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Nickname string        `json:"nickname"`
	Age      int           `json:"age"`
	Role     string        `json:"role"`
	Mentor   MentorProfile `json:"mentor"`
}

type menteeSignupPayload struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Nickname string         `json:"nickname"`
	Age      int            `json:"age"`
	Role     string         `json:"role"`
	Student  StudentProfile `json:"student"`
}
