package directory

// MentorProfile is a mentor as listed by the backend explore API
type MentorProfile struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	JobTitle string `json:"jobTitle"`
	Tags     string `json:"tags"`
}

// StudentProfile is a student as listed by the backend explore API
type StudentProfile struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	Age       int    `json:"age"`
	Grade     string `json:"grade"`
	Region    string `json:"region"`
	Interests string `json:"interests"`
}
