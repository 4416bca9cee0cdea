package get_my_bookings

import (
	"time"

	"github.com/linkup-team/linkup-gateway/internal/domain"
)

// ParticipantResponse is one side of a booking in the HTTP response
type ParticipantResponse struct {
	ID       int64   `json:"id"`
	Nickname string  `json:"nickname"`
	JobTitle *string `json:"jobTitle,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Grade    *string `json:"grade,omitempty"`
	Region   *string `json:"region,omitempty"`
}

// BookingResponse HTTP response model for a single booking. IsProposer and
// Counterpart are precomputed for the viewing user so UI clients render
// cards without re-deriving them.
type BookingResponse struct {
	ID            int64               `json:"id"`
	Status        string              `json:"status"`
	Student       ParticipantResponse `json:"student"`
	Mentor        ParticipantResponse `json:"mentor"`
	Proposer      ParticipantResponse `json:"proposer"`
	Note          string              `json:"note"`
	PreferredTime string              `json:"preferredTime"`
	RejectReason  *string             `json:"rejectReason,omitempty"`
	IsProposer    bool                `json:"isProposer"`
	Counterpart   ParticipantResponse `json:"counterpart"`
	CreatedAt     string              `json:"createdAt,omitempty"`
	UpdatedAt     string              `json:"updatedAt,omitempty"`
}

// BookingListResponse HTTP response model for the booking list
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainList converts domain bookings into the HTTP response for the
// given viewer
func FromDomainList(list []*domain.Booking, viewer *domain.Session) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(list))}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, fromDomain(b, viewer))
	}
	return resp
}

func fromDomain(b *domain.Booking, viewer *domain.Session) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		Status:        string(b.Status),
		Student:       fromParticipant(b.Student),
		Mentor:        fromParticipant(b.Mentor),
		Proposer:      fromParticipant(b.Proposer),
		Note:          b.Note,
		PreferredTime: b.PreferredTime,
		RejectReason:  b.RejectReason,
		IsProposer:    b.IsProposer(viewer.UserID),
		Counterpart:   fromParticipant(b.Counterpart(viewer.Role)),
	}
	if !b.CreatedAt.IsZero() {
		resp.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	if !b.UpdatedAt.IsZero() {
		resp.UpdatedAt = b.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func fromParticipant(p domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:       p.ID,
		Nickname: p.Nickname,
		JobTitle: p.JobTitle,
		Age:      p.Age,
		Grade:    p.Grade,
		Region:   p.Region,
	}
}
