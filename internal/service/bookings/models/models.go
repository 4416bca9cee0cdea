package models

import (
	"fmt"
	"time"

	"github.com/linkup-team/linkup-gateway/internal/domain"
)

// Wire models for the backend booking API

// ParticipantPayload is one side of a booking as the backend serializes it
type ParticipantPayload struct {
	ID       int64   `json:"id"`
	Nickname string  `json:"nickname"`
	JobTitle *string `json:"jobTitle,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Grade    *string `json:"grade,omitempty"`
	Region   *string `json:"region,omitempty"`
}

// BookingPayload is a booking as the backend serializes it
type BookingPayload struct {
	ID           int64              `json:"id"`
	Status       string             `json:"status"`
	Student      ParticipantPayload `json:"student"`
	Mentor       ParticipantPayload `json:"mentor"`
	Proposer     ParticipantPayload `json:"proposer"`
	Note         string             `json:"note"`
	Time         string             `json:"time"`
	RejectReason *string            `json:"rejectReason"`
	CreatedAt    string             `json:"createdAt"`
	UpdatedAt    string             `json:"updatedAt"`
}

// ProposeRequest is the body of POST /bookings/propose. Exactly one of
// MentorUserID and StudentUserID is set, keyed by the target's role.
type ProposeRequest struct {
	MentorUserID  *int64 `json:"mentorUserId,omitempty"`
	StudentUserID *int64 `json:"studentUserId,omitempty"`
	Note          string `json:"note"`
	Time          string `json:"time"`
}

// DecisionRequest is the body of POST /bookings/{id}/decision
type DecisionRequest struct {
	Approve bool    `json:"approve"`
	Reason  *string `json:"reason,omitempty"`
}

// Service request models

// ProposeBookingRequest is a propose intent from the gateway surface
type ProposeBookingRequest struct {
	TargetUserID  int64
	TargetRole    domain.Role
	Note          string
	PreferredTime string
}

// ToWire builds the backend request body, keyed by the target's role
func (r *ProposeBookingRequest) ToWire() *ProposeRequest {
	req := &ProposeRequest{
		Note: r.Note,
		Time: r.PreferredTime,
	}
	id := r.TargetUserID
	if r.TargetRole == domain.RoleMentor {
		req.MentorUserID = &id
	} else {
		req.StudentUserID = &id
	}
	return req
}

// Conversion

// ToDomain maps a wire booking onto the domain model, normalizing legacy
// status spellings and parsing the server-assigned timestamps.
func (p *BookingPayload) ToDomain() (*domain.Booking, error) {
	status, err := domain.NormalizeStatus(p.Status)
	if err != nil {
		return nil, fmt.Errorf("booking id=%d: status %q: %w", p.ID, p.Status, err)
	}

	booking := &domain.Booking{
		ID:            p.ID,
		Status:        status,
		Student:       p.Student.toDomain(),
		Mentor:        p.Mentor.toDomain(),
		Proposer:      p.Proposer.toDomain(),
		Note:          p.Note,
		PreferredTime: p.Time,
		RejectReason:  p.RejectReason,
	}

	// Timestamps are informational; a missing or malformed one is left zero
	// rather than failing the whole list
	if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		booking.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, p.UpdatedAt); err == nil {
		booking.UpdatedAt = t
	}

	return booking, nil
}

func (p ParticipantPayload) toDomain() domain.Participant {
	return domain.Participant{
		ID:       p.ID,
		Nickname: p.Nickname,
		JobTitle: p.JobTitle,
		Age:      p.Age,
		Grade:    p.Grade,
		Region:   p.Region,
	}
}

// ToDomainList maps a wire booking list onto domain models
func ToDomainList(payloads []BookingPayload) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0, len(payloads))
	for i := range payloads {
		booking, err := payloads[i].ToDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
