package domain

import "time"

// BookingStatus represents the status of a coffee-chat booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusApproved  BookingStatus = "APPROVED"
	StatusRejected  BookingStatus = "REJECTED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// legacyStatusAccepted was used by earlier backend revisions instead of
// APPROVED. Responses carrying it are normalized on the way in.
const legacyStatusAccepted = "ACCEPTED"

// Participant is one side of a booking: an immutable snapshot of the user
// taken at booking creation time, not a live reference to a mutable profile.
type Participant struct {
	ID       int64
	Nickname string
	JobTitle *string
	Age      *int
	Grade    *string
	Region   *string
}

// Booking represents a single coffee-chat meeting request between a mentor
// and a student. The backend is the source of truth; instances held by the
// gateway are a local view reconciled on every list fetch.
type Booking struct {
	ID            int64
	Status        BookingStatus
	Student       Participant
	Mentor        Participant
	Proposer      Participant
	Note          string
	PreferredTime string
	RejectReason  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsTerminal returns true once the booking has left PENDING.
// Terminal statuses never transition again.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusApproved ||
		b.Status == StatusRejected ||
		b.Status == StatusCancelled
}

// CanBeDecided returns true if the booking can still be approved or rejected
func (b *Booking) CanBeDecided() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending
}

// IsProposer returns true if the given user initiated this booking
func (b *Booking) IsProposer(userID int64) bool {
	return b.Proposer.ID == userID
}

// Counterpart returns the other side of the conversation for the viewing
// user's role, independent of who proposed: mentors see the student,
// mentees see the mentor.
func (b *Booking) Counterpart(viewerRole Role) Participant {
	if viewerRole == RoleMentor {
		return b.Student
	}
	return b.Mentor
}
