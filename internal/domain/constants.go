package domain

import "errors"

// ErrInvalidStatus is returned when a status string cannot be normalized
var ErrInvalidStatus = errors.New("invalid booking status")

// DefaultRejectReason is recorded when a booking is rejected without an
// explicit reason
const DefaultRejectReason = "No reason provided"

// ValidStatuses lists the canonical booking statuses
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
}

// TerminalStatuses lists the statuses a booking never leaves
var TerminalStatuses = []BookingStatus{
	StatusApproved,
	StatusRejected,
	StatusCancelled,
}

// NormalizeStatus validates a wire status string and canonicalizes the
// superseded ACCEPTED spelling to APPROVED.
func NormalizeStatus(status string) (BookingStatus, error) {
	if status == legacyStatusAccepted {
		return StatusApproved, nil
	}

	s := BookingStatus(status)
	for _, valid := range ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
