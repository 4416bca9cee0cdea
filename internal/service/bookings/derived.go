package bookings

import "github.com/linkup-team/linkup-gateway/internal/domain"

// Pure computations over a loaded booking list. No network calls; the UI
// filters locally because not every backend revision filters by role
// server-side.

// RoleFilter selects bookings by the viewer's relation to them
type RoleFilter string

const (
	// RoleFilterProposed keeps bookings the viewer initiated
	RoleFilterProposed RoleFilter = "proposed"
	// RoleFilterReceived keeps bookings proposed to the viewer
	RoleFilterReceived RoleFilter = "received"
)

// FilterByStatus keeps bookings with the given status
func FilterByStatus(list []*domain.Booking, status domain.BookingStatus) []*domain.Booking {
	filtered := make([]*domain.Booking, 0, len(list))
	for _, b := range list {
		if b.Status == status {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// FilterByRole keeps bookings by the viewer's relation: proposed by them or
// received from the other side
func FilterByRole(list []*domain.Booking, userID int64, role RoleFilter) []*domain.Booking {
	filtered := make([]*domain.Booking, 0, len(list))
	for _, b := range list {
		proposed := b.IsProposer(userID)
		if (role == RoleFilterProposed && proposed) || (role == RoleFilterReceived && !proposed) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// PendingCount counts bookings awaiting the viewer's decision: PENDING
// bookings where the viewer is not the proposer
func PendingCount(list []*domain.Booking, userID int64) int {
	count := 0
	for _, b := range list {
		if b.Status == domain.StatusPending && !b.IsProposer(userID) {
			count++
		}
	}
	return count
}
