package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkup-team/linkup-gateway/internal/domain"
)

func booking(id int64, status domain.BookingStatus, proposerID int64) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		Status:   status,
		Proposer: domain.Participant{ID: proposerID},
	}
}

func TestFilterByStatus(t *testing.T) {
	list := []*domain.Booking{
		booking(1, domain.StatusPending, 1),
		booking(2, domain.StatusApproved, 1),
		booking(3, domain.StatusPending, 2),
	}

	pending := FilterByStatus(list, domain.StatusPending)

	assert.Len(t, pending, 2)
	assert.Equal(t, int64(1), pending[0].ID)
	assert.Equal(t, int64(3), pending[1].ID)

	assert.Empty(t, FilterByStatus(list, domain.StatusCancelled))
}

func TestFilterByRole(t *testing.T) {
	const me = int64(1)
	list := []*domain.Booking{
		booking(1, domain.StatusPending, me),
		booking(2, domain.StatusPending, 2),
		booking(3, domain.StatusApproved, me),
	}

	proposed := FilterByRole(list, me, RoleFilterProposed)
	received := FilterByRole(list, me, RoleFilterReceived)

	assert.Len(t, proposed, 2)
	assert.Len(t, received, 1)
	assert.Equal(t, int64(2), received[0].ID)

	// every booking lands in exactly one bucket
	assert.Equal(t, len(list), len(proposed)+len(received))
}

func TestPendingCount(t *testing.T) {
	const me = int64(1)
	list := []*domain.Booking{
		booking(1, domain.StatusPending, 2),  // awaiting my decision
		booking(2, domain.StatusPending, me), // my own proposal
		booking(3, domain.StatusApproved, 2), // settled
		booking(4, domain.StatusPending, 3),  // awaiting my decision
	}

	assert.Equal(t, 2, PendingCount(list, me))
	assert.Zero(t, PendingCount(nil, me))
}
