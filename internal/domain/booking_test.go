package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus_Canonical(t *testing.T) {
	for _, status := range ValidStatuses {
		got, err := NormalizeStatus(string(status))
		assert.NoError(t, err)
		assert.Equal(t, status, got)
	}
}

func TestNormalizeStatus_LegacyAccepted(t *testing.T) {
	got, err := NormalizeStatus("ACCEPTED")

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, got)
}

func TestNormalizeStatus_Unknown(t *testing.T) {
	for _, raw := range []string{"", "pending", "DONE", "Approved"} {
		_, err := NormalizeStatus(raw)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", raw)
	}
}

func TestBooking_TerminalStatusesNeverDecidableOrCancellable(t *testing.T) {
	for _, status := range TerminalStatuses {
		b := &Booking{ID: 1, Status: status}

		assert.True(t, b.IsTerminal(), "status %s", status)
		assert.False(t, b.CanBeDecided(), "status %s", status)
		assert.False(t, b.CanBeCancelled(), "status %s", status)
	}
}

func TestBooking_PendingIsOpen(t *testing.T) {
	b := &Booking{ID: 1, Status: StatusPending}

	assert.False(t, b.IsTerminal())
	assert.True(t, b.CanBeDecided())
	assert.True(t, b.CanBeCancelled())
}

func TestBooking_IsProposer(t *testing.T) {
	b := &Booking{
		Proposer: Participant{ID: 7, Nickname: "mina"},
	}

	assert.True(t, b.IsProposer(7))
	assert.False(t, b.IsProposer(8))
}

func TestBooking_Counterpart(t *testing.T) {
	b := &Booking{
		Student: Participant{ID: 1, Nickname: "student"},
		Mentor:  Participant{ID: 2, Nickname: "mentor"},
	}

	assert.Equal(t, b.Student, b.Counterpart(RoleMentor))
	assert.Equal(t, b.Mentor, b.Counterpart(RoleMentee))
}
