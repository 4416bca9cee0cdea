package bookings

import "errors"

var (
	// ErrAlreadyInFlight is returned when a mutation is requested for a
	// booking that already has one pending. The duplicate is refused before
	// any network call is made.
	ErrAlreadyInFlight = errors.New("booking mutation already in flight")

	// ErrAlreadyDecided is returned when a decision is requested on a
	// booking that has already reached a terminal status
	ErrAlreadyDecided = errors.New("booking already decided")

	// ErrCannotCancel is returned when a cancel is requested on a booking
	// that has already reached a terminal status
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrOwnProposal is returned when the proposer tries to approve or
	// reject their own booking
	ErrOwnProposal = errors.New("proposer cannot decide own booking")

	// ErrNotProposer is returned when someone other than the proposer tries
	// to cancel a booking
	ErrNotProposer = errors.New("only the proposer can cancel a booking")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPayload is returned when a backend response cannot be
	// mapped onto the domain model
	ErrInvalidPayload = errors.New("invalid booking payload")
)
