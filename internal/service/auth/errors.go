package auth

import "errors"

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionNotFound is returned when no session exists for the given id
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("auth service: internal error")
)
