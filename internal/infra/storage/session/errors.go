package session

import "errors"

var (
	// ErrSessionNotFound is returned when no session exists for the given id
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails
	ErrScanRow = errors.New("session.repository: failed to scan row")
)
