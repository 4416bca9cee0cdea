package linkupapi

import "errors"

var (
	// ErrTimeout is returned when the request deadline fires before the
	// backend settles the call
	ErrTimeout = errors.New("linkupapi: request timed out")

	// ErrNetwork is returned on connection or DNS level failures
	ErrNetwork = errors.New("linkupapi: network error")

	// ErrParse is returned when a 2xx response body is not valid JSON
	ErrParse = errors.New("linkupapi: invalid response body")

	// ErrInternal is returned when the client itself fails to build a request
	ErrInternal = errors.New("linkupapi: internal error")
)

// HTTPError is returned on a non-2xx response. Message carries the text
// extracted from the response body (JSON "message" field, whole JSON body,
// raw text, or status line, in that order of preference) and is surfaced
// to users verbatim.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}
