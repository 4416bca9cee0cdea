package handlers

import (
	"errors"
	"net/http"

	"github.com/linkup-team/linkup-gateway/internal/integrations/linkupapi"
)

// RespondUpstreamError maps a failed backend call onto the response. The
// backend's own errors pass through with their status and message verbatim;
// transport failures become gateway errors. Returns false if err was not an
// upstream failure, leaving the caller to classify it.
func RespondUpstreamError(w http.ResponseWriter, err error) bool {
	var httpErr *linkupapi.HTTPError
	switch {
	case errors.As(err, &httpErr):
		RespondError(w, httpErr.Status, httpErr.Message)
	case errors.Is(err, linkupapi.ErrTimeout):
		RespondError(w, http.StatusGatewayTimeout, "backend request timed out")
	case errors.Is(err, linkupapi.ErrNetwork), errors.Is(err, linkupapi.ErrParse):
		RespondError(w, http.StatusBadGateway, "backend unavailable")
	default:
		return false
	}
	return true
}
