package get_pending_count

import (
	"net/http"

	"github.com/linkup-team/linkup-gateway/internal/api/handlers"
	"github.com/linkup-team/linkup-gateway/internal/api/middleware"
)

// PendingCountResponse HTTP response model for the notification badge
type PendingCountResponse struct {
	Count int `json:"count"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/pending-count
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	count, err := h.service.PendingCount(r.Context(), session)
	if err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("GET /bookings/pending-count - Backend call failed: user_id=%d: %v", session.UserID, err)
			return
		}
		h.logger.Error("GET /bookings/pending-count - Failed: user_id=%d: %v", session.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PendingCountResponse{Count: count})
}
