package propose_booking

import (
	"errors"
	"net/http"

	"github.com/linkup-team/linkup-gateway/internal/api/handlers"
	"github.com/linkup-team/linkup-gateway/internal/api/middleware"
	"github.com/linkup-team/linkup-gateway/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingRequested   = "booking requested"
)

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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var req ProposeBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Propose(r.Context(), session, req.ToServiceRequest()); err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d: %v", session.UserID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("POST /bookings - Backend refused proposal: user_id=%d: %v", session.UserID, err)
			return
		}
		h.logger.Error("POST /bookings - Failed to propose: user_id=%d: %v", session.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings - Booking proposed: user_id=%d, target=%d", session.UserID, req.TargetUserID)
	handlers.RespondJSON(w, http.StatusAccepted, ProposeBookingResponse{Message: msgBookingRequested})
}
