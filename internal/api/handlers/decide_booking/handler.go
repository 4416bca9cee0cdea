package decide_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/linkup-team/linkup-gateway/internal/api/handlers"
	"github.com/linkup-team/linkup-gateway/internal/api/middleware"
	"github.com/linkup-team/linkup-gateway/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgAlreadyProcessing  = "booking is already being processed"
	msgAlreadyDecided     = "booking has already been decided"
	msgOwnProposal        = "you cannot decide your own proposal"
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

// Handle POST /api/v1/bookings/{bookingId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/decision - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req DecideBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Approve {
		err = h.service.Approve(r.Context(), session, bookingID)
	} else {
		err = h.service.Reject(r.Context(), session, bookingID, req.Reason)
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAlreadyInFlight):
			h.logger.Warn("POST /bookings/{id}/decision - Already processing: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyProcessing)

		case errors.Is(err, bookings.ErrAlreadyDecided):
			h.logger.Warn("POST /bookings/{id}/decision - Already decided: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyDecided)

		case errors.Is(err, bookings.ErrOwnProposal):
			h.logger.Warn("POST /bookings/{id}/decision - Proposer decision refused: booking_id=%d, user_id=%d",
				bookingID, session.UserID)
			handlers.RespondForbidden(w, msgOwnProposal)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("POST /bookings/{id}/decision - Backend refused: booking_id=%d: %v", bookingID, err)
				return
			}
			h.logger.Error("POST /bookings/{id}/decision - Failed: booking_id=%d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/decision - Decision applied: booking_id=%d, approve=%t, user_id=%d",
		bookingID, req.Approve, session.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
