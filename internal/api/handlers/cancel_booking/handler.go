package cancel_booking

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
	msgInvalidBookingID  = "invalid booking id"
	msgAlreadyProcessing = "booking is already being processed"
	msgCannotCancel      = "booking can no longer be cancelled"
	msgNotProposer       = "only the proposer can cancel a booking"
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

// Handle POST /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Cancel(r.Context(), session, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrAlreadyInFlight):
			h.logger.Warn("POST /bookings/{id}/cancel - Already processing: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyProcessing)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("POST /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrNotProposer):
			h.logger.Warn("POST /bookings/{id}/cancel - Non-proposer cancel refused: booking_id=%d, user_id=%d",
				bookingID, session.UserID)
			handlers.RespondForbidden(w, msgNotProposer)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("POST /bookings/{id}/cancel - Backend refused: booking_id=%d: %v", bookingID, err)
				return
			}
			h.logger.Error("POST /bookings/{id}/cancel - Failed: booking_id=%d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d",
		bookingID, session.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
