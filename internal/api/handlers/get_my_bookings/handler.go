package get_my_bookings

import (
	"errors"
	"net/http"

	"github.com/linkup-team/linkup-gateway/internal/api/handlers"
	"github.com/linkup-team/linkup-gateway/internal/api/middleware"
	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/service/bookings"
)

const (
	msgInvalidStatus = "invalid status filter"
	msgInvalidRole   = "role filter must be proposed or received"
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

// Handle GET /api/v1/bookings?status=&role=
//
// The status filter is forwarded to the backend; the role filter
// (proposed|received) is applied locally since not every backend revision
// supports it server-side.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var statusFilter *domain.BookingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.NormalizeStatus(raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid status filter %q: user_id=%d", raw, session.UserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		statusFilter = &status
	}

	roleFilter := bookings.RoleFilter(r.URL.Query().Get("role"))
	if roleFilter != "" && roleFilter != bookings.RoleFilterProposed && roleFilter != bookings.RoleFilterReceived {
		h.logger.Warn("GET /bookings - Invalid role filter %q: user_id=%d", roleFilter, session.UserID)
		handlers.RespondBadRequest(w, msgInvalidRole)
		return
	}

	list, err := h.service.ListMine(r.Context(), session, statusFilter)
	if err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("GET /bookings - Backend call failed: user_id=%d: %v", session.UserID, err)
			return
		}
		if errors.Is(err, bookings.ErrInvalidPayload) {
			h.logger.Error("GET /bookings - Malformed backend payload: user_id=%d: %v", session.UserID, err)
			handlers.RespondError(w, http.StatusBadGateway, "backend returned malformed data")
			return
		}
		h.logger.Error("GET /bookings - Failed to list: user_id=%d: %v", session.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	if roleFilter != "" {
		list = bookings.FilterByRole(list, session.UserID, roleFilter)
	}

	h.logger.Info("GET /bookings - Returned %d bookings: user_id=%d", len(list), session.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list, session))
}
