package logout

import (
	"errors"
	"net/http"

	"github.com/linkup-team/linkup-gateway/internal/api/handlers"
	"github.com/linkup-team/linkup-gateway/internal/api/middleware"
	"github.com/linkup-team/linkup-gateway/internal/service/auth"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), session.ID); err != nil {
		// A session deleted under our feet is still a successful logout
		if !errors.Is(err, auth.ErrSessionNotFound) {
			h.logger.Error("POST /auth/logout - Failed to logout session=%s: %v", session.ID, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("POST /auth/logout - Session destroyed: user_id=%d", session.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
