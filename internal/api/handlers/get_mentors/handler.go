package get_mentors

import (
	"net/http"

	"github.com/linkup-team/linkup-gateway/internal/api/handlers"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/mentors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mentors, err := h.service.Mentors(r.Context())
	if err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("GET /mentors - Backend call failed: %v", err)
			return
		}
		h.logger.Error("GET /mentors - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, mentors)
}
