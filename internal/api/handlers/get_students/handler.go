package get_students

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

// Handle GET /api/v1/students
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.Students(r.Context())
	if err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("GET /students - Backend call failed: %v", err)
			return
		}
		h.logger.Error("GET /students - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, students)
}
