package login

import (
	"errors"
	"net/http"

	"github.com/linkup-team/linkup-gateway/internal/api/handlers"
	"github.com/linkup-team/linkup-gateway/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidInput) {
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("POST /auth/login - Backend refused login: %v", err)
			return
		}
		h.logger.Error("POST /auth/login - Failed to login: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%d", session.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}
