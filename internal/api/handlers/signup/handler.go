package signup

import (
	"errors"
	"net/http"

	"github.com/linkup-team/linkup-gateway/internal/api/handlers"
	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRole        = "role must be MENTOR or STUDENT"
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

// Handle POST /api/v1/auth/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var (
		session *domain.Session
		err     error
	)
	switch req.Role {
	case roleMentor:
		session, err = h.service.SignupMentor(r.Context(), req.ToMentorRequest())
	case roleStudent:
		session, err = h.service.SignupMentee(r.Context(), req.ToMenteeRequest())
	default:
		h.logger.Warn("POST /auth/signup - Invalid role: %q", req.Role)
		handlers.RespondBadRequest(w, msgInvalidRole)
		return
	}

	if err != nil {
		if errors.Is(err, auth.ErrInvalidInput) {
			h.logger.Warn("POST /auth/signup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("POST /auth/signup - Backend refused signup: %v", err)
			return
		}
		h.logger.Error("POST /auth/signup - Failed to sign up: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/signup - User registered: user_id=%d, role=%s", session.UserID, session.Role)
	handlers.RespondJSON(w, http.StatusCreated, FromSession(session))
}
