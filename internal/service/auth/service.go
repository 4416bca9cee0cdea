package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/integrations/linkupapi"
	sessionRepo "github.com/linkup-team/linkup-gateway/internal/infra/storage/session"
)

// Service handles login, signup and logout against the backend auth API and
// owns the gateway-side session lifecycle. The backend issues the bearer
// token; the gateway wraps it in a persisted session and hands the caller a
// session id instead of the raw token.
type Service struct {
	api        APIClient
	sessions   SessionRepository
	sessionTTL time.Duration
	logger     Logger
}

// NewService creates a new auth service
func NewService(api APIClient, sessions SessionRepository, sessionTTL time.Duration, logger Logger) *Service {
	return &Service{
		api:        api,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login authenticates against the backend and opens a gateway session
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: attempting login for email=%s", email)

	var resp loginResponse
	err := s.api.Post(ctx, "/auth/login", &loginRequest{Email: email, Password: password}, &resp, linkupapi.SkipAuth())
	if err != nil {
		s.logger.Warn("Login: backend refused login for email=%s: %v", email, err)
		return nil, fmt.Errorf("login: %w", err)
	}

	session, err := s.openSession(ctx, resp.ID, resp.AccessToken, resp.Nickname, resp.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: user=%d logged in, session=%s", session.UserID, session.ID)
	return session, nil
}

// SignupMentor registers a mentor account and opens a session for it
func (s *Service) SignupMentor(ctx context.Context, req *MentorSignupRequest) (*domain.Session, error) {
	if err := validateSignupBase(req.Email, req.Password, req.Nickname); err != nil {
		return nil, err
	}

	payload := &mentorSignupPayload{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		Age:      req.Age,
		Role:     wireRoleMentor,
		Mentor:   req.Mentor,
	}

	return s.signup(ctx, payload, req.Email)
}

// SignupMentee registers a mentee account and opens a session for it
func (s *Service) SignupMentee(ctx context.Context, req *MenteeSignupRequest) (*domain.Session, error) {
	if err := validateSignupBase(req.Email, req.Password, req.Nickname); err != nil {
		return nil, err
	}

	payload := &menteeSignupPayload{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		Age:      req.Age,
		Role:     wireRoleStudent,
		Student:  req.Student,
	}

	return s.signup(ctx, payload, req.Email)
}

func (s *Service) signup(ctx context.Context, payload any, email string) (*domain.Session, error) {
	s.logger.Info("Signup: registering email=%s", email)

	var resp signupResponse
	if err := s.api.Post(ctx, "/auth/signup", payload, &resp, linkupapi.SkipAuth()); err != nil {
		s.logger.Warn("Signup: backend refused signup for email=%s: %v", email, err)
		return nil, fmt.Errorf("signup: %w", err)
	}

	session, err := s.openSession(ctx, resp.ID, resp.AccessToken, resp.Nickname, resp.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Signup: user=%d registered, session=%s", session.UserID, session.ID)
	return session, nil
}

// Logout destroys the gateway session. The backend token is simply dropped;
// the backend has no invalidation endpoint.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	err := s.sessions.Delete(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Logout: session=%s not found", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("Logout: repository error for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session=%s destroyed", sessionID)
	return nil
}

// GetSession resolves a session id to the stored session, refusing expired ones
func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetSession: repository error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: GetSession - repository error: %v", ErrInternal, err)
	}

	if session.Expired(time.Now()) {
		s.logger.Warn("GetSession: session=%s expired", sessionID)
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *Service) openSession(ctx context.Context, userID int64, token, nickname, wireRole string) (*domain.Session, error) {
	role := domain.RoleMentee
	if wireRole == wireRoleMentor {
		role = domain.RoleMentor
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Nickname:  nickname,
		Role:      role,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("openSession: failed to persist session for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to persist session: %v", ErrInternal, err)
	}

	return session, nil
}

func validateSignupBase(email, password, nickname string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if nickname == "" {
		return fmt.Errorf("%w: nickname is required", ErrInvalidInput)
	}
	return nil
}
