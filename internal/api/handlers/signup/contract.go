package signup

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/service/auth"
)

type AuthService interface {
	SignupMentor(ctx context.Context, req *auth.MentorSignupRequest) (*domain.Session, error)
	SignupMentee(ctx context.Context, req *auth.MenteeSignupRequest) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
