package login

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
