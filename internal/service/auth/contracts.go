package auth

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/integrations/linkupapi"
)

// APIClient interface for the LinkUp backend client
type APIClient interface {
	Post(ctx context.Context, path string, body any, out any, opts ...linkupapi.RequestOption) error
}

// SessionRepository interface for the session store
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
