package bookings

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/integrations/linkupapi"
)

// APIClient interface for the LinkUp backend client
type APIClient interface {
	Get(ctx context.Context, path string, out any, opts ...linkupapi.RequestOption) error
	Post(ctx context.Context, path string, body any, out any, opts ...linkupapi.RequestOption) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
