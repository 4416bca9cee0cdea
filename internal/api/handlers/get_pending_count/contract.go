package get_pending_count

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/domain"
)

type BookingService interface {
	PendingCount(ctx context.Context, session *domain.Session) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
