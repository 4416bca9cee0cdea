package decide_booking

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/domain"
)

type BookingService interface {
	Approve(ctx context.Context, session *domain.Session, bookingID int64) error
	Reject(ctx context.Context, session *domain.Session, bookingID int64, reason *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
