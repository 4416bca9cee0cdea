package get_my_bookings

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/domain"
)

type BookingService interface {
	ListMine(ctx context.Context, session *domain.Session, status *domain.BookingStatus) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
