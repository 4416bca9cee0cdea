package propose_booking

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/service/bookings/models"
)

type BookingService interface {
	Propose(ctx context.Context, session *domain.Session, req *models.ProposeBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
