package deny_booking

import (
	"context"

	"github.com/m04kA/SMC-CallBookingService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований для отклонения заявки
type BookingService interface {
	Deny(ctx context.Context, bookingID int64, req *models.DenyBookingRequest) (*models.AdminActionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
