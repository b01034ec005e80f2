package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id int64, meetingLink string) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// ActivityRepository интерфейс репозитория журнала активности
type ActivityRepository interface {
	Create(ctx context.Context, record *domain.ActivityRecord) (*domain.ActivityRecord, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
