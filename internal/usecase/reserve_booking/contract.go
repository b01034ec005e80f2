package reserve_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDateRange(ctx context.Context, startDate, endDate time.Time, includeInactive bool) ([]*domain.Booking, error)
}

// ActivityRepository интерфейс репозитория журнала активности
type ActivityRepository interface {
	Create(ctx context.Context, record *domain.ActivityRecord) (*domain.ActivityRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
