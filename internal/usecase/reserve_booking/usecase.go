package reserve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CallBookingService/internal/infra/storage/booking"
)

// UseCase use case резервирования слота (координатор резервирования)
//
// Гарантия: не более одного успешного резервирования на слот даже при
// конкурентных запросах. Проверка доступности и вставка выполняются в
// одной сериализуемой транзакции (выборка дня с FOR UPDATE), а частичный
// уникальный индекс хранилища служит страховкой: проигравший гонку INSERT
// получает ErrSlotTaken, частично созданных бронирований не остается
type UseCase struct {
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	txManager    TransactionManager
	template     domain.ScheduleTemplate
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	txManager TransactionManager,
	template domain.ScheduleTemplate,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		template:     template,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case резервирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveBooking: date=%s, time=%s, client=%s",
		req.Date.Format(domain.DateFormat), req.Time, req.ClientName)

	// 1. Валидация контактных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Слот должен принадлежать сгенерированной сетке и быть в будущем
	if err := validateSlotInTemplate(req.Date, req.Time, uc.template); err != nil {
		uc.logger.Warn("ReserveBooking: slot validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateSlotNotInPast(req.Date, req.Time, now); err != nil {
		uc.logger.Warn("ReserveBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 3. Проверка доступности и создание в одной сериализуемой транзакции
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Выбираем активные бронирования дня с блокировкой (FOR UPDATE)
		dayBookings, err := uc.bookingRepo.GetByDateRange(txCtx, req.Date, req.Date, false)
		if err != nil {
			uc.logger.Error("ReserveBooking: failed to get day bookings: %v", err)
			return fmt.Errorf("%w: failed to get day bookings: %v", ErrStoreUnavailable, err)
		}

		// 3.2. Ранняя проверка занятости по выборке дня
		if isSlotTakenLocally(req.Time, dayBookings) {
			uc.logger.Warn("ReserveBooking: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), req.Time)
			return ErrSlotTaken
		}

		// 3.3. Создаем бронирование в статусе pending
		// Уникальный индекс хранилища - финальный арбитр гонки
		booking := &domain.Booking{
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			BookingDate: req.Date,
			BookingTime: req.Time,
			Status:      domain.StatusPending,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("ReserveBooking: lost slot race for %s %s",
					req.Date.Format(domain.DateFormat), req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("ReserveBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveBooking: successfully created booking id=%d", result.ID)

	// 4. Best-effort запись в журнал активности: ошибка логируется,
	// но созданное бронирование не откатывается
	uc.recordActivity(ctx, result)

	return &Response{
		ID:          result.ID,
		ClientName:  result.ClientName,
		ClientEmail: result.ClientEmail,
		BookingDate: result.BookingDate,
		BookingTime: result.BookingTime,
		Status:      string(result.Status),
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// recordActivity записывает событие создания бронирования в журнал
func (uc *UseCase) recordActivity(ctx context.Context, booking *domain.Booking) {
	record := &domain.ActivityRecord{
		BookingID: booking.ID,
		Action:    domain.ActionBookingCreated,
		Details: fmt.Sprintf("pending booking for %s at %s %s",
			booking.ClientName, booking.BookingDate.Format(domain.DateFormat), booking.BookingTime),
	}

	if _, err := uc.activityRepo.Create(ctx, record); err != nil {
		uc.logger.Error("ReserveBooking: failed to record activity for booking id=%d: %v",
			booking.ID, err)
	}
}
