package get_week_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
)

// UseCase use case для получения недельной сетки слотов с занятостью
type UseCase struct {
	bookingRepo  BookingRepository
	template     domain.ScheduleTemplate
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	template domain.ScheduleTemplate,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		template:     template,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения недельной сетки
//
// Занятость определяется одним запросом к хранилищу за всю неделю
// с локальной фильтрацией - без повторных обращений на каждый слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// Если референсная дата не указана - берем текущую неделю
	referenceDate := req.Date
	if referenceDate.IsZero() {
		referenceDate = uc.timeProvider.Now()
	}

	uc.logger.Info("GetWeekSlots: reference date=%s", referenceDate.Format(domain.DateFormat))

	// 1. Генерируем рабочие дни недели и шаблон времён (чистые функции)
	days := generateWeekDays(referenceDate, uc.template.WorkDays)

	times, err := generateTimeSlots(uc.template)
	if err != nil {
		uc.logger.Error("GetWeekSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInvalidInput, err)
	}

	// 2. Получаем активные бронирования за всю неделю одним запросом
	bookings, err := uc.bookingRepo.GetByDateRange(ctx, days[0], days[len(days)-1], false)
	if err != nil {
		uc.logger.Error("GetWeekSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrStoreUnavailable, err)
	}

	// 3. Строим индекс занятости и размечаем сетку
	takenIndex := buildTakenIndex(bookings)

	respDays := make([]Day, len(days))
	for i, day := range days {
		takenTimes := takenIndex[day.Format(domain.DateFormat)]

		slots := make([]Slot, len(times))
		for j, t := range times {
			slots[j] = Slot{
				Time:  t,
				Taken: takenTimes[t],
			}
		}

		respDays[i] = Day{
			Date:  day,
			Slots: slots,
		}
	}

	uc.logger.Info("GetWeekSlots: week of %s, %d days, %d slots per day, %d active bookings",
		days[0].Format(domain.DateFormat), len(days), len(times), len(bookings))

	return &Response{
		WeekStart: days[0],
		Times:     times,
		Days:      respDays,
	}, nil
}
