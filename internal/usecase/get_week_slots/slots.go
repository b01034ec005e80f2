package get_week_slots

import (
	"time"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

// weekStart возвращает понедельник недели, содержащей date
func weekStart(date time.Time) time.Time {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	// time.Weekday: воскресенье = 0, понедельник = 1
	offset := int(dateOnly.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	return dateOnly.AddDate(0, 0, -offset)
}

// generateWeekDays генерирует рабочие дни недели начиная с понедельника
// Детерминированная чистая функция: повторный вызов для соседних недель
// (навигация вперед/назад) не имеет побочных эффектов
func generateWeekDays(referenceDate time.Time, workDays int) []time.Time {
	monday := weekStart(referenceDate)

	days := make([]time.Time, 0, workDays)
	for i := 0; i < workDays; i++ {
		days = append(days, monday.AddDate(0, 0, i))
	}

	return days
}

// generateTimeSlots генерирует шаблон времён слотов одного дня
// От начала рабочего дня с фиксированным шагом, пока начало слота
// строго раньше конца рабочего дня (конец не включается)
func generateTimeSlots(template domain.ScheduleTemplate) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := template.DayStartTime

	for current.IsBefore(template.DayEndTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(template.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}

		// AddMinutes заворачивается через полночь; защищаемся от зацикливания
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}

// buildTakenIndex строит индекс занятости по активным бронированиям:
// ключ - дата в формате YYYY-MM-DD, значение - множество занятых времён
// Отменённые бронирования слот не блокируют и в выборку не попадают
func buildTakenIndex(bookings []*domain.Booking) map[string]map[types.TimeString]bool {
	index := make(map[string]map[types.TimeString]bool)

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		key := booking.BookingDate.Format(domain.DateFormat)
		if index[key] == nil {
			index[key] = make(map[types.TimeString]bool)
		}
		index[key][booking.BookingTime] = true
	}

	return index
}
