package reserve_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

// emailPattern базовая проверка формы email: непустая локальная часть,
// @, домен с точкой. Полная валидация по RFC сознательно не делается
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest валидирует контактные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long (max %d)", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if strings.TrimSpace(req.ClientEmail) == "" {
		return fmt.Errorf("%w: clientEmail is required", ErrInvalidInput)
	}

	if !emailPattern.MatchString(req.ClientEmail) {
		return fmt.Errorf("%w: clientEmail is malformed", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlotInTemplate проверяет, что пара (дата, время) принадлежит
// сгенерированной сетке: рабочий день недели и время на шаге шаблона
func validateSlotInTemplate(date time.Time, slotTime types.TimeString, template domain.ScheduleTemplate) error {
	// День должен быть рабочим (понедельник = первый рабочий день)
	dayIndex := int(date.Weekday()) - int(time.Monday)
	if dayIndex < 0 {
		dayIndex += 7
	}
	if dayIndex >= template.WorkDays {
		return fmt.Errorf("%w: %s is not a business day", ErrInvalidSlot, date.Format(domain.DateFormat))
	}

	// Время должно совпадать с одним из слотов шаблона
	current := template.DayStartTime
	for current.IsBefore(template.DayEndTime) {
		if current == slotTime {
			return nil
		}

		next, err := current.AddMinutes(template.SlotDurationMinutes)
		if err != nil || !next.IsAfter(current) {
			break
		}
		current = next
	}

	return fmt.Errorf("%w: %s is not on the slot grid", ErrInvalidSlot, slotTime)
}

// validateSlotNotInPast проверяет, что момент слота ещё не наступил
// Резервирование прошедших слотов не имеет смысла
func validateSlotNotInPast(date time.Time, slotTime types.TimeString, now time.Time) error {
	startsAt, err := slotTime.OnDate(date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	if startsAt.Before(now) {
		return fmt.Errorf("%w: slot is in the past", ErrInvalidSlot)
	}

	return nil
}

// isSlotTakenLocally проверяет занятость слота по выборке бронирований дня
func isSlotTakenLocally(slotTime types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking.IsActive() && booking.BookingTime == slotTime {
			return true
		}
	}
	return false
}
