package domain

import (
	"time"

	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

// ScheduleTemplate describes the fixed weekly slot grid.
// Slots are always computed from the template, never stored.
type ScheduleTemplate struct {
	DayStartTime        types.TimeString // first slot of the day
	DayEndTime          types.TimeString // exclusive upper bound
	SlotDurationMinutes int
	WorkDays            int // business days per week, Monday first
}

// DefaultScheduleTemplate returns the built-in weekly grid:
// Monday-Friday, 09:00-14:30 in 30-minute steps.
func DefaultScheduleTemplate() ScheduleTemplate {
	return ScheduleTemplate{
		DayStartTime:        types.TimeString(DefaultDayStartTime),
		DayEndTime:          types.TimeString(DefaultDayEndTime),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		WorkDays:            DefaultWorkDays,
	}
}

// Slot is a computed (date, time-of-day) pair eligible for booking
type Slot struct {
	Date time.Time
	Time types.TimeString
}

// SameAs returns true if the slot identifies the same (date, time) pair
func (s Slot) SameAs(date time.Time, t types.TimeString) bool {
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2 && s.Time == t
}
