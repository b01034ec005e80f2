package get_week_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
	}{
		{"monday", monday},
		{"wednesday", time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)},
		{"saturday", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, monday, weekStart(tt.date))
		})
	}
}

func TestGenerateWeekDays(t *testing.T) {
	// Референсная дата - среда; сетка всё равно начинается с понедельника
	wednesday := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	days := generateWeekDays(wednesday, domain.DefaultWorkDays)
	require.Len(t, days, 5)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), days[4])

	// Выходные дни в сетку не попадают
	for _, day := range days {
		assert.NotEqual(t, time.Saturday, day.Weekday())
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}
}

func TestGenerateWeekDays_Deterministic(t *testing.T) {
	sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	first := generateWeekDays(sunday, domain.DefaultWorkDays)
	second := generateWeekDays(sunday, domain.DefaultWorkDays)

	assert.Equal(t, first, second)
}

func TestGenerateTimeSlots_DefaultTemplate(t *testing.T) {
	slots, err := generateTimeSlots(domain.DefaultScheduleTemplate())
	require.NoError(t, err)

	// 09:00-15:00 с шагом 30 минут: 12 слотов, конец дня не включается
	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("14:30"), slots[len(slots)-1])

	// Времена строго возрастают
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]),
			"slot %s should be before %s", slots[i-1], slots[i])
	}
}

func TestGenerateTimeSlots_CustomDuration(t *testing.T) {
	template := domain.ScheduleTemplate{
		DayStartTime:        types.TimeString("10:00"),
		DayEndTime:          types.TimeString("12:00"),
		SlotDurationMinutes: 60,
		WorkDays:            5,
	}

	slots, err := generateTimeSlots(template)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, slots)
}

func TestGenerateTimeSlots_EmptyWhenStartAfterEnd(t *testing.T) {
	template := domain.ScheduleTemplate{
		DayStartTime:        types.TimeString("15:00"),
		DayEndTime:          types.TimeString("09:00"),
		SlotDurationMinutes: 30,
		WorkDays:            5,
	}

	slots, err := generateTimeSlots(template)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestBuildTakenIndex(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{BookingDate: monday, BookingTime: "09:00", Status: domain.StatusPending},
		{BookingDate: monday, BookingTime: "10:30", Status: domain.StatusConfirmed},
		// Отменённое бронирование слот не блокирует
		{BookingDate: tuesday, BookingTime: "09:00", Status: domain.StatusCancelled},
	}

	index := buildTakenIndex(bookings)

	assert.True(t, index["2025-03-10"][types.TimeString("09:00")])
	assert.True(t, index["2025-03-10"][types.TimeString("10:30")])
	assert.False(t, index["2025-03-10"][types.TimeString("09:30")])
	assert.False(t, index["2025-03-11"][types.TimeString("09:00")])
}
