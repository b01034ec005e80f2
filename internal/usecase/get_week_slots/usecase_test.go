package get_week_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeBookingRepo) GetByDateRange(_ context.Context, startDate, endDate time.Time, _ bool) ([]*domain.Booking, error) {
	f.gotStart = startDate
	f.gotEnd = endDate
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, domain.DefaultScheduleTemplate(), noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_WeekGrid(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{BookingDate: monday, BookingTime: "09:00", Status: domain.StatusPending},
			{BookingDate: monday.AddDate(0, 0, 2), BookingTime: "14:30", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, monday)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday.AddDate(0, 0, 2)})
	require.NoError(t, err)

	assert.Equal(t, monday, resp.WeekStart)
	require.Len(t, resp.Days, 5)
	require.Len(t, resp.Times, 12)

	// Занятость за всю неделю получена одним запросом
	assert.Equal(t, monday, repo.gotStart)
	assert.Equal(t, monday.AddDate(0, 0, 4), repo.gotEnd)

	// Понедельник 09:00 занят, остальные слоты понедельника свободны
	assert.True(t, resp.Days[0].Slots[0].Taken)
	for _, slot := range resp.Days[0].Slots[1:] {
		assert.False(t, slot.Taken, "slot %s should be free", slot.Time)
	}

	// Среда 14:30 (последний слот дня) занята
	wednesday := resp.Days[2]
	assert.True(t, wednesday.Slots[len(wednesday.Slots)-1].Taken)
}

func TestExecute_DefaultsToCurrentWeek(t *testing.T) {
	// Сегодня - пятница; без референсной даты возвращается текущая неделя
	friday := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, friday)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), resp.WeekStart)
}

func TestExecute_SlotTimesMatchTemplate(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:00"), resp.Times[0])
	assert.Equal(t, types.TimeString("14:30"), resp.Times[len(resp.Times)-1])

	// Каждый день несёт тот же шаблон времён
	for _, day := range resp.Days {
		require.Len(t, day.Slots, len(resp.Times))
		for i, slot := range day.Slots {
			assert.Equal(t, resp.Times[i], slot.Time)
		}
	}
}

func TestExecute_StoreUnavailable(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
