package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		active bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		assert.Equal(t, tt.active, b.IsActive(), "status=%s", tt.status)
	}
}

func TestBooking_Transitions(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	confirmed := &Booking{Status: StatusConfirmed}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, pending.CanBeConfirmed())
	assert.True(t, pending.CanBeCancelled())

	// confirmed can be re-approved (idempotent replay) and still denied
	assert.True(t, confirmed.CanBeConfirmed())
	assert.True(t, confirmed.CanBeCancelled())

	// cancelled is terminal
	assert.False(t, cancelled.CanBeConfirmed())
	assert.False(t, cancelled.CanBeCancelled())
}

func TestBooking_DeriveDisplayStatus(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	slot := types.TimeString("09:00")
	startsAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	confirmed := &Booking{Status: StatusConfirmed, BookingDate: date, BookingTime: slot}

	// strictly before the slot moment: still confirmed
	assert.Equal(t, DisplayConfirmed, confirmed.DeriveDisplayStatus(startsAt.Add(-time.Minute)))

	// exactly at the slot moment: not yet completed (strict comparison)
	assert.Equal(t, DisplayConfirmed, confirmed.DeriveDisplayStatus(startsAt))

	// after the slot moment: completed
	assert.Equal(t, DisplayCompleted, confirmed.DeriveDisplayStatus(startsAt.Add(time.Second)))

	// pending and cancelled never become completed
	pending := &Booking{Status: StatusPending, BookingDate: date, BookingTime: slot}
	assert.Equal(t, DisplayPending, pending.DeriveDisplayStatus(startsAt.Add(time.Hour)))

	cancelled := &Booking{Status: StatusCancelled, BookingDate: date, BookingTime: slot}
	assert.Equal(t, DisplayCancelled, cancelled.DeriveDisplayStatus(startsAt.Add(time.Hour)))
}

func TestBooking_StartsAt(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		BookingTime: types.TimeString("14:30"),
	}

	startsAt, err := b.StartsAt()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC), startsAt)
}
