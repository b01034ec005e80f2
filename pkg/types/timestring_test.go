package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"", "9am", "25:00", "09:60", "09:30:00"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("14:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	// Переход через полночь заворачивается
	ts, err = TimeString("23:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), ts)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	moment, err := TimeString("09:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), moment)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("14:30")))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
