package domain

// Default weekly schedule template values
const (
	DefaultDayStartTime        = "09:00"
	DefaultDayEndTime          = "15:00" // exclusive, last slot starts at 14:30
	DefaultSlotDurationMinutes = 30
	DefaultWorkDays            = 5 // Monday through Friday
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinWorkDays            = 1
	MaxWorkDays            = 7

	MaxClientNameLength         = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxMeetingLinkLength        = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the statuses that block a slot.
// Cancelled bookings free their slot for a new reservation.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
