package domain

import "time"

// ActivityAction identifies the lifecycle event an activity record describes
type ActivityAction string

const (
	ActionBookingCreated   ActivityAction = "booking_created"
	ActionBookingConfirmed ActivityAction = "booking_confirmed"
	ActionBookingCancelled ActivityAction = "booking_cancelled"
)

// ActivityRecord is an audit entry for a booking lifecycle event.
// Records are best-effort: a failed write never rolls back the booking
// operation that produced it.
type ActivityRecord struct {
	ID        int64
	BookingID int64
	Action    ActivityAction
	Details   string
	CreatedAt time.Time
}
