package domain

import (
	"time"

	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

// BookingStatus represents the stored status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// DisplayStatus is the status shown to callers. It extends the stored
// statuses with "completed", which is derived from the booking moment
// and never persisted.
type DisplayStatus string

const (
	DisplayPending   DisplayStatus = "pending"
	DisplayConfirmed DisplayStatus = "confirmed"
	DisplayCancelled DisplayStatus = "cancelled"
	DisplayCompleted DisplayStatus = "completed"
)

// Booking represents a client's claim on a call slot
type Booking struct {
	ID          int64
	ClientName  string
	ClientEmail string
	BookingDate time.Time        // calendar date, no time component
	BookingTime types.TimeString // slot label, e.g. "09:00"
	Status      BookingStatus

	Notes              *string
	MeetingLink        *string // set on transition to confirmed
	CancellationReason *string // set on transition to cancelled
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeConfirmed returns true if approve may be applied.
// A confirmed booking may be approved again: replay with the same link is
// a no-op, a different link overwrites the stored one.
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if deny may be applied.
// Confirmed bookings stay cancellable even after their date has passed,
// since "completed" is only a derived view.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// StartsAt returns the exact moment the booked call starts
func (b *Booking) StartsAt() (time.Time, error) {
	return b.BookingTime.OnDate(b.BookingDate)
}

// DeriveDisplayStatus computes the status shown to callers:
// "completed" iff the booking is confirmed and its moment is strictly
// before now, otherwise the stored status as-is.
func (b *Booking) DeriveDisplayStatus(now time.Time) DisplayStatus {
	if b.Status == StatusConfirmed {
		startsAt, err := b.StartsAt()
		if err == nil && startsAt.Before(now) {
			return DisplayCompleted
		}
	}
	return DisplayStatus(b.Status)
}

// BookingsFilter is the filter for listing bookings
type BookingsFilter struct {
	StartDate       *time.Time     // period start, nil = unbounded
	EndDate         *time.Time     // period end, nil = unbounded
	Status          *BookingStatus // nil = any
	IncludeInactive bool           // include cancelled bookings
}
