package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CallBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CallBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CallBookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	store map[int64]*domain.Booking

	confirmCalls int
	cancelCalls  int
	listFilter   domain.BookingsFilter
	err          error
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	store := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		store[b.ID] = b
	}
	return &fakeBookingRepo{store: store}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.store[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.listFilter = filter

	var result []*domain.Booking
	for _, b := range f.store {
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Confirm(_ context.Context, id int64, meetingLink string) error {
	if f.err != nil {
		return f.err
	}
	f.confirmCalls++

	b, ok := f.store[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusConfirmed
	b.MeetingLink = &meetingLink
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.cancelCalls++

	b, ok := f.store[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	b.UpdatedAt = now
	return nil
}

type fakeActivityRepo struct {
	records []*domain.ActivityRecord
	err     error
}

func (f *fakeActivityRepo) Create(_ context.Context, record *domain.ActivityRecord) (*domain.ActivityRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.records = append(f.records, record)
	return record, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

var testNow = time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeBookingRepo, activity *fakeActivityRepo) *Service {
	svc := NewService(repo, activity, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ClientName:  "Jane Doe",
		ClientEmail: "jane@example.com",
		BookingDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		BookingTime: "09:00",
		Status:      domain.StatusPending,
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	svc := newTestService(repo, &fakeActivityRepo{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "pending", resp.DisplayStatus)
	assert.Equal(t, "2025-03-10", resp.BookingDate)
	assert.Equal(t, "09:00", resp.BookingTime)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeActivityRepo{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_CompletedIsDerived(t *testing.T) {
	// Подтверждённый звонок в прошлом отображается как completed,
	// хранимый статус при этом остаётся confirmed
	past := pendingBooking(1)
	past.Status = domain.StatusConfirmed
	past.BookingDate = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	past.MeetingLink = ptr.Ptr("https://meet.example.com/abc")

	svc := newTestService(newFakeBookingRepo(past), &fakeActivityRepo{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "completed", resp.DisplayStatus)
}

func TestList_FiltersByStatus(t *testing.T) {
	confirmed := pendingBooking(2)
	confirmed.Status = domain.StatusConfirmed

	repo := newFakeBookingRepo(pendingBooking(1), confirmed)
	svc := newTestService(repo, &fakeActivityRepo{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeActivityRepo{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_ExcludesCancelledByDefault(t *testing.T) {
	cancelled := pendingBooking(2)
	cancelled.Status = domain.StatusCancelled

	repo := newFakeBookingRepo(pendingBooking(1), cancelled)
	svc := newTestService(repo, &fakeActivityRepo{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	resp, err = svc.List(context.Background(), &models.ListBookingsRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestApprove(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	activity := &fakeActivityRepo{}
	svc := newTestService(repo, activity)

	resp, err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		MeetingLink: "https://meet.example.com/abc",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Booking.Status)
	require.NotNil(t, resp.Booking.MeetingLink)
	assert.Equal(t, "https://meet.example.com/abc", *resp.Booking.MeetingLink)

	// Текст уведомления готов к ручной отправке
	assert.Contains(t, resp.NotificationText, "Jane Doe")
	assert.Contains(t, resp.NotificationText, "подтверждён")
	assert.Contains(t, resp.NotificationText, "https://meet.example.com/abc")

	require.Len(t, activity.records, 1)
	assert.Equal(t, domain.ActionBookingConfirmed, activity.records[0].Action)
}

func TestApprove_ReplaySameLinkIsNoop(t *testing.T) {
	confirmed := pendingBooking(1)
	confirmed.Status = domain.StatusConfirmed
	confirmed.MeetingLink = ptr.Ptr("https://meet.example.com/abc")

	repo := newFakeBookingRepo(confirmed)
	activity := &fakeActivityRepo{}
	svc := newTestService(repo, activity)

	resp, err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		MeetingLink: "https://meet.example.com/abc",
	})
	require.NoError(t, err)

	// Состояние не менялось: ни записи в хранилище, ни события в журнале
	assert.Equal(t, 0, repo.confirmCalls)
	assert.Empty(t, activity.records)
	assert.Equal(t, "confirmed", resp.Booking.Status)
}

func TestApprove_DifferentLinkOverwrites(t *testing.T) {
	confirmed := pendingBooking(1)
	confirmed.Status = domain.StatusConfirmed
	confirmed.MeetingLink = ptr.Ptr("https://meet.example.com/old")

	repo := newFakeBookingRepo(confirmed)
	svc := newTestService(repo, &fakeActivityRepo{})

	resp, err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		MeetingLink: "https://meet.example.com/new",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.confirmCalls)
	require.NotNil(t, resp.Booking.MeetingLink)
	assert.Equal(t, "https://meet.example.com/new", *resp.Booking.MeetingLink)
}

func TestApprove_CancelledBookingFails(t *testing.T) {
	cancelled := pendingBooking(1)
	cancelled.Status = domain.StatusCancelled

	svc := newTestService(newFakeBookingRepo(cancelled), &fakeActivityRepo{})

	_, err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		MeetingLink: "https://meet.example.com/abc",
	})
	assert.ErrorIs(t, err, ErrCannotApprove)
}

func TestApprove_LinkTooLong(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(pendingBooking(1)), &fakeActivityRepo{})

	long := make([]byte, domain.MaxMeetingLinkLength+1)
	for i := range long {
		long[i] = 'x'
	}

	_, err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		MeetingLink: string(long),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeny(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	activity := &fakeActivityRepo{}
	svc := newTestService(repo, activity)

	resp, err := svc.Deny(context.Background(), 1, &models.DenyBookingRequest{
		Reason: "менеджер недоступен в этот день",
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Booking.Status)
	require.NotNil(t, resp.Booking.CancellationReason)
	assert.Equal(t, "менеджер недоступен в этот день", *resp.Booking.CancellationReason)
	assert.NotNil(t, resp.Booking.CancelledAt)

	assert.Contains(t, resp.NotificationText, "Jane Doe")
	assert.Contains(t, resp.NotificationText, "отменён")
	assert.Contains(t, resp.NotificationText, "менеджер недоступен в этот день")

	require.Len(t, activity.records, 1)
	assert.Equal(t, domain.ActionBookingCancelled, activity.records[0].Action)
}

func TestDeny_ConfirmedBooking(t *testing.T) {
	// confirmed -> cancelled разрешён: встречу можно отменить
	// и после подтверждения
	confirmed := pendingBooking(1)
	confirmed.Status = domain.StatusConfirmed
	confirmed.MeetingLink = ptr.Ptr("https://meet.example.com/abc")

	svc := newTestService(newFakeBookingRepo(confirmed), &fakeActivityRepo{})

	resp, err := svc.Deny(context.Background(), 1, &models.DenyBookingRequest{Reason: "перенос"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Booking.Status)
}

func TestDeny_AfterDatePassed(t *testing.T) {
	// completed - вычисляемый статус; хранимый confirmed остаётся отменяемым
	past := pendingBooking(1)
	past.Status = domain.StatusConfirmed
	past.BookingDate = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	svc := newTestService(newFakeBookingRepo(past), &fakeActivityRepo{})

	resp, err := svc.Deny(context.Background(), 1, &models.DenyBookingRequest{Reason: "звонок не состоялся"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Booking.Status)
}

func TestDeny_CancelledBookingFails(t *testing.T) {
	cancelled := pendingBooking(1)
	cancelled.Status = domain.StatusCancelled

	svc := newTestService(newFakeBookingRepo(cancelled), &fakeActivityRepo{})

	_, err := svc.Deny(context.Background(), 1, &models.DenyBookingRequest{Reason: "повторная отмена"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestDeny_ThenApproveFails(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	svc := newTestService(repo, &fakeActivityRepo{})

	_, err := svc.Deny(context.Background(), 1, &models.DenyBookingRequest{Reason: "перенос"})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		MeetingLink: "https://meet.example.com/abc",
	})
	assert.ErrorIs(t, err, ErrCannotApprove)
}

func TestApprove_ThenDenySucceeds(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	svc := newTestService(repo, &fakeActivityRepo{})

	_, err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		MeetingLink: "https://meet.example.com/abc",
	})
	require.NoError(t, err)

	resp, err := svc.Deny(context.Background(), 1, &models.DenyBookingRequest{Reason: "перенос"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Booking.Status)
}

func TestApprove_ActivityFailureDoesNotRollBack(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	activity := &fakeActivityRepo{err: errors.New("activity log down")}
	svc := newTestService(repo, activity)

	resp, err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		MeetingLink: "https://meet.example.com/abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Booking.Status)
}

func TestStoreUnavailable(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	repo.err = errors.New("connection refused")
	svc := newTestService(repo, &fakeActivityRepo{})

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
