package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CallBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CallBookingService/internal/service/bookings/models"
)

// Service сервис администрирования бронирований
// Применяет переходы жизненного цикла (approve/deny) и формирует
// текст уведомления для ручной отправки клиенту
type Service struct {
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// DisplayStatus вычисляется на момент запроса
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// List получает список бронирований с фильтрацией по периоду и статусу
// По умолчанию отменённые бронирования не включаются
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v, includeInactive=%v", req.Status, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

// Approve подтверждает бронирование с записью ссылки на встречу
//
// Переход pending -> confirmed; повторное подтверждение идемпотентно:
// с той же ссылкой состояние не меняется, с новой - ссылка перезаписывается.
// Подтверждение отменённого бронирования запрещено.
// Возвращает обновлённое бронирование и текст уведомления для клиента
func (s *Service) Approve(ctx context.Context, bookingID int64, req *models.ApproveBookingRequest) (*models.AdminActionResponse, error) {
	s.logger.Info("Approve: approving booking id=%d", bookingID)

	if len(req.MeetingLink) > domain.MaxMeetingLinkLength {
		s.logger.Warn("Approve: meeting link too long for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: meeting link is too long (max %d)", ErrInvalidInput, domain.MaxMeetingLinkLength)
	}

	booking, err := s.getBooking(ctx, "Approve", bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Approve: booking id=%d cannot be approved, status=%s", bookingID, booking.Status)
		return nil, ErrCannotApprove
	}

	// Идемпотентный повтор: уже подтверждено с той же ссылкой - ничего не меняем
	alreadyApplied := booking.Status == domain.StatusConfirmed &&
		booking.MeetingLink != nil && *booking.MeetingLink == req.MeetingLink

	if !alreadyApplied {
		if err := s.bookingRepo.Confirm(ctx, bookingID, req.MeetingLink); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Approve: booking id=%d not found during update", bookingID)
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Approve: repository error for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Approve - repository error: %v", ErrStoreUnavailable, err)
		}

		booking, err = s.getBooking(ctx, "Approve", bookingID)
		if err != nil {
			return nil, err
		}

		s.recordActivity(ctx, bookingID, domain.ActionBookingConfirmed,
			fmt.Sprintf("approved with meeting link %q", req.MeetingLink))
	}

	s.logger.Info("Approve: successfully approved booking id=%d", bookingID)

	return &models.AdminActionResponse{
		Booking:          *models.FromDomainBooking(booking, s.timeProvider.Now()),
		NotificationText: renderApproveNotification(booking),
	}, nil
}

// Deny отклоняет бронирование с указанием причины
//
// Переходы pending -> cancelled и confirmed -> cancelled; отмена разрешена
// и после наступления даты звонка (completed - вычисляемый статус).
// Из статуса cancelled переходов нет.
// Возвращает обновлённое бронирование и текст уведомления для клиента
func (s *Service) Deny(ctx context.Context, bookingID int64, req *models.DenyBookingRequest) (*models.AdminActionResponse, error) {
	s.logger.Info("Deny: denying booking id=%d", bookingID)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Deny: cancellation reason too long for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: reason is too long (max %d)", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, "Deny", bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Deny: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Deny: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Deny: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Deny - repository error: %v", ErrStoreUnavailable, err)
	}

	booking, err = s.getBooking(ctx, "Deny", bookingID)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, bookingID, domain.ActionBookingCancelled,
		fmt.Sprintf("denied with reason %q", req.Reason))

	s.logger.Info("Deny: successfully denied booking id=%d", bookingID)

	return &models.AdminActionResponse{
		Booking:          *models.FromDomainBooking(booking, s.timeProvider.Now()),
		NotificationText: renderDenyNotification(booking),
	}, nil
}

// getBooking получает бронирование с трансляцией ошибок репозитория
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrStoreUnavailable, op, err)
	}
	return booking, nil
}

// recordActivity записывает событие в журнал best-effort:
// ошибка логируется, но родительская операция не откатывается
func (s *Service) recordActivity(ctx context.Context, bookingID int64, action domain.ActivityAction, details string) {
	record := &domain.ActivityRecord{
		BookingID: bookingID,
		Action:    action,
		Details:   details,
	}

	if _, err := s.activityRepo.Create(ctx, record); err != nil {
		s.logger.Error("recordActivity: failed to record %s for booking id=%d: %v", action, bookingID, err)
	}
}
