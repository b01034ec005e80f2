package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ApproveBookingRequest запрос на подтверждение бронирования
// MeetingLink может быть пустой строкой, если админ добавит ссылку позже
type ApproveBookingRequest struct {
	MeetingLink string `json:"meetingLink"`
}

// DenyBookingRequest запрос на отклонение бронирования
// Reason может быть пустой строкой
type DenyBookingRequest struct {
	Reason string `json:"reason"`
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
// DisplayStatus вычисляется на момент формирования ответа и не хранится:
// completed = confirmed + момент слота уже прошёл
type BookingResponse struct {
	ID            int64  `json:"id"`
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	BookingDate   string `json:"bookingDate"` // "2025-03-10"
	BookingTime   string `json:"bookingTime"` // "09:00"
	Status        string `json:"status"`
	DisplayStatus string `json:"displayStatus"`

	Notes              *string `json:"notes,omitempty"`
	MeetingLink        *string `json:"meetingLink,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// AdminActionResponse ответ на approve/deny: обновлённое бронирование
// и готовый текст уведомления для ручной отправки клиенту
// Сервис не рассылает письма сам - это осознанное продуктовое решение
type AdminActionResponse struct {
	Booking          BookingResponse `json:"booking"`
	NotificationText string          `json:"notificationText"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// now используется для вычисления DisplayStatus
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		ClientName:         b.ClientName,
		ClientEmail:        b.ClientEmail,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		BookingTime:        b.BookingTime.String(),
		Status:             string(b.Status),
		DisplayStatus:      string(b.DeriveDisplayStatus(now)),
		Notes:              b.Notes,
		MeetingLink:        b.MeetingLink,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, now); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
