package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotApprove возвращается при попытке подтвердить отменённое
	// бронирование: из статуса cancelled переходов нет
	ErrCannotApprove = errors.New("booking cannot be approved")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable возвращается при недоступности хранилища бронирований
	ErrStoreUnavailable = errors.New("service: booking store unavailable")
)
