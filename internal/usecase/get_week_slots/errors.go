package get_week_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_week_slots: invalid input data")

	// ErrStoreUnavailable возвращается при недоступности хранилища бронирований
	ErrStoreUnavailable = errors.New("get_week_slots: booking store unavailable")
)
