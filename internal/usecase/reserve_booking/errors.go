package reserve_booking

import "errors"

var (
	// ErrSlotTaken возвращается, когда слот уже занят активным бронированием
	// (в том числе при проигрыше гонки за слот)
	ErrSlotTaken = errors.New("reserve_booking: slot is already taken")

	// ErrInvalidSlot возвращается, когда пара (дата, время) не принадлежит
	// сгенерированной сетке слотов
	ErrInvalidSlot = errors.New("reserve_booking: slot is not in the schedule template")

	// ErrInvalidInput возвращается при некорректных контактных данных
	ErrInvalidInput = errors.New("reserve_booking: invalid input data")

	// ErrStoreUnavailable возвращается при недоступности хранилища бронирований
	// Бронирование при этом не создано, операцию можно повторить
	ErrStoreUnavailable = errors.New("reserve_booking: booking store unavailable")
)
