package reserve_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallBookingService/internal/api/handlers"
	reserveBooking "github.com/m04kA/SMC-CallBookingService/internal/usecase/reserve_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotTaken          = "выбранный слот уже занят, обновите расписание и выберите другой"
	msgInvalidSlot        = "выбранный слот отсутствует в расписании"
	msgInvalidInput       = "некорректные контактные данные"
	msgStoreUnavailable   = "хранилище бронирований временно недоступно, повторите запрос"
)

type Handler struct {
	useCase ReserveBookingUseCase
	logger  Logger
}

func NewHandler(useCase ReserveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveBooking.ErrSlotTaken):
			// 409: клиент должен перечитать доступность, а не повторять запрос
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s", req.BookingDate, req.BookingTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, reserveBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: date=%s, time=%s", req.BookingDate, req.BookingTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, reserveBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reserveBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to reserve booking: date=%s, time=%s, error=%v",
				req.BookingDate, req.BookingTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, time=%s",
		result.ID, req.BookingDate, req.BookingTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
