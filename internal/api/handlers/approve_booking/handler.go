package approve_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CallBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-CallBookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgCannotApprove      = "бронирование не может быть подтверждено"
	msgInvalidInput       = "некорректные данные подтверждения"
	msgStoreUnavailable   = "хранилище бронирований временно недоступно, повторите запрос"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/approve - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.ApproveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Approve(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/approve - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotApprove):
			h.logger.Warn("PATCH /admin/bookings/{id}/approve - Cannot approve: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotApprove)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/approve - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrStoreUnavailable):
			h.logger.Error("PATCH /admin/bookings/{id}/approve - Store unavailable: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/approve - Failed to approve booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/approve - Booking approved successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
