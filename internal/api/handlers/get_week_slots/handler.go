package get_week_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallBookingService/internal/api/handlers"
	getWeekSlots "github.com/m04kA/SMC-CallBookingService/internal/usecase/get_week_slots"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStoreUnavailable = "хранилище бронирований временно недоступно, повторите запрос"
)

type Handler struct {
	useCase GetWeekSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/week
// Query params: date (опционально, YYYY-MM-DD; по умолчанию текущая неделя)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/week - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getWeekSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/week - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getWeekSlots.ErrStoreUnavailable):
			h.logger.Error("GET /schedule/week - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /schedule/week - Failed to get week slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /schedule/week - Week retrieved successfully: week_start=%s, days=%d",
		response.WeekStart, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
