package get_week_slots

import (
	"context"

	getWeekSlots "github.com/m04kA/SMC-CallBookingService/internal/usecase/get_week_slots"
)

type GetWeekSlotsUseCase interface {
	Execute(ctx context.Context, req *getWeekSlots.Request) (*getWeekSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
