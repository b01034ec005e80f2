package get_week_slots

import (
	"time"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	getWeekSlots "github.com/m04kA/SMC-CallBookingService/internal/usecase/get_week_slots"
)

// WeekSlotsResponse HTTP response model
type WeekSlotsResponse struct {
	WeekStart string     `json:"weekStart"`
	Times     []string   `json:"times"` // шаблон времён, одинаков для всех дней
	Days      []DaySlots `json:"days"`
}

// DaySlots слоты одного рабочего дня
type DaySlots struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot модель слота
type Slot struct {
	Time  string `json:"time"`
	Taken bool   `json:"taken"`
}

// ToUseCaseRequest создает запрос use case из query параметра date
// Пустая строка означает текущую неделю
func ToUseCaseRequest(dateStr string) (*getWeekSlots.Request, error) {
	if dateStr == "" {
		return &getWeekSlots.Request{}, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getWeekSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekSlots.Response) *WeekSlotsResponse {
	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.String()
	}

	days := make([]DaySlots, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]Slot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = Slot{
				Time:  slot.Time.String(),
				Taken: slot.Taken,
			}
		}
		days[i] = DaySlots{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		}
	}

	return &WeekSlotsResponse{
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		Times:     times,
		Days:      days,
	}
}
