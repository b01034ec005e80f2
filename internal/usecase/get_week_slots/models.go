package get_week_slots

import (
	"time"

	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

// Request модель запроса на получение недельной сетки слотов
type Request struct {
	Date time.Time // референсная дата; слоты возвращаются для её недели
}

// Response модель ответа с недельной сеткой и занятостью
type Response struct {
	WeekStart time.Time          // понедельник запрошенной недели
	Times     []types.TimeString // шаблон времён слотов (одинаков для всех дней)
	Days      []Day              // рабочие дни недели по порядку
}

// Day рабочий день недели со статусом занятости каждого слота
type Day struct {
	Date  time.Time
	Slots []Slot
}

// Slot слот одного дня
type Slot struct {
	Time  types.TimeString // время начала, например "09:00"
	Taken bool             // true, если слот занят активным бронированием
}
