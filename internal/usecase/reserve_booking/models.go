package reserve_booking

import (
	"time"

	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

// Request модель запроса на резервирование слота
type Request struct {
	Date        time.Time        // дата слота (без времени)
	Time        types.TimeString // время слота, например "09:00"
	ClientName  string           // имя клиента
	ClientEmail string           // email клиента
	Notes       *string          // дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	ClientName  string
	ClientEmail string
	BookingDate time.Time
	BookingTime types.TimeString
	Status      string // всегда pending при создании
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
