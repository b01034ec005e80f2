package reserve_booking

import (
	"time"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	reserveBooking "github.com/m04kA/SMC-CallBookingService/internal/usecase/reserve_booking"
	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

// ReserveBookingRequest HTTP request model
type ReserveBookingRequest struct {
	BookingDate string  `json:"bookingDate"` // "2025-03-10"
	BookingTime string  `json:"bookingTime"` // "09:00"
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	BookingDate string  `json:"bookingDate"`
	BookingTime string  `json:"bookingTime"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveBookingRequest) ToUseCaseRequest() (*reserveBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &reserveBooking.Request{
		Date:        bookingDate,
		Time:        bookingTime,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		ClientEmail: resp.ClientEmail,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		BookingTime: resp.BookingTime.String(),
		Status:      resp.Status,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
