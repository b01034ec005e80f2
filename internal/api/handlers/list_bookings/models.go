package list_bookings

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	"github.com/m04kA/SMC-CallBookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров
// Поддерживаются: status, from, to (YYYY-MM-DD), includeInactive
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
