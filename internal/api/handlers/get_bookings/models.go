package get_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// date задаёт один день; from/to - период включительно.
func ToServiceRequest(query url.Values, loc *time.Location) (*models.GetBookingsRequest, error) {
	req := &models.GetBookingsRequest{
		IncludeInactive: false, // По умолчанию только активные
	}

	if groomerID := query.Get("groomerId"); groomerID != "" {
		req.GroomerID = &groomerID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := domain.ParseDate(dateStr, loc)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if from := query.Get("from"); from != "" {
			date, err := domain.ParseDate(from, loc)
			if err != nil {
				return nil, err
			}
			req.StartDate = &date
		}
		if to := query.Get("to"); to != "" {
			date, err := domain.ParseDate(to, loc)
			if err != nil {
				return nil, err
			}
			req.EndDate = &date
		}
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
