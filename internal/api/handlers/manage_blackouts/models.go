package manage_blackouts

import (
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

// CloseDateRequest HTTP request model
type CloseDateRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// BlackoutResponse закрытый день
type BlackoutResponse struct {
	Date      string    `json:"date"`
	Reason    string    `json:"reason"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlackoutListResponse список закрытых дней
type BlackoutListResponse struct {
	Blackouts []BlackoutResponse `json:"blackouts"`
}

// CloseDateResponse закрытие дня и каскадно отменённые брони
type CloseDateResponse struct {
	Blackout  BlackoutResponse         `json:"blackout"`
	Cancelled []models.BookingResponse `json:"cancelled"`
}

func fromDomainBlackout(b *domain.CalendarBlackout) BlackoutResponse {
	return BlackoutResponse{
		Date:      b.Date.Format(domain.DateFormat),
		Reason:    b.Reason,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}

func fromUseCaseResponse(resp *lifecycle.CloseDateResponse) *CloseDateResponse {
	return &CloseDateResponse{
		Blackout:  fromDomainBlackout(resp.Blackout),
		Cancelled: models.FromDomainBookingList(resp.Cancelled).Bookings,
	}
}
