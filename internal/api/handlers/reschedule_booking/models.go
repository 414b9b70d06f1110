package reschedule_booking

import (
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

// RescheduleBookingRequest HTTP request model.
// cancelConflicting - подтверждение второго шага после ответа 409.
type RescheduleBookingRequest struct {
	BookingDate       string  `json:"bookingDate"`
	TimeSlot          string  `json:"timeSlot"`
	GroomerID         *string `json:"groomerId,omitempty"`
	PackageID         *string `json:"packageId,omitempty"`
	CancelConflicting bool    `json:"cancelConflicting,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string, actor domain.Actor, loc *time.Location) (*lifecycle.RescheduleRequest, error) {
	date, err := domain.ParseDate(r.BookingDate, loc)
	if err != nil {
		return nil, err
	}
	slot, err := domain.ParseTimeSlot(r.TimeSlot)
	if err != nil {
		return nil, err
	}
	return &lifecycle.RescheduleRequest{
		BookingID:         bookingID,
		Date:              date,
		Slot:              slot,
		GroomerID:         r.GroomerID,
		PackageID:         r.PackageID,
		CancelConflicting: r.CancelConflicting,
		Actor:             actor,
	}, nil
}
