package create_booking

import (
	"errors"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

var errCustomerRequired = errors.New("customerId is required for bookings entered by staff")

// PetRequest данные питомца
type PetRequest struct {
	Name          string `json:"name"`
	Species       string `json:"species"`
	Breed         string `json:"breed"`
	WeightBracket string `json:"weightBracket"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID     string     `json:"customerId,omitempty"` // только для администратора
	CustomerName   string     `json:"customerName"`
	Phone          string     `json:"phone"`
	Pet            PetRequest `json:"pet"`
	PackageID      string     `json:"packageId"`
	AddOns         []string   `json:"addOns,omitempty"`
	SingleServices []string   `json:"singleServices,omitempty"`
	BookingDate    string     `json:"bookingDate"` // "2024-06-01"
	TimeSlot       string     `json:"timeSlot"`    // "9am-12pm"
	Notes          *string    `json:"notes,omitempty"`
	Source         string     `json:"source,omitempty"`
	GroomerID      *string    `json:"groomerId,omitempty"`
	AutoAssign     bool       `json:"autoAssign,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking  *models.BookingResponse `json:"booking"`
	Warnings []string                `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Клиент всегда бронирует на себя и только онлайн.
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor, loc *time.Location) (*lifecycle.CreateRequest, error) {
	date, err := domain.ParseDate(r.BookingDate, loc)
	if err != nil {
		return nil, err
	}
	slot, err := domain.ParseTimeSlot(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	customerID := r.CustomerID
	source := r.Source
	if actor.IsCustomer() {
		customerID = actor.ID
		source = domain.SourceOnline
	} else if customerID == "" {
		return nil, errCustomerRequired
	}

	return &lifecycle.CreateRequest{
		CustomerID:   customerID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Pet: domain.Pet{
			Name:          r.Pet.Name,
			Species:       r.Pet.Species,
			Breed:         r.Pet.Breed,
			WeightBracket: r.Pet.WeightBracket,
		},
		PackageID:        r.PackageID,
		AddOnKeys:        r.AddOns,
		SingleServiceIDs: r.SingleServices,
		Date:             date,
		Slot:             slot,
		Notes:            r.Notes,
		Source:           source,
		GroomerID:        r.GroomerID,
		AutoAssign:       r.AutoAssign,
		Actor:            actor,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *lifecycle.CreateResponse) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:  models.FromDomainBooking(resp.Booking),
		Warnings: resp.Warnings,
	}
}
