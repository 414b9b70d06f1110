package lifecycle

import (
	"fmt"
	"strings"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

func validateCreateRequest(req *CreateRequest) error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return fmt.Errorf("%w: customer id is required", domain.ErrInvalidInput)
	}
	if name := strings.TrimSpace(req.CustomerName); name == "" || len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name must be 1..%d characters", domain.ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if name := strings.TrimSpace(req.Pet.Name); name == "" || len(name) > domain.MaxPetNameLength {
		return fmt.Errorf("%w: pet name must be 1..%d characters", domain.ErrInvalidInput, domain.MaxPetNameLength)
	}
	if strings.TrimSpace(req.PackageID) == "" {
		return fmt.Errorf("%w: package is required", domain.ErrInvalidInput)
	}
	if req.PackageID == domain.SingleServicePackageID && len(req.SingleServiceIDs) == 0 {
		return fmt.Errorf("%w: select at least one single service", domain.ErrInvalidInput)
	}
	if !req.Slot.IsValid() {
		return fmt.Errorf("%w: unknown time slot %q", domain.ErrInvalidInput, req.Slot)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", domain.ErrInvalidInput, domain.MaxNotesLength)
	}
	switch req.Source {
	case "", domain.SourceOnline, domain.SourceWalkIn:
	default:
		return fmt.Errorf("%w: unknown source %q", domain.ErrInvalidInput, req.Source)
	}
	if req.GroomerID != nil && req.Actor.IsCustomer() {
		return fmt.Errorf("%w: customers cannot pick a groomer", domain.ErrInvalidInput)
	}
	return nil
}

func validateNote(note string, max int) error {
	if len(note) > max {
		return fmt.Errorf("%w: note exceeds %d characters", domain.ErrInvalidInput, max)
	}
	return nil
}

// checkOwner запрещает клиенту работать с чужой бронью
func checkOwner(b *domain.Booking, actor domain.Actor) error {
	if actor.IsCustomer() && b.CustomerID != actor.ID {
		return fmt.Errorf("%w: booking %s belongs to another customer", ErrAccessDenied, describe(b))
	}
	return nil
}

// requireAdmin запрещает клиентам админские операции
func requireAdmin(actor domain.Actor, action string) error {
	if actor.IsCustomer() {
		return fmt.Errorf("%w: %s is an admin operation", ErrAccessDenied, action)
	}
	return nil
}
