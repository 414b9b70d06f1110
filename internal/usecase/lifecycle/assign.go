package lifecycle

import (
	"context"
	"fmt"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// AssignGroomer назначает грумера на бронь в статусе pending
func (uc *UseCase) AssignGroomer(ctx context.Context, bookingID, groomerID string, actor domain.Actor) (*domain.Booking, error) {
	uc.logger.Info("AssignGroomer: booking=%s, groomer=%s, actor=%s", bookingID, groomerID, actor)

	if err := requireAdmin(actor, ActionAssign); err != nil {
		uc.record(ActionAssign, err)
		return nil, err
	}

	var result *domain.Booking
	err := uc.mutate(ctx, ActionAssign, func(s *session) error {
		b, err := s.find(ActionAssign, bookingID)
		if err != nil {
			return err
		}
		if b.Status != domain.StatusPending {
			return domain.InvalidTransition(b, ActionAssign)
		}

		g, err := s.groomer(ActionAssign, groomerID)
		if err != nil {
			return err
		}
		absences, err := s.loadAbsences()
		if err != nil {
			return err
		}
		if err := uc.scheduler.CheckAssignable(ActionAssign, b, g, b.Date, b.Slot, s.bookings, absences); err != nil {
			return err
		}

		previous := b.GroomerName
		assign(b, g)

		message := fmt.Sprintf("Assigned to %s", g.Name)
		if previous != "" && previous != g.Name {
			message = fmt.Sprintf("Reassigned from %s to %s", previous, g.Name)
		}
		s.touch(b, domain.AuditActionGroomerAssigned, message, actor)
		result = b
		return nil
	})

	uc.logResult("AssignGroomer", bookingID, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AutoAssign выбирает грумера справедливым распределением
func (uc *UseCase) AutoAssign(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	uc.logger.Info("AutoAssign: booking=%s, strategy=%s, actor=%s", bookingID, uc.scheduler.Strategy().Name(), actor)

	if err := requireAdmin(actor, ActionAutoAssign); err != nil {
		uc.record(ActionAutoAssign, err)
		return nil, err
	}

	var result *domain.Booking
	err := uc.mutate(ctx, ActionAutoAssign, func(s *session) error {
		b, err := s.find(ActionAutoAssign, bookingID)
		if err != nil {
			return err
		}
		if b.Status != domain.StatusPending {
			return domain.InvalidTransition(b, ActionAutoAssign)
		}

		groomers, err := s.loadGroomers()
		if err != nil {
			return err
		}
		absences, err := s.loadAbsences()
		if err != nil {
			return err
		}
		g, err := uc.scheduler.SelectGroomer(b, b.Date, b.Slot, groomers, s.bookings, absences)
		if err != nil {
			return err
		}

		assign(b, g)
		s.touch(b, domain.AuditActionGroomerAssigned, fmt.Sprintf("Assigned to %s (auto)", g.Name), actor)
		result = b
		return nil
	})

	uc.logResult("AutoAssign", bookingID, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}
