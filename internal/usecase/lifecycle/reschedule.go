package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/pricing"
)

// Reschedule переносит бронь на новую дату/слот/грумера и возвращает её в pending.
// Если целевой слот грумера занят, перенос отклоняется с SlotConflict;
// повторный вызов с CancelConflicting сначала отменяет мешающую бронь.
func (uc *UseCase) Reschedule(ctx context.Context, req *RescheduleRequest) (*domain.Booking, error) {
	uc.logger.Info("Reschedule: booking=%s, date=%s, slot=%s, cancelConflicting=%v, actor=%s",
		req.BookingID, req.Date.Format(domain.DateFormat), req.Slot, req.CancelConflicting, req.Actor)

	if req.Actor.IsCustomer() && (req.GroomerID != nil || req.CancelConflicting) {
		err := fmt.Errorf("%w: customers cannot pick a groomer or cancel other bookings", ErrAccessDenied)
		uc.record(ActionReschedule, err)
		return nil, err
	}

	var result *domain.Booking
	err := uc.mutate(ctx, ActionReschedule, func(s *session) error {
		b, err := s.find(ActionReschedule, req.BookingID)
		if err != nil {
			return err
		}
		if err := checkOwner(b, req.Actor); err != nil {
			return err
		}
		if b.Status.IsTerminal() {
			return domain.InvalidTransition(b, ActionReschedule)
		}

		blackouts, err := s.loadBlackouts()
		if err != nil {
			return err
		}
		err = uc.policy.ValidateDate(ActionReschedule, req.Date, req.Slot, s.now, blackouts)
		if err == nil && req.Actor.IsCustomer() {
			err = uc.policy.ValidateWindow(ActionReschedule, req.Date, s.now)
		}
		if err != nil {
			var te *domain.TransitionError
			if errors.As(err, &te) {
				te.BookingID = b.ID
				te.Current = b.Status
			}
			return err
		}

		date := domain.DayOf(req.Date)
		var target *domain.Groomer
		switch {
		case req.GroomerID != nil:
			target, err = s.groomer(ActionReschedule, *req.GroomerID)
		case b.GroomerID != nil:
			target, err = s.groomer(ActionReschedule, *b.GroomerID)
		}
		if err != nil {
			return err
		}

		if target != nil {
			if conflict := uc.scheduler.FindConflict(date, req.Slot, target.ID, s.bookings, b.ID); conflict != nil {
				if !req.CancelConflicting {
					return &domain.TransitionError{
						Kind:                 domain.ErrSlotConflict,
						BookingID:            b.ID,
						Action:               ActionReschedule,
						Current:              b.Status,
						GroomerID:            target.ID,
						ConflictingBookingID: conflict.ID,
						Reason: fmt.Sprintf("groomer %s already has booking %s on %s %s",
							target.Name, describe(conflict), date.Format(domain.DateFormat), req.Slot),
					}
				}
				note := fmt.Sprintf("Cancelled due to reschedule conflict with booking %s", describe(b))
				cancel(s, conflict, domain.StatusCancelledByAdmin, note)
				s.touch(conflict, domain.AuditActionCancelled, note, req.Actor)
			}

			absences, err := s.loadAbsences()
			if err != nil {
				return err
			}
			if err := uc.scheduler.CheckAssignable(ActionReschedule, b, target, date, req.Slot, s.bookings, absences); err != nil {
				return err
			}
		}

		if req.PackageID != nil && *req.PackageID != b.PackageID {
			catalog, err := s.loadCatalog()
			if err != nil {
				return err
			}
			quote, err := uc.pricer.Quote(catalog, pricing.Selection{
				PackageID:        *req.PackageID,
				WeightBracket:    b.Pet.WeightBracket,
				AddOnKeys:        addOnKeys(b.Cost.AddOns),
				SingleServiceIDs: b.SingleServices,
			})
			if err != nil {
				return err
			}
			b.PackageID = *req.PackageID
			b.PackageName = packageName(catalog, b.PackageID)
			uc.pricer.ApplyQuote(b, quote)
		}

		from := fmt.Sprintf("%s %s", b.Date.Format(domain.DateFormat), b.Slot)
		if b.GroomerName != "" {
			from += " with " + b.GroomerName
		}
		b.RescheduledFrom = &from
		b.Date = date
		b.Slot = req.Slot
		b.Status = domain.StatusPending
		b.StartedAt = nil
		if target != nil {
			assign(b, target)
		}

		to := fmt.Sprintf("%s %s", date.Format(domain.DateFormat), req.Slot)
		if target != nil {
			to += " with " + target.Name
		}
		s.touch(b, domain.AuditActionRescheduled, fmt.Sprintf("Rescheduled from %s to %s", from, to), req.Actor)
		result = b
		return nil
	})

	uc.logResult("Reschedule", req.BookingID, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func addOnKeys(addOns []domain.SelectedAddOn) []string {
	keys := make([]string, 0, len(addOns))
	for _, a := range addOns {
		keys = append(keys, a.Key)
	}
	return keys
}
