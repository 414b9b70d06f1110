package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/conduct"
	"github.com/bestbuddies/grooming-booking/pkg/ptr"
)

// Confirm подтверждает бронь. Без назначенного грумера - PreconditionFailed.
func (uc *UseCase) Confirm(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	return uc.transition(ctx, "Confirm", ActionConfirm, bookingID, actor, func(s *session, b *domain.Booking) error {
		if !b.Status.CanTransitionTo(domain.StatusConfirmed) {
			return domain.InvalidTransition(b, ActionConfirm)
		}
		if !b.HasGroomer() {
			return domain.PreconditionFailed(b, ActionConfirm, "assign a groomer before confirming")
		}
		b.Status = domain.StatusConfirmed
		s.touch(b, domain.AuditActionConfirmed, fmt.Sprintf("Booking confirmed with %s", b.GroomerName), actor)
		return nil
	})
}

// Start переводит подтверждённую бронь в работу; после этого разрешены правки доп. услуг
func (uc *UseCase) Start(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	return uc.transition(ctx, "Start", ActionStart, bookingID, actor, func(s *session, b *domain.Booking) error {
		if b.Status != domain.StatusConfirmed {
			return domain.InvalidTransition(b, ActionStart)
		}
		now := s.now
		b.Status = domain.StatusInProgress
		b.StartedAt = &now
		s.touch(b, domain.AuditActionServiceStarted, "Service started", actor)
		return nil
	})
}

// Complete завершает обслуживание и фиксирует стоимость
func (uc *UseCase) Complete(ctx context.Context, bookingID, notes string, actor domain.Actor) (*domain.Booking, error) {
	if err := validateNote(notes, domain.MaxNotesLength); err != nil {
		uc.record(ActionComplete, err)
		return nil, err
	}

	return uc.transition(ctx, "Complete", ActionComplete, bookingID, actor, func(s *session, b *domain.Booking) error {
		if !b.Status.CanTransitionTo(domain.StatusCompleted) {
			return domain.InvalidTransition(b, ActionComplete)
		}
		now := s.now
		b.Status = domain.StatusCompleted
		b.CompletedAt = &now
		b.Cost.Locked = true

		message := fmt.Sprintf("Service completed, total %s", formatMoney(b.TotalPrice))
		if n := strings.TrimSpace(notes); n != "" {
			b.CompletionNote = &n
			message += ". Notes: " + n
		}
		s.touch(b, domain.AuditActionCompleted, message, actor)
		return nil
	})
}

// Cancel отменяет бронь из любого нетерминального статуса.
// Клиент может отменить только свою бронь; отмена закрытием дня получает стандартную пометку.
func (uc *UseCase) Cancel(ctx context.Context, req *CancelRequest) (*domain.Booking, error) {
	if err := validateNote(req.Note, domain.MaxCancellationNoteLength); err != nil {
		uc.record(ActionCancel, err)
		return nil, err
	}

	return uc.transition(ctx, "Cancel", ActionCancel, req.BookingID, req.Actor, func(s *session, b *domain.Booking) error {
		if err := checkOwner(b, req.Actor); err != nil {
			return err
		}

		target := domain.StatusCancelledByAdmin
		if req.Actor.IsCustomer() {
			target = domain.StatusCancelledByCustomer
		}
		if !b.Status.CanTransitionTo(target) {
			return domain.InvalidTransition(b, ActionCancel)
		}

		note := strings.TrimSpace(req.Note)
		if req.Actor.Kind == domain.ActorBlackout {
			note = domain.BlackoutNote(note)
		}
		cancel(s, b, target, note)

		message := "Cancelled by " + req.Actor.Kind
		if note != "" {
			message += ": " + note
		}
		s.touch(b, domain.AuditActionCancelled, message, req.Actor)
		return nil
	})
}

// MarkNoShow терминальная отмена администратором с предупреждением клиенту
func (uc *UseCase) MarkNoShow(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	if err := requireAdmin(actor, ActionNoShow); err != nil {
		uc.record(ActionNoShow, err)
		return nil, err
	}

	return uc.transition(ctx, "MarkNoShow", ActionNoShow, bookingID, actor, func(s *session, b *domain.Booking) error {
		if !b.Status.CanTransitionTo(domain.StatusNoShow) {
			return domain.InvalidTransition(b, ActionNoShow)
		}
		cancel(s, b, domain.StatusNoShow, "Marked as no-show by admin")
		s.touch(b, domain.AuditActionNoShow, "Customer did not show up, warning issued", actor)

		bookingID := b.ID
		warning := conduct.WarningRequest{
			CustomerID: b.CustomerID,
			Reason:     fmt.Sprintf("No Show on %s at %s", b.Date.Format(domain.DateFormat), b.Slot),
			BookingID:  &bookingID,
			IssuedBy:   actor.String(),
		}
		s.afterPersist = append(s.afterPersist, func(ctx context.Context) error {
			if _, err := uc.conduct.AddWarning(ctx, warning); err != nil {
				return fmt.Errorf("%w: add no-show warning: %w", ErrInternal, err)
			}
			return nil
		})
		return nil
	})
}

// transition общий каркас операций над одной бронью
func (uc *UseCase) transition(
	ctx context.Context,
	op, action, bookingID string,
	actor domain.Actor,
	fn func(s *session, b *domain.Booking) error,
) (*domain.Booking, error) {
	uc.logger.Info("%s: booking=%s, actor=%s", op, bookingID, actor)

	var result *domain.Booking
	err := uc.mutate(ctx, action, func(s *session) error {
		b, err := s.find(action, bookingID)
		if err != nil {
			return err
		}
		if err := fn(s, b); err != nil {
			return err
		}
		result = b
		return nil
	})

	uc.logResult(op, bookingID, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func cancel(s *session, b *domain.Booking, status domain.BookingStatus, note string) {
	b.Status = status
	b.CancelledAt = ptr.Ptr(s.now)
	if note != "" {
		b.CancellationNote = ptr.Ptr(note)
	}
}
