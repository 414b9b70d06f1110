package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/scheduling"
)

// CloseDate закрывает день и каскадно отменяет все открытые брони на эту дату
func (uc *UseCase) CloseDate(ctx context.Context, req *CloseDateRequest) (*CloseDateResponse, error) {
	uc.logger.Info("CloseDate: date=%s, reason=%s, actor=%s", req.Date.Format(domain.DateFormat), req.Reason, req.Actor)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" || req.Date.IsZero() {
		err := fmt.Errorf("%w: date and reason are required", domain.ErrInvalidInput)
		uc.record(ActionCloseDate, err)
		return nil, err
	}
	if err := requireAdmin(req.Actor, ActionCloseDate); err != nil {
		uc.record(ActionCloseDate, err)
		return nil, err
	}

	var resp *CloseDateResponse
	err := uc.mutate(ctx, ActionCloseDate, func(s *session) error {
		if err := uc.policy.ValidateDay(ActionCloseDate, req.Date, s.now, nil); err != nil {
			return err
		}
		blackouts, err := s.loadBlackouts()
		if err != nil {
			return err
		}
		if existing, ok := uc.policy.Find(req.Date, blackouts); ok {
			return domain.PreconditionFailed(nil, ActionCloseDate,
				fmt.Sprintf("date %s is already closed: %s", req.Date.Format(domain.DateFormat), existing.Reason))
		}

		blackout := &domain.CalendarBlackout{
			Date:      domain.DayOf(req.Date),
			Reason:    reason,
			CreatedBy: req.Actor.String(),
			CreatedAt: s.now,
		}
		s.blackouts = append(s.blackouts, blackout)
		s.blackoutsDirty = true

		cascadeActor := domain.Actor{ID: req.Actor.ID, Kind: domain.ActorBlackout}
		cancelled := scheduling.CascadeBlackout(blackout, s.bookings, s.now)
		for _, b := range cancelled {
			s.touch(b, domain.AuditActionCancelled, domain.BlackoutNote(reason), cascadeActor)
		}

		resp = &CloseDateResponse{Blackout: blackout, Cancelled: cancelled}
		return nil
	})

	if err != nil {
		uc.logResult("CloseDate", "-", err)
		return nil, err
	}
	uc.logger.Info("CloseDate: date=%s closed, cancelled=%d", req.Date.Format(domain.DateFormat), len(resp.Cancelled))
	return resp, nil
}

// ReopenDate снимает закрытие дня. Отменённые брони не восстанавливаются.
func (uc *UseCase) ReopenDate(ctx context.Context, date time.Time, actor domain.Actor) error {
	uc.logger.Info("ReopenDate: date=%s, actor=%s", date.Format(domain.DateFormat), actor)

	if err := requireAdmin(actor, ActionReopenDate); err != nil {
		uc.record(ActionReopenDate, err)
		return err
	}

	err := uc.mutate(ctx, ActionReopenDate, func(s *session) error {
		blackouts, err := s.loadBlackouts()
		if err != nil {
			return err
		}
		kept := make([]*domain.CalendarBlackout, 0, len(blackouts))
		for _, b := range blackouts {
			if !domain.SameDay(b.Date, date) {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(blackouts) {
			return fmt.Errorf("%w: %s", ErrBlackoutNotFound, date.Format(domain.DateFormat))
		}
		s.blackouts = kept
		s.blackoutsDirty = true
		return nil
	})

	uc.logResult("ReopenDate", "-", err)
	return err
}
