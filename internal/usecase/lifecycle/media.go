package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// AttachMedia сохраняет ссылки на фото до/после
func (uc *UseCase) AttachMedia(ctx context.Context, req *MediaRequest) (*domain.Booking, error) {
	if err := requireAdmin(req.Actor, ActionAttachMedia); err != nil {
		uc.record(ActionAttachMedia, err)
		return nil, err
	}
	if blank(req.Before) && blank(req.After) {
		err := fmt.Errorf("%w: before or after media is required", domain.ErrInvalidInput)
		uc.record(ActionAttachMedia, err)
		return nil, err
	}

	return uc.transition(ctx, "AttachMedia", ActionAttachMedia, req.BookingID, req.Actor, func(s *session, b *domain.Booking) error {
		if b.Status != domain.StatusInProgress && b.Status != domain.StatusCompleted {
			return domain.InvalidTransition(b, ActionAttachMedia)
		}

		var parts []string
		if !blank(req.Before) {
			v := strings.TrimSpace(*req.Before)
			b.BeforeMedia = &v
			parts = append(parts, "before")
		}
		if !blank(req.After) {
			v := strings.TrimSpace(*req.After)
			b.AfterMedia = &v
			parts = append(parts, "after")
		}
		s.touch(b, domain.AuditActionMediaAttached, "Attached "+strings.Join(parts, " and ")+" photo", req.Actor)
		return nil
	})
}

// SetFeatured отмечает завершённую работу для витрины; нужны оба фото
func (uc *UseCase) SetFeatured(ctx context.Context, bookingID string, featured bool, actor domain.Actor) (*domain.Booking, error) {
	if err := requireAdmin(actor, ActionSetFeatured); err != nil {
		uc.record(ActionSetFeatured, err)
		return nil, err
	}

	return uc.transition(ctx, "SetFeatured", ActionSetFeatured, bookingID, actor, func(s *session, b *domain.Booking) error {
		if b.Status != domain.StatusCompleted {
			return domain.InvalidTransition(b, ActionSetFeatured)
		}
		if featured && (blank(b.BeforeMedia) || blank(b.AfterMedia)) {
			return domain.PreconditionFailed(b, ActionSetFeatured, "both before and after photos are required")
		}
		b.Featured = featured

		message := "Removed from featured"
		if featured {
			message = "Marked as featured"
		}
		s.touch(b, domain.AuditActionFeatured, message, actor)
		return nil
	})
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
