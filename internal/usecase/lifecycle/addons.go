package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// AddAddOn добавляет доп. услугу во время обслуживания и пересчитывает итог
func (uc *UseCase) AddAddOn(ctx context.Context, req *AddOnRequest) (*domain.Booking, error) {
	if strings.TrimSpace(req.Key) == "" {
		err := fmt.Errorf("%w: add-on key is required", domain.ErrInvalidInput)
		uc.record(ActionAddAddOn, err)
		return nil, err
	}
	if err := requireAdmin(req.Actor, ActionAddAddOn); err != nil {
		uc.record(ActionAddAddOn, err)
		return nil, err
	}

	return uc.transition(ctx, "AddAddOn", ActionAddAddOn, req.BookingID, req.Actor, func(s *session, b *domain.Booking) error {
		if err := editableAddOns(b, ActionAddAddOn); err != nil {
			return err
		}
		catalog, err := s.loadCatalog()
		if err != nil {
			return err
		}
		addOn, err := uc.pricer.ResolveAddOn(catalog, req.Key, b.Pet.WeightBracket)
		if err != nil {
			return err
		}
		addOn.ID = uc.newID()

		b.AddOns = append(b.AddOns, addOn)
		uc.pricer.RecalculateAddOns(b)

		s.touch(b, domain.AuditActionAddOnAdded,
			fmt.Sprintf("Added %s (%s), total %s", addOn.Label, formatMoney(addOn.Price), formatMoney(b.TotalPrice)), req.Actor)
		return nil
	})
}

// RemoveAddOn убирает ранее добавленную доп. услугу
func (uc *UseCase) RemoveAddOn(ctx context.Context, req *RemoveAddOnRequest) (*domain.Booking, error) {
	if err := requireAdmin(req.Actor, ActionRemoveAddOn); err != nil {
		uc.record(ActionRemoveAddOn, err)
		return nil, err
	}

	return uc.transition(ctx, "RemoveAddOn", ActionRemoveAddOn, req.BookingID, req.Actor, func(s *session, b *domain.Booking) error {
		if err := editableAddOns(b, ActionRemoveAddOn); err != nil {
			return err
		}

		idx := findAddOn(b.AddOns, req.AddOnID)
		if idx < 0 {
			return fmt.Errorf("%w: add-on %s not found on booking %s", domain.ErrInvalidInput, req.AddOnID, describe(b))
		}

		removed := b.AddOns[idx]
		b.AddOns = append(b.AddOns[:idx:idx], b.AddOns[idx+1:]...)
		uc.pricer.RecalculateAddOns(b)

		s.touch(b, domain.AuditActionAddOnRemoved,
			fmt.Sprintf("Removed %s (%s), total %s", removed.Label, formatMoney(removed.Price), formatMoney(b.TotalPrice)), req.Actor)
		return nil
	})
}

// findAddOn ищет доп. услугу по id, затем по ключу
func findAddOn(addOns []domain.SelectedAddOn, ref string) int {
	for i, a := range addOns {
		if a.ID == ref {
			return i
		}
	}
	for i, a := range addOns {
		if a.Key == ref {
			return i
		}
	}
	return -1
}

func editableAddOns(b *domain.Booking, action string) error {
	if b.Status != domain.StatusInProgress {
		return domain.InvalidTransition(b, action)
	}
	if b.Cost.Locked {
		return domain.PreconditionFailed(b, action, "cost is locked")
	}
	return nil
}
