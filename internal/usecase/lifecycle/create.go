package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/pricing"
)

// Create создает бронирование в статусе pending.
// Забаненный клиент отклоняется до входа в критическую секцию.
func (uc *UseCase) Create(ctx context.Context, req *CreateRequest) (*CreateResponse, error) {
	uc.logger.Info("Create: customer=%s, package=%s, date=%s, slot=%s, source=%s",
		req.CustomerID, req.PackageID, req.Date.Format(domain.DateFormat), req.Slot, req.Source)

	if err := validateCreateRequest(req); err != nil {
		uc.logger.Warn("Create: validation failed: %v", err)
		uc.record(ActionCreate, err)
		return nil, err
	}

	if err := uc.conduct.EnsureCanBook(ctx, req.CustomerID); err != nil {
		if !errors.Is(err, domain.ErrAccountBanned) {
			err = fmt.Errorf("%w: conduct check: %w", ErrInternal, err)
		}
		uc.logResult("Create", "-", err)
		uc.record(ActionCreate, err)
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = domain.SourceOnline
	}

	var resp *CreateResponse
	err := uc.mutate(ctx, ActionCreate, func(s *session) error {
		blackouts, err := s.loadBlackouts()
		if err != nil {
			return err
		}
		if source == domain.SourceWalkIn {
			err = uc.policy.ValidateDay(ActionCreate, req.Date, s.now, blackouts)
		} else {
			err = uc.policy.ValidateDate(ActionCreate, req.Date, req.Slot, s.now, blackouts)
			if err == nil && source == domain.SourceOnline {
				err = uc.policy.ValidateWindow(ActionCreate, req.Date, s.now)
			}
		}
		if err != nil {
			return err
		}

		catalog, err := s.loadCatalog()
		if err != nil {
			return err
		}
		quote, err := uc.pricer.Quote(catalog, pricing.Selection{
			PackageID:        req.PackageID,
			WeightBracket:    req.Pet.WeightBracket,
			AddOnKeys:        req.AddOnKeys,
			SingleServiceIDs: req.SingleServiceIDs,
		})
		if err != nil {
			return err
		}

		b := &domain.Booking{
			ID:             uc.newID(),
			ShortCode:      uc.newShortCode(s.bookings),
			CustomerID:     req.CustomerID,
			CustomerName:   strings.TrimSpace(req.CustomerName),
			Phone:          req.Phone,
			Pet:            req.Pet,
			PackageID:      req.PackageID,
			PackageName:    packageName(catalog, req.PackageID),
			SingleServices: append([]string(nil), req.SingleServiceIDs...),
			Date:           domain.DayOf(req.Date),
			Slot:           req.Slot,
			Status:         domain.StatusPending,
			Source:         source,
			Notes:          req.Notes,
			CreatedAt:      s.now,
		}
		uc.pricer.ApplyQuote(b, quote)

		warnings := append([]string(nil), quote.Warnings...)
		assigned := ""

		switch {
		case req.GroomerID != nil:
			g, err := s.groomer(ActionCreate, *req.GroomerID)
			if err != nil {
				return err
			}
			absences, err := s.loadAbsences()
			if err != nil {
				return err
			}
			if err := uc.scheduler.CheckAssignable(ActionCreate, b, g, b.Date, b.Slot, s.bookings, absences); err != nil {
				return err
			}
			assign(b, g)
			assigned = g.Name

		case req.AutoAssign:
			groomers, err := s.loadGroomers()
			if err != nil {
				return err
			}
			absences, err := s.loadAbsences()
			if err != nil {
				return err
			}
			g, err := uc.scheduler.SelectGroomer(b, b.Date, b.Slot, groomers, s.bookings, absences)
			switch {
			case err == nil:
				assign(b, g)
				assigned = g.Name
			case errors.Is(err, domain.ErrCapacityExceeded):
				// Бронь остаётся без грумера, администратор назначит вручную
				warnings = append(warnings, "no groomer available for the requested slot, left unassigned")
			default:
				return err
			}
		}

		s.bookings = append(s.bookings, b)

		message := fmt.Sprintf("Booking %s created for %s on %s %s (%s), total %s",
			b.ShortCode, b.Pet.Name, b.Date.Format(domain.DateFormat), b.Slot, source, formatMoney(b.TotalPrice))
		if assigned != "" {
			message += ", groomer " + assigned
		}
		s.touch(b, domain.AuditActionCreated, message, req.Actor)

		resp = &CreateResponse{Booking: b, Warnings: warnings}
		return nil
	})

	if err != nil {
		uc.logResult("Create", "-", err)
		return nil, err
	}

	uc.logger.Info("Create: booking id=%s code=%s created", resp.Booking.ID, resp.Booking.ShortCode)
	return resp, nil
}

func assign(b *domain.Booking, g *domain.Groomer) {
	id := g.ID
	b.GroomerID = &id
	b.GroomerName = g.Name
}

func packageName(catalog *domain.Catalog, id string) string {
	if id == domain.SingleServicePackageID {
		return "Single Service"
	}
	if p, ok := catalog.FindPackage(id); ok {
		return p.Name
	}
	return id
}
