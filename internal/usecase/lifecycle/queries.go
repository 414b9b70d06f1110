package lifecycle

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Get возвращает бронь по id или короткому коду
func (uc *UseCase) Get(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	bookings, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	s := &session{bookings: bookings}
	b, err := s.find("get", bookingID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(b, actor); err != nil {
		return nil, err
	}
	return b, nil
}

// List возвращает брони по фильтру, отсортированные по дате и слоту
func (uc *UseCase) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	bookings, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Matches(b) {
			result = append(result, b)
		}
	}
	sortBookings(result)
	return result, nil
}

// History журнал изменений брони в хронологическом порядке
func (uc *UseCase) History(ctx context.Context, bookingID string, actor domain.Actor) ([]*domain.AuditEntry, error) {
	b, err := uc.Get(ctx, bookingID, actor)
	if err != nil {
		return nil, err
	}
	id := b.ID
	entries, err := uc.audit.List(ctx, &id)
	if err != nil {
		uc.logger.Error("History: booking=%s failed to load audit: %v", id, err)
		return nil, fmt.Errorf("%w: load audit: %w", ErrInternal, err)
	}
	return entries, nil
}

// DayView админский обзор дня: брони, загрузка грумеров, закрытие
func (uc *UseCase) DayView(ctx context.Context, date time.Time) (*DayView, error) {
	bookings, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	groomers, err := uc.staff.LoadGroomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load groomers: %w", ErrInternal, err)
	}
	absences, err := uc.staff.LoadAbsences(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load absences: %w", ErrInternal, err)
	}
	blackouts, err := uc.calendar.LoadBlackouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load blackouts: %w", ErrInternal, err)
	}

	view := &DayView{
		Date: domain.DayOf(date),
		Load: uc.scheduler.DayLoad(date, groomers, bookings, absences),
	}
	for _, b := range bookings {
		if domain.SameDay(b.Date, date) {
			view.Bookings = append(view.Bookings, b)
		}
	}
	sortBookings(view.Bookings)
	if closed, ok := uc.policy.Find(date, blackouts); ok {
		view.Closed = closed
	}
	return view, nil
}

// Blackouts закрытые дни по возрастанию даты
func (uc *UseCase) Blackouts(ctx context.Context) ([]*domain.CalendarBlackout, error) {
	blackouts, err := uc.calendar.LoadBlackouts(ctx)
	if err != nil {
		uc.logger.Error("LoadBlackouts: %v", err)
		return nil, fmt.Errorf("%w: load blackouts: %w", ErrInternal, err)
	}
	result := append([]*domain.CalendarBlackout(nil), blackouts...)
	sort.SliceStable(result, func(i, j int) bool {
		return domain.DateKey(result[i].Date) < domain.DateKey(result[j].Date)
	})
	return result, nil
}

func (uc *UseCase) loadAll(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := uc.bookings.LoadBookings(ctx)
	if err != nil {
		uc.logger.Error("LoadBookings: %v", err)
		return nil, fmt.Errorf("%w: load bookings: %w", ErrInternal, err)
	}
	return bookings, nil
}

var slotOrder = map[domain.TimeSlot]int{
	domain.SlotMorning:   0,
	domain.SlotMidday:    1,
	domain.SlotAfternoon: 2,
}

func sortBookings(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		ki, kj := domain.DateKey(bookings[i].Date), domain.DateKey(bookings[j].Date)
		if ki != kj {
			return ki < kj
		}
		return slotOrder[bookings[i].Slot] < slotOrder[bookings[j].Slot]
	})
}
