package calendar

import (
	"fmt"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Policy decides which (date, slot) pairs can still be booked
type Policy struct {
	sameDayCutoff time.Duration
	advanceDays   int
	loc           *time.Location
}

// NewPolicy создает политику календаря; cutoffMinutes отсчитывается от конца слота
func NewPolicy(cutoffMinutes int) *Policy {
	if cutoffMinutes < 0 {
		cutoffMinutes = 0
	}
	return &Policy{sameDayCutoff: time.Duration(cutoffMinutes) * time.Minute}
}

// InLocation задает часовой пояс салона; проверки дат идут по его часам
func (p *Policy) InLocation(loc *time.Location) *Policy {
	p.loc = loc
	return p
}

// WithAdvanceWindow ограничивает запись на days дней вперед (0 - без ограничения)
func (p *Policy) WithAdvanceWindow(days int) *Policy {
	if days < 0 {
		days = 0
	}
	p.advanceDays = days
	return p
}

// AdvanceDays returns the booking window in days, 0 when unlimited
func (p *Policy) AdvanceDays() int {
	return p.advanceDays
}

// Local переводит момент времени в часовой пояс салона
func (p *Policy) Local(t time.Time) time.Time {
	if p.loc == nil {
		return t
	}
	return t.In(p.loc)
}

// Find returns the blackout covering date, if any
func (p *Policy) Find(date time.Time, blackouts []*domain.CalendarBlackout) (*domain.CalendarBlackout, bool) {
	for _, b := range blackouts {
		if domain.SameDay(b.Date, date) {
			return b, true
		}
	}
	return nil, false
}

// IsBlackedOut reports whether the salon is closed on date
func (p *Policy) IsBlackedOut(date time.Time, blackouts []*domain.CalendarBlackout) bool {
	_, ok := p.Find(date, blackouts)
	return ok
}

// Cutoff returns the last moment the slot can be booked on the given day
func (p *Policy) Cutoff(date time.Time, slot domain.TimeSlot, loc *time.Location) time.Time {
	return slot.End(inLocation(date, loc)).Add(-p.sameDayCutoff)
}

// ValidateDate checks a requested (date, slot) against the clock and the closures.
// The action name is carried into the returned error.
func (p *Policy) ValidateDate(action string, date time.Time, slot domain.TimeSlot, now time.Time, blackouts []*domain.CalendarBlackout) error {
	if !slot.IsValid() {
		return fmt.Errorf("%w: unknown time slot %q", domain.ErrInvalidInput, slot)
	}

	if err := p.ValidateDay(action, date, now, blackouts); err != nil {
		return err
	}

	now = p.Local(now)
	day := inLocation(date, now.Location())
	if domain.SameDay(day, now) {
		cutoff := p.Cutoff(day, slot, now.Location())
		if !now.Before(cutoff) {
			return domain.PreconditionFailed(nil, action,
				fmt.Sprintf("slot %s can no longer be booked today (cutoff %s)", slot, cutoff.Format("15:04")))
		}
	}
	return nil
}

// ValidateDay checks only that the day is not in the past and not closed.
// Walk-in entries use it because the customer is already at the counter.
func (p *Policy) ValidateDay(action string, date time.Time, now time.Time, blackouts []*domain.CalendarBlackout) error {
	now = p.Local(now)
	day := inLocation(date, now.Location())

	if domain.DateKey(day) < domain.DateKey(now) {
		return domain.PreconditionFailed(nil, action, fmt.Sprintf("date %s is in the past", day.Format(domain.DateFormat)))
	}

	if b, ok := p.Find(day, blackouts); ok {
		return domain.PreconditionFailed(nil, action, fmt.Sprintf("date %s is closed: %s", day.Format(domain.DateFormat), b.Reason))
	}
	return nil
}

// BeyondWindow reports whether date lies past the advance booking window
func (p *Policy) BeyondWindow(date time.Time, now time.Time) bool {
	if p.advanceDays == 0 {
		return false
	}
	maxDate := domain.DayOf(p.Local(now)).AddDate(0, 0, p.advanceDays)
	return domain.DateKey(date) > domain.DateKey(maxDate)
}

// ValidateWindow отклоняет онлайн-запись дальше окна предварительного бронирования
func (p *Policy) ValidateWindow(action string, date time.Time, now time.Time) error {
	if p.BeyondWindow(date, now) {
		return domain.PreconditionFailed(nil, action,
			fmt.Sprintf("date %s is too far ahead: can only book %d days in advance", date.Format(domain.DateFormat), p.advanceDays))
	}
	return nil
}

// inLocation reinterprets a calendar date (stored as midnight in any zone) in loc
func inLocation(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return domain.DayOf(date)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
