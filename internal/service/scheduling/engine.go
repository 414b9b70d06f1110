package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Engine answers capacity questions over an in-memory booking set.
// It never mutates bookings except in CascadeBlackout.
type Engine struct {
	defaultCapacity int
	strategy        Strategy
}

// NewEngine создает движок расписания
func NewEngine(defaultCapacity int, strategy Strategy) *Engine {
	if defaultCapacity <= 0 {
		defaultCapacity = domain.DefaultGroomerDailyLimit
	}
	if strategy == nil {
		strategy = LeastLoaded{}
	}
	return &Engine{defaultCapacity: defaultCapacity, strategy: strategy}
}

// Strategy returns the assignment strategy in use
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Availability evaluates whether groomer g can take (date, slot).
// The booking with id excludeID is ignored (the booking being moved).
func (e *Engine) Availability(
	g *domain.Groomer,
	date time.Time,
	slot domain.TimeSlot,
	bookings []*domain.Booking,
	absences []*domain.Absence,
	excludeID string,
) Availability {
	a := Availability{
		GroomerID:  g.ID,
		Capacity:   g.Capacity(e.defaultCapacity),
		DailyCount: e.dailyCount(g.ID, date, bookings, excludeID),
	}

	if isAbsent(g.ID, date, absences) {
		a.Absent = true
		a.Reason = fmt.Sprintf("groomer %s is absent on %s", g.Name, date.Format(domain.DateFormat))
		return a
	}

	if conflict := e.FindConflict(date, slot, g.ID, bookings, excludeID); conflict != nil {
		a.ConflictingBookingID = conflict.ID
		a.Reason = fmt.Sprintf("groomer %s already has booking %s in slot %s", g.Name, displayID(conflict), slot)
		return a
	}

	if a.DailyCount >= a.Capacity {
		a.Reason = fmt.Sprintf("groomer %s reached daily capacity %d/%d", g.Name, a.DailyCount, a.Capacity)
		return a
	}

	a.Available = true
	return a
}

// CheckAssignable returns ErrCapacityExceeded with context when g cannot take the slot
func (e *Engine) CheckAssignable(
	action string,
	booking *domain.Booking,
	g *domain.Groomer,
	date time.Time,
	slot domain.TimeSlot,
	bookings []*domain.Booking,
	absences []*domain.Absence,
) error {
	a := e.Availability(g, date, slot, bookings, absences, booking.ID)
	if a.Available {
		return nil
	}
	return &domain.TransitionError{
		Kind:                 domain.ErrCapacityExceeded,
		BookingID:            booking.ID,
		Action:               action,
		Current:              booking.Status,
		GroomerID:            g.ID,
		ConflictingBookingID: a.ConflictingBookingID,
		Reason:               a.Reason,
	}
}

// Candidates returns every active groomer that satisfies the availability predicate
func (e *Engine) Candidates(
	date time.Time,
	slot domain.TimeSlot,
	groomers []*domain.Groomer,
	bookings []*domain.Booking,
	absences []*domain.Absence,
	excludeID string,
) []Candidate {
	var candidates []Candidate
	for i, g := range ordered(groomers) {
		if !g.Active {
			continue
		}
		a := e.Availability(g, date, slot, bookings, absences, excludeID)
		if a.Available {
			candidates = append(candidates, Candidate{Groomer: g, DailyCount: a.DailyCount, index: i})
		}
	}
	return candidates
}

// SelectGroomer runs fair assignment for (date, slot)
func (e *Engine) SelectGroomer(
	booking *domain.Booking,
	date time.Time,
	slot domain.TimeSlot,
	groomers []*domain.Groomer,
	bookings []*domain.Booking,
	absences []*domain.Absence,
) (*domain.Groomer, error) {
	excludeID := ""
	if booking != nil {
		excludeID = booking.ID
	}

	candidates := e.Candidates(date, slot, groomers, bookings, absences, excludeID)
	if len(candidates) == 0 {
		err := &domain.TransitionError{
			Kind:   domain.ErrCapacityExceeded,
			Action: "auto_assign",
			Reason: fmt.Sprintf("no groomer available on %s %s", date.Format(domain.DateFormat), slot),
		}
		if booking != nil {
			err.BookingID = booking.ID
			err.Current = booking.Status
		}
		return nil, err
	}

	return e.strategy.Pick(candidates).Groomer, nil
}

// FindConflict returns the active booking holding (date, slot, groomer), if any
func (e *Engine) FindConflict(date time.Time, slot domain.TimeSlot, groomerID string, bookings []*domain.Booking, excludeID string) *domain.Booking {
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if b.Occupies(date, slot, groomerID) {
			return b
		}
	}
	return nil
}

// DayLoad builds per-groomer load for the admin assignment view
func (e *Engine) DayLoad(date time.Time, groomers []*domain.Groomer, bookings []*domain.Booking, absences []*domain.Absence) []GroomerLoad {
	rows := make([]GroomerLoad, 0, len(groomers))
	for _, g := range ordered(groomers) {
		row := GroomerLoad{
			Groomer:    g,
			Capacity:   g.Capacity(e.defaultCapacity),
			DailyCount: e.dailyCount(g.ID, date, bookings, ""),
			Absent:     isAbsent(g.ID, date, absences),
			Slots:      make(map[domain.TimeSlot]string),
		}
		for _, b := range bookings {
			if b.IsActive() && b.AssignedTo(g.ID) && domain.SameDay(b.Date, date) {
				row.Slots[b.Slot] = b.ID
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// SlotAvailability summarises every slot of the day
func (e *Engine) SlotAvailability(date time.Time, groomers []*domain.Groomer, bookings []*domain.Booking, absences []*domain.Absence) []SlotSummary {
	total := 0
	for _, g := range groomers {
		if g.Active {
			total++
		}
	}

	summaries := make([]SlotSummary, 0, len(domain.AllSlots()))
	for _, slot := range domain.AllSlots() {
		summaries = append(summaries, SlotSummary{
			Slot:              slot,
			AvailableGroomers: len(e.Candidates(date, slot, groomers, bookings, absences, "")),
			TotalGroomers:     total,
		})
	}
	return summaries
}

// CascadeBlackout cancels every open booking on the blacked-out date and
// returns the bookings it changed.
func CascadeBlackout(blackout *domain.CalendarBlackout, bookings []*domain.Booking, now time.Time) []*domain.Booking {
	var changed []*domain.Booking
	note := domain.BlackoutNote(blackout.Reason)

	for _, b := range bookings {
		if !domain.SameDay(b.Date, blackout.Date) || b.Status.IsTerminal() {
			continue
		}
		n := note
		at := now
		b.Status = domain.StatusCancelledByAdmin
		b.CancellationNote = &n
		b.CancelledAt = &at
		b.UpdatedAt = now
		changed = append(changed, b)
	}
	return changed
}

func (e *Engine) dailyCount(groomerID string, date time.Time, bookings []*domain.Booking, excludeID string) int {
	count := 0
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if b.IsActive() && b.AssignedTo(groomerID) && domain.SameDay(b.Date, date) {
			count++
		}
	}
	return count
}

func isAbsent(groomerID string, date time.Time, absences []*domain.Absence) bool {
	for _, a := range absences {
		if a.Covers(groomerID, date) {
			return true
		}
	}
	return false
}

// ordered returns groomers in definition order without touching the input
func ordered(groomers []*domain.Groomer) []*domain.Groomer {
	out := append([]*domain.Groomer(nil), groomers...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func displayID(b *domain.Booking) string {
	if b.ShortCode != "" {
		return b.ShortCode
	}
	return b.ID
}
