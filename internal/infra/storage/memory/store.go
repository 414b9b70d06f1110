package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Store in-process implementation of every storage contract.
// Values are deep-copied on the way in and out.
type Store struct {
	mu sync.RWMutex

	bookings  map[string]*domain.Booking
	groomers  map[string]*domain.Groomer
	absences  map[string]*domain.Absence
	blackouts []*domain.CalendarBlackout
	catalog   *domain.Catalog
	conduct   map[string]*domain.ConductRecord
	audit     []*domain.AuditEntry

	persistErr error
	auditErr   error
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		bookings: make(map[string]*domain.Booking),
		groomers: make(map[string]*domain.Groomer),
		absences: make(map[string]*domain.Absence),
		conduct:  make(map[string]*domain.ConductRecord),
	}
}

// FailPersist makes every following PersistBookings call fail with err (nil resets)
func (s *Store) FailPersist(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistErr = err
}

// FailAudit makes every following AppendAuditEntry call fail with err (nil resets)
func (s *Store) FailAudit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditErr = err
}

// --- bookings ---

func (s *Store) LoadBookings(ctx context.Context) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// PersistBookings upserts the given bookings; bookings are never deleted
func (s *Store) PersistBookings(ctx context.Context, bookings []*domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persistErr != nil {
		return s.persistErr
	}
	for _, b := range bookings {
		s.bookings[b.ID] = b.Clone()
	}
	return nil
}

// --- staff ---

func (s *Store) LoadGroomers(ctx context.Context) ([]*domain.Groomer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Groomer, 0, len(s.groomers))
	for _, g := range s.groomers {
		c := *g
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) SaveGroomer(ctx context.Context, g *domain.Groomer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *g
	s.groomers[g.ID] = &c
	return nil
}

func (s *Store) LoadAbsences(ctx context.Context) ([]*domain.Absence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Absence, 0, len(s.absences))
	for _, a := range s.absences {
		c := *a
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) SaveAbsence(ctx context.Context, a *domain.Absence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *a
	s.absences[a.ID] = &c
	return nil
}

// --- calendar ---

func (s *Store) LoadBlackouts(ctx context.Context) ([]*domain.CalendarBlackout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.CalendarBlackout, 0, len(s.blackouts))
	for _, b := range s.blackouts {
		c := *b
		out = append(out, &c)
	}
	return out, nil
}

// PersistBlackouts replaces the whole blackout set
func (s *Store) PersistBlackouts(ctx context.Context, blackouts []*domain.CalendarBlackout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blackouts = make([]*domain.CalendarBlackout, 0, len(blackouts))
	for _, b := range blackouts {
		c := *b
		s.blackouts = append(s.blackouts, &c)
	}
	return nil
}

// --- catalog ---

func (s *Store) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCatalog(s.catalog), nil
}

func (s *Store) SaveCatalog(ctx context.Context, c *domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = cloneCatalog(c)
	return nil
}

// --- conduct ---

func (s *Store) LoadConductRecord(ctx context.Context, customerID string) (*domain.ConductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.conduct[customerID]; ok {
		return r.Clone(), nil
	}
	return domain.NewConductRecord(customerID), nil
}

func (s *Store) PersistConductRecord(ctx context.Context, r *domain.ConductRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conduct[r.CustomerID] = r.Clone()
	return nil
}

func (s *Store) ListConductRecords(ctx context.Context) ([]*domain.ConductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ConductRecord, 0, len(s.conduct))
	for _, r := range s.conduct {
		out = append(out, r.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

// --- audit ---

func (s *Store) AppendAuditEntry(ctx context.Context, e *domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auditErr != nil {
		return s.auditErr
	}
	c := *e
	s.audit = append(s.audit, &c)
	return nil
}

func (s *Store) LoadAuditEntries(ctx context.Context, bookingID *string) ([]*domain.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.AuditEntry, 0, len(s.audit))
	for _, e := range s.audit {
		if bookingID != nil && e.BookingID != *bookingID {
			continue
		}
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

func cloneCatalog(c *domain.Catalog) *domain.Catalog {
	if c == nil {
		return nil
	}
	out := &domain.Catalog{
		SingleServices:           append([]domain.SingleService(nil), c.SingleServices...),
		WeightBrackets:           append([]domain.WeightBracket(nil), c.WeightBrackets...),
		SingleServiceThresholdKg: c.SingleServiceThresholdKg,
	}
	for _, p := range c.Packages {
		p.Tiers = append([]domain.PriceTier(nil), p.Tiers...)
		p.Includes = append([]string(nil), p.Includes...)
		out.Packages = append(out.Packages, p)
	}
	for _, a := range c.AddOns {
		a.Tiers = append([]domain.PriceTier(nil), a.Tiers...)
		out.AddOns = append(out.AddOns, a)
	}
	return out
}
