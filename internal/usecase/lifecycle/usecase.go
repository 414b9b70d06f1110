package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/calendar"
	"github.com/bestbuddies/grooming-booking/internal/service/pricing"
	"github.com/bestbuddies/grooming-booking/internal/service/scheduling"
)

// Deps зависимости use case
type Deps struct {
	Bookings  BookingStore
	Staff     StaffSource
	Calendar  CalendarStore
	Catalog   CatalogSource
	Conduct   ConductPolicy
	Audit     AuditLog
	TxManager TransactionManager
	Scheduler *scheduling.Engine
	Pricer    *pricing.Engine
	Policy    *calendar.Policy
	Location  *time.Location // часовой пояс салона
	Metrics   Metrics        // может быть nil
	Logger    Logger
}

// UseCase жизненный цикл бронирования.
// Все изменения выполняются в одной критической секции: загрузка полного
// набора, изменение в памяти, сохранение, затем запись в журнал.
type UseCase struct {
	mu sync.Mutex

	bookings     BookingStore
	staff        StaffSource
	calendar     CalendarStore
	catalog      CatalogSource
	conduct      ConductPolicy
	audit        AuditLog
	txManager    TransactionManager
	scheduler    *scheduling.Engine
	pricer       *pricing.Engine
	policy       *calendar.Policy
	metrics      Metrics
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает use case жизненного цикла
func NewUseCase(d Deps) *UseCase {
	return &UseCase{
		bookings:     d.Bookings,
		staff:        d.Staff,
		calendar:     d.Calendar,
		catalog:      d.Catalog,
		conduct:      d.Conduct,
		audit:        d.Audit,
		txManager:    d.TxManager,
		scheduler:    d.Scheduler,
		pricer:       d.Pricer,
		policy:       d.Policy,
		metrics:      d.Metrics,
		timeProvider: &RealTimeProvider{Location: d.Location},
		newID:        uuid.NewString,
		logger:       d.Logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// session состояние одной критической секции
type session struct {
	ctx      context.Context
	uc       *UseCase
	now      time.Time
	bookings []*domain.Booking

	groomers  []*domain.Groomer
	absences  []*domain.Absence
	blackouts []*domain.CalendarBlackout
	catalog   *domain.Catalog
	loaded    map[string]bool

	changed        []*domain.Booking
	entries        []domain.AuditEntry
	blackoutsDirty bool
	afterPersist   []func(ctx context.Context) error
}

func (s *session) find(action, id string) (*domain.Booking, error) {
	for _, b := range s.bookings {
		if b.ID == id || (b.ShortCode != "" && strings.EqualFold(b.ShortCode, id)) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s", domain.ErrBookingNotFound, action, id)
}

// touch помечает бронь изменённой и добавляет ровно одну запись журнала
func (s *session) touch(b *domain.Booking, action, message string, actor domain.Actor) {
	b.UpdatedAt = s.now
	if !s.isChanged(b) {
		s.changed = append(s.changed, b)
	}
	s.entries = append(s.entries, domain.AuditEntry{
		BookingID: b.ID,
		Action:    action,
		Message:   message,
		Actor:     actor.String(),
		Timestamp: s.now,
	})
}

func (s *session) isChanged(b *domain.Booking) bool {
	for _, c := range s.changed {
		if c == b {
			return true
		}
	}
	return false
}

func (s *session) loadGroomers() ([]*domain.Groomer, error) {
	if !s.loaded["groomers"] {
		gs, err := s.uc.staff.LoadGroomers(s.ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: load groomers: %w", ErrInternal, err)
		}
		s.groomers = gs
		s.loaded["groomers"] = true
	}
	return s.groomers, nil
}

func (s *session) loadAbsences() ([]*domain.Absence, error) {
	if !s.loaded["absences"] {
		as, err := s.uc.staff.LoadAbsences(s.ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: load absences: %w", ErrInternal, err)
		}
		s.absences = as
		s.loaded["absences"] = true
	}
	return s.absences, nil
}

func (s *session) loadBlackouts() ([]*domain.CalendarBlackout, error) {
	if !s.loaded["blackouts"] {
		bs, err := s.uc.calendar.LoadBlackouts(s.ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: load blackouts: %w", ErrInternal, err)
		}
		s.blackouts = bs
		s.loaded["blackouts"] = true
	}
	return s.blackouts, nil
}

func (s *session) loadCatalog() (*domain.Catalog, error) {
	if !s.loaded["catalog"] {
		c, err := s.uc.catalog.LoadCatalog(s.ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: load catalog: %w", ErrInternal, err)
		}
		s.catalog = c
		s.loaded["catalog"] = true
	}
	return s.catalog, nil
}

func (s *session) groomer(action, id string) (*domain.Groomer, error) {
	groomers, err := s.loadGroomers()
	if err != nil {
		return nil, err
	}
	for _, g := range groomers {
		if g.ID == id {
			if !g.Active {
				return nil, domain.PreconditionFailed(nil, action, fmt.Sprintf("groomer %s is not active", g.Name))
			}
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrGroomerNotFound, id)
}

// mutate выполняет fn в критической секции и транзакции.
// При ошибке fn ничего не сохраняется и журнал не пополняется.
func (uc *UseCase) mutate(ctx context.Context, action string, fn func(s *session) error) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookings.LoadBookings(txCtx)
		if err != nil {
			return fmt.Errorf("%w: load bookings: %w", ErrInternal, err)
		}

		s := &session{
			ctx:      txCtx,
			uc:       uc,
			now:      uc.timeProvider.Now(),
			bookings: bookings,
			loaded:   make(map[string]bool),
		}

		if err := fn(s); err != nil {
			return err
		}

		if len(s.changed) > 0 {
			if err := uc.bookings.PersistBookings(txCtx, s.changed); err != nil {
				return fmt.Errorf("%w: persist bookings: %w", ErrInternal, err)
			}
		}
		if s.blackoutsDirty {
			if err := uc.calendar.PersistBlackouts(txCtx, s.blackouts); err != nil {
				return fmt.Errorf("%w: persist blackouts: %w", ErrInternal, err)
			}
		}
		for _, after := range s.afterPersist {
			if err := after(txCtx); err != nil {
				return err
			}
		}
		for _, entry := range s.entries {
			if _, err := uc.audit.Append(txCtx, entry); err != nil {
				return fmt.Errorf("%w: append audit entry: %w", ErrInternal, err)
			}
		}
		return nil
	})

	uc.record(action, err)
	return err
}

func (uc *UseCase) record(action string, err error) {
	if uc.metrics == nil {
		return
	}
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrInternal):
		result = "error"
	default:
		result = "rejected"
	}
	uc.metrics.RecordTransition(action, result)
}

// logResult пишет итог операции: Warn для бизнес-отказов, Error для сбоев хранилища
func (uc *UseCase) logResult(op, bookingID string, err error) {
	if err == nil {
		uc.logger.Info("%s: booking=%s done", op, bookingID)
		return
	}
	if errors.Is(err, ErrInternal) {
		uc.logger.Error("%s: booking=%s failed: %v", op, bookingID, err)
		return
	}
	uc.logger.Warn("%s: booking=%s rejected: %v", op, bookingID, err)
}

func (uc *UseCase) newShortCode(existing []*domain.Booking) string {
	taken := make(map[string]bool, len(existing))
	for _, b := range existing {
		taken[b.ShortCode] = true
	}
	for {
		raw := strings.ToUpper(strings.ReplaceAll(uc.newID(), "-", ""))
		if len(raw) < domain.ShortCodeLength {
			raw += strings.Repeat("0", domain.ShortCodeLength)
		}
		code := domain.ShortCodePrefix + raw[:domain.ShortCodeLength]
		if !taken[code] {
			return code
		}
	}
}

func describe(b *domain.Booking) string {
	if b.ShortCode != "" {
		return b.ShortCode
	}
	return b.ID
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
