package conduct

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Service политика предупреждений и блокировок клиентов
type Service struct {
	mu           sync.Mutex
	repo         ConductRepository
	opts         Options
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис политики поведения. metrics может быть nil.
func NewService(repo ConductRepository, opts Options, metrics Metrics, logger Logger) *Service {
	if opts.HardLimit <= 0 {
		opts.HardLimit = domain.DefaultWarningHardLimit
	}
	if opts.WatchThreshold <= 0 {
		opts.WatchThreshold = domain.DefaultWarningThreshold
	}
	return &Service{
		repo:         repo,
		opts:         opts,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// BanLiftFee сумма, которую клиент платит за снятие блокировки
func (s *Service) BanLiftFee() float64 {
	return s.opts.BanLiftFee
}

// HardLimit количество предупреждений, после которого допустима блокировка
func (s *Service) HardLimit() int {
	return s.opts.HardLimit
}

// Get возвращает запись клиента
func (s *Service) Get(ctx context.Context, customerID string) (*domain.ConductRecord, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	record, err := s.repo.LoadConductRecord(ctx, customerID)
	if err != nil {
		s.logger.Error("Conduct.Get: failed to load record customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: Get - load record: %v", ErrInternal, err)
	}
	return record, nil
}

// EnsureCanBook отклоняет забаненных клиентов на входе в создание бронирования
func (s *Service) EnsureCanBook(ctx context.Context, customerID string) error {
	record, err := s.Get(ctx, customerID)
	if err != nil {
		return err
	}
	if record.IsBanned {
		reason := ""
		if record.BanReason != nil {
			reason = *record.BanReason
		}
		s.logger.Warn("Conduct.EnsureCanBook: customer=%s is banned (%s)", customerID, reason)
		return fmt.Errorf("%w: customer %s: %s", domain.ErrAccountBanned, customerID, reason)
	}
	return nil
}

// AddWarning увеличивает счётчик предупреждений на 1.
// Достижение жёсткого лимита само по себе не блокирует клиента.
func (s *Service) AddWarning(ctx context.Context, req WarningRequest) (*domain.ConductRecord, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" || len(reason) > domain.MaxWarningReasonLength {
		return nil, fmt.Errorf("%w: warning reason must be 1..%d characters", ErrInvalidInput, domain.MaxWarningReasonLength)
	}

	return s.update(ctx, req.CustomerID, "warning", func(record *domain.ConductRecord) error {
		now := s.timeProvider.Now()
		record.WarningCount++
		record.Warnings = append(record.Warnings, domain.WarningEntry{
			Reason:    reason,
			BookingID: req.BookingID,
			IssuedBy:  req.IssuedBy,
			IssuedAt:  now,
		})
		record.LastWarningAt = &now

		if record.WarningCount >= s.opts.HardLimit {
			s.logger.Warn("Conduct.AddWarning: customer=%s reached %d/%d warnings, ban requires explicit action",
				req.CustomerID, record.WarningCount, s.opts.HardLimit)
		}
		return nil
	})
}

// Ban блокирует клиента
func (s *Service) Ban(ctx context.Context, req BanRequest) (*domain.ConductRecord, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: ban reason is required", ErrInvalidInput)
	}

	return s.update(ctx, req.CustomerID, "ban", func(record *domain.ConductRecord) error {
		now := s.timeProvider.Now()
		record.IsBanned = true
		record.BanReason = &reason
		record.BannedAt = &now
		return nil
	})
}

// EnforceLimit блокирует клиента, если он набрал жёсткий лимит предупреждений.
// Возвращает true, если блокировка была установлена этим вызовом.
func (s *Service) EnforceLimit(ctx context.Context, customerID, actor string) (*domain.ConductRecord, bool, error) {
	banned := false
	record, err := s.update(ctx, customerID, "enforce", func(record *domain.ConductRecord) error {
		if record.IsBanned || record.WarningCount < s.opts.HardLimit {
			return errNoChange
		}
		now := s.timeProvider.Now()
		reason := fmt.Sprintf("Reached %d warnings", record.WarningCount)
		record.IsBanned = true
		record.BanReason = &reason
		record.BannedAt = &now
		banned = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if banned {
		s.logger.Info("Conduct.EnforceLimit: customer=%s banned by policy (actor=%s)", customerID, actor)
	}
	return record, banned, nil
}

// LiftBan снимает блокировку после подтверждения оплаты и обнуляет предупреждения
func (s *Service) LiftBan(ctx context.Context, req LiftBanRequest) (*domain.ConductRecord, error) {
	if !req.FeePaid {
		s.logger.Warn("Conduct.LiftBan: customer=%s fee payment not acknowledged", req.CustomerID)
		return nil, domain.PreconditionFailed(nil, "lift_ban",
			fmt.Sprintf("ban-lift fee of %.2f must be acknowledged as paid", s.opts.BanLiftFee))
	}

	return s.update(ctx, req.CustomerID, "lift", func(record *domain.ConductRecord) error {
		if !record.IsBanned {
			return domain.PreconditionFailed(nil, "lift_ban", "customer is not banned")
		}
		now := s.timeProvider.Now()
		record.IsBanned = false
		record.BanReason = nil
		record.BannedAt = nil
		record.WarningCount = 0
		record.LiftedAt = &now
		return nil
	})
}

// NeedsReview классифицирует запись для админского списка
func (s *Service) NeedsReview(record *domain.ConductRecord) ReviewLevel {
	switch {
	case record == nil:
		return ReviewNone
	case record.IsBanned:
		return ReviewBanned
	case record.WarningCount >= s.opts.HardLimit:
		return ReviewAtLimit
	case record.WarningCount >= s.opts.WatchThreshold:
		return ReviewWatchlist
	default:
		return ReviewNone
	}
}

// ListForReview возвращает клиентов, требующих внимания администратора:
// забаненных, достигших лимита и попавших в список наблюдения
func (s *Service) ListForReview(ctx context.Context) ([]ReviewItem, error) {
	records, err := s.repo.ListConductRecords(ctx)
	if err != nil {
		s.logger.Error("Conduct.ListForReview: failed to list records: %v", err)
		return nil, fmt.Errorf("%w: ListForReview - list records: %v", ErrInternal, err)
	}

	items := make([]ReviewItem, 0)
	for _, r := range records {
		if level := s.NeedsReview(r); level != ReviewNone {
			items = append(items, ReviewItem{Record: r, Level: level})
		}
	}
	return items, nil
}

// errNoChange внутренний маркер: запись не изменилась и не сохраняется
var errNoChange = errors.New("conduct: no change")

func (s *Service) update(ctx context.Context, customerID, event string, mutate func(*domain.ConductRecord) error) (*domain.ConductRecord, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.repo.LoadConductRecord(ctx, customerID)
	if err != nil {
		s.logger.Error("Conduct.%s: failed to load record customer=%s: %v", event, customerID, err)
		return nil, fmt.Errorf("%w: %s - load record: %v", ErrInternal, event, err)
	}

	working := record.Clone()
	if err := mutate(working); err != nil {
		if errors.Is(err, errNoChange) {
			return record, nil
		}
		return nil, err
	}
	working.UpdatedAt = s.timeProvider.Now()

	if err := s.repo.PersistConductRecord(ctx, working); err != nil {
		s.logger.Error("Conduct.%s: failed to persist record customer=%s: %v", event, customerID, err)
		return nil, fmt.Errorf("%w: %s - persist record: %v", ErrInternal, event, err)
	}

	if s.metrics != nil {
		s.metrics.RecordConduct(event)
	}
	s.logger.Info("Conduct.%s: customer=%s warnings=%d banned=%t", event, customerID, working.WarningCount, working.IsBanned)
	return working, nil
}
