package audit

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Log журнал изменений бронирований. Только добавление, без правок и удаления.
type Log struct {
	repo         AuditRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewLog создает журнал аудита
func NewLog(repo AuditRepository, logger Logger) *Log {
	return &Log{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (l *Log) WithTimeProvider(tp TimeProvider) *Log {
	l.timeProvider = tp
	return l
}

// Append добавляет запись, заполняя ID и время, если они не заданы
func (l *Log) Append(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error) {
	if strings.TrimSpace(entry.BookingID) == "" || strings.TrimSpace(entry.Action) == "" {
		return nil, fmt.Errorf("%w: booking id and action are required", ErrInvalidEntry)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = l.timeProvider.Now()
	}
	if entry.Actor == "" {
		entry.Actor = domain.ActorSystem
	}

	if err := l.repo.AppendAuditEntry(ctx, &entry); err != nil {
		l.logger.Error("Audit.Append: booking=%s action=%s: %v", entry.BookingID, entry.Action, err)
		return nil, fmt.Errorf("%w: Append - repository error: %v", ErrInternal, err)
	}
	return &entry, nil
}

// List возвращает записи (по одной брони или все) в хронологическом порядке
func (l *Log) List(ctx context.Context, bookingID *string) ([]*domain.AuditEntry, error) {
	entries, err := l.repo.LoadAuditEntries(ctx, bookingID)
	if err != nil {
		l.logger.Error("Audit.List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}
