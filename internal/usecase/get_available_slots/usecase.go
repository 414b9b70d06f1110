package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/calendar"
	"github.com/bestbuddies/grooming-booking/internal/service/scheduling"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	staffRepo    StaffRepository
	calendarRepo CalendarRepository
	scheduler    *scheduling.Engine
	policy       *calendar.Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	calendarRepo CalendarRepository,
	scheduler *scheduling.Engine,
	policy *calendar.Policy,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		staffRepo:    staffRepo,
		calendarRepo: calendarRepo,
		scheduler:    scheduler,
		policy:       policy,
		timeProvider: &RealTimeProvider{Location: loc},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: customer=%s, date=%s", req.CustomerID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.policy.Local(uc.timeProvider.Now())

	// 2. Валидация даты
	if err := validateDate(req.Date, now, uc.policy); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	date := domain.DayOf(req.Date)
	resp := &Response{Date: date, Slots: []Slot{}}

	// 3. Закрытый день - слотов нет
	blackouts, err := uc.calendarRepo.LoadBlackouts(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
	}
	if b, ok := uc.policy.Find(date, blackouts); ok {
		uc.logger.Info("GetAvailableSlots: date %s is closed: %s", date.Format(domain.DateFormat), b.Reason)
		resp.Closed = true
		resp.ClosedReason = b.Reason
		return resp, nil
	}

	// 4. Грумеры, отсутствия и брони
	groomers, err := uc.staffRepo.LoadGroomers(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get groomers: %v", err)
		return nil, fmt.Errorf("%w: failed to get groomers: %v", ErrInternal, err)
	}
	absences, err := uc.staffRepo.LoadAbsences(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get absences: %v", err)
		return nil, fmt.Errorf("%w: failed to get absences: %v", ErrInternal, err)
	}
	bookings, err := uc.bookingRepo.LoadBookings(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Вычисляем доступность для каждого слота
	for _, summary := range uc.scheduler.SlotAvailability(date, groomers, bookings, absences) {
		slot := Slot{
			Slot:              summary.Slot,
			StartTime:         summary.Slot.Start(date).Format("15:04"),
			EndTime:           summary.Slot.End(date).Format("15:04"),
			AvailableGroomers: summary.AvailableGroomers,
			TotalGroomers:     summary.TotalGroomers,
			Bookable:          true,
		}

		if err := uc.policy.ValidateDate("get_slots", date, summary.Slot, now, nil); err != nil {
			slot.Bookable = false
			slot.Reason = "booking cutoff has passed"
		} else if summary.IsFull() {
			slot.Bookable = false
			slot.Reason = "fully booked"
		}

		resp.Slots = append(resp.Slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s", len(resp.Slots), date.Format(domain.DateFormat))
	return resp, nil
}
