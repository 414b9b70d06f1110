package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

// Service сервис для чтения бронирований и простых смен статуса из API
type Service struct {
	lifecycle Lifecycle
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(lifecycle Lifecycle, logger Logger) *Service {
	return &Service{
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// GetByID получает бронирование по ID или короткому коду.
// Клиент может видеть только своё бронирование.
func (s *Service) GetByID(ctx context.Context, id string, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for actor=%s", id, actor)

	booking, err := s.lifecycle.Get(ctx, id, actor)
	if err != nil {
		return nil, s.translate("GetByID", id, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", booking.ID)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента.
// Опционально фильтрует по статусу.
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%s, status=%v", req.CustomerID, req.Status)

	if strings.TrimSpace(req.CustomerID) == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		CustomerID:      &req.CustomerID,
		IncludeInactive: req.IncludeInactive,
	}
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%s", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
		filter.IncludeInactive = true
	}

	bookings, err := s.lifecycle.List(ctx, filter)
	if err != nil {
		return nil, s.translate("GetCustomerBookings", req.CustomerID, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%s", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBookings получает бронирования салона с гибкой фильтрацией (для администратора)
func (s *Service) GetBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "GetBookings: fetching bookings"
	if req.GroomerID != nil {
		logMsg += fmt.Sprintf(", groomer=%s", *req.GroomerID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.lifecycle.List(ctx, filter)
	if err != nil {
		return nil, s.translate("GetBookings", "-", err)
	}

	s.logger.Info("GetBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetDayView обзор дня: брони по слотам и загрузка грумеров
func (s *Service) GetDayView(ctx context.Context, date time.Time) (*models.DayViewResponse, error) {
	s.logger.Info("GetDayView: date=%s", date.Format(domain.DateFormat))

	view, err := s.lifecycle.DayView(ctx, date)
	if err != nil {
		return nil, s.translate("GetDayView", "-", err)
	}

	resp := &models.DayViewResponse{
		Date:     view.Date.Format(domain.DateFormat),
		Bookings: models.FromDomainBookingList(view.Bookings).Bookings,
		Load:     make([]models.GroomerLoadResponse, 0, len(view.Load)),
	}
	if view.Closed != nil {
		resp.Closed = true
		resp.ClosedReason = view.Closed.Reason
	}
	for _, row := range view.Load {
		slots := make(map[string]string, len(row.Slots))
		for slot, id := range row.Slots {
			slots[string(slot)] = id
		}
		resp.Load = append(resp.Load, models.GroomerLoadResponse{
			GroomerID:   row.Groomer.ID,
			GroomerName: row.Groomer.Name,
			DailyCount:  row.DailyCount,
			Capacity:    row.Capacity,
			Absent:      row.Absent,
			Slots:       slots,
		})
	}
	return resp, nil
}

// GetHistory возвращает журнал изменений брони
func (s *Service) GetHistory(ctx context.Context, id string, actor domain.Actor) (*models.HistoryResponse, error) {
	s.logger.Info("GetHistory: booking=%s, actor=%s", id, actor)

	entries, err := s.lifecycle.History(ctx, id, actor)
	if err != nil {
		return nil, s.translate("GetHistory", id, err)
	}
	return models.FromAuditEntries(id, entries), nil
}

// Cancel отменяет бронирование.
// Клиент отменяет только своё (cancelled_by_customer), администратор любое (cancelled_by_admin).
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by actor=%s", id, req.Actor)

	booking, err := s.lifecycle.Cancel(ctx, &lifecycle.CancelRequest{
		BookingID: id,
		Note:      req.CancellationReason,
		Actor:     req.Actor,
	})
	if err != nil {
		return nil, s.translate("Cancel", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s with status=%s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// UpdateStatus переводит бронирование в указанный статус через соответствующий переход.
// Доступно только администратору.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s by actor=%s", id, req.Status, req.Actor)

	if req.Actor.IsCustomer() {
		s.logger.Warn("UpdateStatus: customer=%s tried to change booking id=%s", req.Actor.ID, id)
		return nil, ErrAccessDenied
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	var booking *domain.Booking
	switch status {
	case domain.StatusConfirmed:
		booking, err = s.lifecycle.Confirm(ctx, id, req.Actor)
	case domain.StatusInProgress:
		booking, err = s.lifecycle.Start(ctx, id, req.Actor)
	case domain.StatusCompleted:
		booking, err = s.lifecycle.Complete(ctx, id, req.Notes, req.Actor)
	case domain.StatusNoShow:
		booking, err = s.lifecycle.MarkNoShow(ctx, id, req.Actor)
	case domain.StatusCancelledByAdmin:
		booking, err = s.lifecycle.Cancel(ctx, &lifecycle.CancelRequest{BookingID: id, Note: req.Notes, Actor: req.Actor})
	default:
		s.logger.Warn("UpdateStatus: status=%s cannot be set directly", status)
		return nil, fmt.Errorf("%w: %s cannot be set directly", ErrInvalidStatus, status)
	}
	if err != nil {
		return nil, s.translate("UpdateStatus", id, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// translate приводит ошибки жизненного цикла к ошибкам сервиса.
// Доменные ошибки переходов возвращаются без изменений.
func (s *Service) translate(op, id string, err error) error {
	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return ErrBookingNotFound
	case errors.Is(err, lifecycle.ErrAccessDenied):
		s.logger.Warn("%s: access denied to booking id=%s", op, id)
		return ErrAccessDenied
	case errors.Is(err, lifecycle.ErrInternal):
		s.logger.Error("%s: lifecycle error for id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - lifecycle error: %v", ErrInternal, op, err)
	default:
		return err
	}
}
