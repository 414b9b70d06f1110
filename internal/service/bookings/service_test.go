package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
	"github.com/bestbuddies/grooming-booking/internal/service/scheduling"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
	"github.com/bestbuddies/grooming-booking/pkg/ptr"
)

type mockLifecycle struct {
	mock.Mock
}

func (m *mockLifecycle) booking(args mock.Arguments) (*domain.Booking, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockLifecycle) Get(ctx context.Context, id string, actor domain.Actor) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, id, actor))
}

func (m *mockLifecycle) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockLifecycle) History(ctx context.Context, id string, actor domain.Actor) ([]*domain.AuditEntry, error) {
	args := m.Called(ctx, id, actor)
	return args.Get(0).([]*domain.AuditEntry), args.Error(1)
}

func (m *mockLifecycle) DayView(ctx context.Context, date time.Time) (*lifecycle.DayView, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(*lifecycle.DayView), args.Error(1)
}

func (m *mockLifecycle) Cancel(ctx context.Context, req *lifecycle.CancelRequest) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, req))
}

func (m *mockLifecycle) Confirm(ctx context.Context, id string, actor domain.Actor) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, id, actor))
}

func (m *mockLifecycle) Start(ctx context.Context, id string, actor domain.Actor) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, id, actor))
}

func (m *mockLifecycle) Complete(ctx context.Context, id, notes string, actor domain.Actor) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, id, notes, actor))
}

func (m *mockLifecycle) MarkNoShow(ctx context.Context, id string, actor domain.Actor) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, id, actor))
}

var (
	admin    = domain.Actor{ID: "admin-1", Kind: domain.ActorAdmin}
	customer = domain.Actor{ID: "c-1", Kind: domain.ActorCustomer}
	day      = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func sample(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         "b-1",
		ShortCode:  "BB-ABC123",
		CustomerID: "c-1",
		Pet:        domain.Pet{Name: "Rex"},
		Date:       day,
		Slot:       domain.SlotMorning,
		Status:     status,
		Cost:       domain.CostSnapshot{Subtotal: 880, BookingFee: 100, BalanceOnVisit: 780, TotalAmount: 880},
		TotalPrice: 880,
	}
}

func TestGetByID_MapsBooking(t *testing.T) {
	ctx := context.Background()
	lc := &mockLifecycle{}
	lc.On("Get", ctx, "BB-ABC123", customer).Return(sample(domain.StatusPending), nil)

	resp, err := NewService(lc, logger.NewNop()).GetByID(ctx, "BB-ABC123", customer)
	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "2024-06-01", resp.BookingDate)
	assert.Equal(t, "9am-12pm", resp.TimeSlot)
	assert.Equal(t, 780.0, resp.Cost.BalanceOnVisit)
	assert.NotNil(t, resp.AddOns)
}

func TestGetByID_TranslatesErrors(t *testing.T) {
	ctx := context.Background()
	lc := &mockLifecycle{}
	lc.On("Get", ctx, "missing", customer).Return(nil, domain.ErrBookingNotFound)
	lc.On("Get", ctx, "foreign", customer).Return(nil, lifecycle.ErrAccessDenied)
	lc.On("Get", ctx, "broken", customer).Return(nil, lifecycle.ErrInternal)
	svc := NewService(lc, logger.NewNop())

	_, err := svc.GetByID(ctx, "missing", customer)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	_, err = svc.GetByID(ctx, "foreign", customer)
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = svc.GetByID(ctx, "broken", customer)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetCustomerBookings_StatusFilter(t *testing.T) {
	ctx := context.Background()
	lc := &mockLifecycle{}
	lc.On("List", ctx, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return *f.CustomerID == "c-1" && *f.Status == domain.StatusCancelledByCustomer && f.IncludeInactive
	})).Return([]*domain.Booking{sample(domain.StatusCancelledByCustomer)}, nil)

	resp, err := NewService(lc, logger.NewNop()).GetCustomerBookings(ctx, &models.GetCustomerBookingsRequest{
		CustomerID: "c-1",
		Status:     ptr.Ptr("Cancelled By Customer"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	_, err = NewService(lc, logger.NewNop()).GetCustomerBookings(ctx, &models.GetCustomerBookingsRequest{
		CustomerID: "c-1",
		Status:     ptr.Ptr("teleported"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_DispatchesTransition(t *testing.T) {
	ctx := context.Background()
	lc := &mockLifecycle{}
	lc.On("Confirm", ctx, "b-1", admin).Return(sample(domain.StatusConfirmed), nil).Once()
	lc.On("Complete", ctx, "b-1", "done", admin).Return(sample(domain.StatusCompleted), nil).Once()
	svc := NewService(lc, logger.NewNop())

	resp, err := svc.UpdateStatus(ctx, "b-1", &models.UpdateStatusRequest{Actor: admin, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	resp, err = svc.UpdateStatus(ctx, "b-1", &models.UpdateStatusRequest{Actor: admin, Status: "completed", Notes: "done"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	_, err = svc.UpdateStatus(ctx, "b-1", &models.UpdateStatusRequest{Actor: admin, Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "b-1", &models.UpdateStatusRequest{Actor: customer, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	lc.AssertExpectations(t)
}

func TestUpdateStatus_PassesTransitionErrorThrough(t *testing.T) {
	ctx := context.Background()
	lc := &mockLifecycle{}
	b := sample(domain.StatusPending)
	lc.On("Confirm", ctx, "b-1", admin).
		Return(nil, domain.PreconditionFailed(b, "confirm", "assign a groomer before confirming"))

	_, err := NewService(lc, logger.NewNop()).UpdateStatus(ctx, "b-1", &models.UpdateStatusRequest{Actor: admin, Status: "confirmed"})
	require.ErrorIs(t, err, domain.ErrPreconditionFailed)

	var te *domain.TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, domain.StatusPending, te.Current)
}

func TestGetDayView(t *testing.T) {
	ctx := context.Background()
	lc := &mockLifecycle{}
	g := &domain.Groomer{ID: "g-X", Name: "X"}
	lc.On("DayView", ctx, day).Return(&lifecycle.DayView{
		Date:     day,
		Bookings: []*domain.Booking{sample(domain.StatusConfirmed)},
		Load: []scheduling.GroomerLoad{{
			Groomer: g, DailyCount: 1, Capacity: 3,
			Slots: map[domain.TimeSlot]string{domain.SlotMorning: "b-1"},
		}},
		Closed: &domain.CalendarBlackout{Date: day, Reason: "Holiday"},
	}, nil)

	resp, err := NewService(lc, logger.NewNop()).GetDayView(ctx, day)
	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Equal(t, "Holiday", resp.ClosedReason)
	require.Len(t, resp.Load, 1)
	assert.Equal(t, "b-1", resp.Load[0].Slots["9am-12pm"])
}
