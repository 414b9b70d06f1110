package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/infra/storage/memory"
	"github.com/bestbuddies/grooming-booking/internal/service/audit"
	"github.com/bestbuddies/grooming-booking/internal/service/calendar"
	"github.com/bestbuddies/grooming-booking/internal/service/conduct"
	"github.com/bestbuddies/grooming-booking/internal/service/pricing"
	"github.com/bestbuddies/grooming-booking/internal/service/scheduling"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
	"github.com/bestbuddies/grooming-booking/pkg/metrics"
	"github.com/bestbuddies/grooming-booking/pkg/ptr"
	"github.com/bestbuddies/grooming-booking/pkg/txmanager"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var (
	clock = fixedClock{now: time.Date(2024, 5, 30, 8, 0, 0, 0, time.UTC)}
	day   = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	admin = domain.Actor{ID: "admin-1", Kind: domain.ActorAdmin}
)

type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) next() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return fmt.Sprintf("id-%04d", c.n)
}

type fixture struct {
	store   *memory.Store
	uc      *UseCase
	conduct *conduct.Service
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	for i, name := range []string{"X", "Y", "Z"} {
		require.NoError(t, store.SaveGroomer(ctx, &domain.Groomer{
			ID: "g-" + name, Name: name, MaxDailyBookings: 3, Order: i, Active: true,
		}))
	}
	require.NoError(t, store.SaveCatalog(ctx, &domain.Catalog{
		Packages: []domain.Package{{
			ID:    "full-groom",
			Name:  "Full Groom",
			Tiers: []domain.PriceTier{{Label: "Small", Price: 500}, {Label: "Large", Price: 800}},
		}, {
			ID:    "bath-brush",
			Name:  "Bath & Brush",
			Tiers: []domain.PriceTier{{Label: "Small", Price: 300}, {Label: "Large", Price: 450}},
		}},
		AddOns: []domain.AddOn{
			{Key: "toothbrush", Label: "Toothbrush", Price: 25},
			{Key: "dematting", Label: "Dematting", Price: 80},
		},
		WeightBrackets: []domain.WeightBracket{
			{Label: "Small", MinKg: 0, MaxKg: 15},
			{Label: "Large", MinKg: 15},
		},
	}))

	log := logger.NewNop()
	m := metrics.NewWithRegisterer("grooming-booking", prometheus.NewRegistry())
	conductSvc := conduct.NewService(store, conduct.Options{HardLimit: 5, WatchThreshold: 3, BanLiftFee: 500}, m, log).
		WithTimeProvider(clock)
	auditLog := audit.NewLog(store, log).WithTimeProvider(clock)

	uc := NewUseCase(Deps{
		Bookings:  store,
		Staff:     store,
		Calendar:  store,
		Catalog:   store,
		Conduct:   conductSvc,
		Audit:     auditLog,
		TxManager: txmanager.Noop{},
		Scheduler: scheduling.NewEngine(3, scheduling.LeastLoaded{}),
		Pricer:    pricing.NewEngine(pricing.Options{BookingFee: 100, SingleServiceThresholdKg: 15}),
		Policy:    calendar.NewPolicy(30).WithAdvanceWindow(30),
		Metrics:   m,
		Logger:    log,
	}).WithTimeProvider(clock)
	ids := &counter{}
	uc.newID = ids.next

	return &fixture{store: store, uc: uc, conduct: conductSvc, metrics: m}
}

func (f *fixture) create(t *testing.T, customerID string, date time.Time, slot domain.TimeSlot, groomerID *string) *domain.Booking {
	t.Helper()
	resp, err := f.uc.Create(context.Background(), &CreateRequest{
		CustomerID:   customerID,
		CustomerName: "Customer " + customerID,
		Pet:          domain.Pet{Name: "Rex", Species: "dog", WeightBracket: "Large"},
		PackageID:    "full-groom",
		AddOnKeys:    []string{"dematting"},
		Date:         date,
		Slot:         slot,
		GroomerID:    groomerID,
		Actor:        admin,
	})
	require.NoError(t, err)
	return resp.Booking
}

func (f *fixture) history(t *testing.T, id string) []*domain.AuditEntry {
	t.Helper()
	entries, err := f.uc.History(context.Background(), id, admin)
	require.NoError(t, err)
	return entries
}

func TestCreate_PendingWithQuote(t *testing.T) {
	f := newFixture(t)

	b := f.create(t, "c-1", day, domain.SlotMorning, nil)

	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Regexp(t, `^BB-[0-9A-Z]{6}$`, b.ShortCode)
	assert.Equal(t, "Full Groom", b.PackageName)
	assert.Equal(t, 880.0, b.Cost.Subtotal)
	assert.Equal(t, 100.0, b.Cost.BookingFee)
	assert.Equal(t, 780.0, b.Cost.BalanceOnVisit)
	assert.Equal(t, 880.0, b.TotalPrice)
	assert.Nil(t, b.GroomerID)

	entries := f.history(t, b.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionCreated, entries[0].Action)
	assert.Equal(t, "admin:admin-1", entries[0].Actor)
}

func TestCreate_RejectsBannedCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.conduct.Ban(ctx, conduct.BanRequest{CustomerID: "c-1", Reason: "abuse", Actor: "admin:admin-1"})
	require.NoError(t, err)

	_, err = f.uc.Create(ctx, &CreateRequest{
		CustomerID:   "c-1",
		CustomerName: "Banned",
		Pet:          domain.Pet{Name: "Rex", WeightBracket: "Small"},
		PackageID:    "full-groom",
		Date:         day,
		Slot:         domain.SlotMorning,
		Actor:        domain.Actor{ID: "c-1", Kind: domain.ActorCustomer},
	})
	assert.ErrorIs(t, err, domain.ErrAccountBanned)

	all, err := f.uc.List(ctx, domain.BookingsFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreate_SameDayCutoff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	// утренний слот заканчивается в 12:00, запись закрыта с 11:30
	f.uc.WithTimeProvider(fixedClock{now: time.Date(2024, 6, 1, 11, 40, 0, 0, time.UTC)})

	req := &CreateRequest{
		CustomerID:   "c-1",
		CustomerName: "Late",
		Pet:          domain.Pet{Name: "Rex", WeightBracket: "Small"},
		PackageID:    "full-groom",
		Date:         day,
		Slot:         domain.SlotMorning,
		Actor:        admin,
	}
	_, err := f.uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)

	req.Source = domain.SourceWalkIn
	resp, err := f.uc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceWalkIn, resp.Booking.Source)
}

func TestCreate_AutoAssignLeavesUnassignedWhenFull(t *testing.T) {
	f := newFixture(t)
	for _, g := range []string{"g-X", "g-Y", "g-Z"} {
		f.create(t, "c-"+g, day, domain.SlotMorning, ptr.Ptr(g))
	}

	resp, err := f.uc.Create(context.Background(), &CreateRequest{
		CustomerID:   "c-9",
		CustomerName: "Nine",
		Pet:          domain.Pet{Name: "Mia", WeightBracket: "Small"},
		PackageID:    "full-groom",
		Date:         day,
		Slot:         domain.SlotMorning,
		AutoAssign:   true,
		Actor:        admin,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Booking.GroomerID)
	assert.NotEmpty(t, resp.Warnings)
}

func TestConfirm_RequiresGroomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "c-1", day, domain.SlotMorning, nil)

	_, err := f.uc.Confirm(ctx, b.ID, admin)
	require.ErrorIs(t, err, domain.ErrPreconditionFailed)

	var te *domain.TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, domain.StatusPending, te.Current)
	assert.Equal(t, ActionConfirm, te.Action)

	got, err := f.uc.Get(ctx, b.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Len(t, f.history(t, b.ID), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingTransitions.WithLabelValues(ActionConfirm, "rejected")))
}

func TestLifecycle_HappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "c-1", day, domain.SlotMorning, nil)

	b, err := f.uc.AutoAssign(ctx, b.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, "g-X", *b.GroomerID)

	b, err = f.uc.Confirm(ctx, b.ShortCode, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)

	b, err = f.uc.Start(ctx, b.ID, admin)
	require.NoError(t, err)
	require.NotNil(t, b.StartedAt)

	b, err = f.uc.Complete(ctx, b.ID, "all good", admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, b.Status)
	assert.True(t, b.Cost.Locked)
	assert.Equal(t, "all good", *b.CompletionNote)

	_, err = f.uc.Cancel(ctx, &CancelRequest{BookingID: b.ID, Actor: admin})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	actions := make([]string, 0)
	for _, e := range f.history(t, b.ID) {
		actions = append(actions, e.Action)
	}
	assert.Equal(t, []string{
		domain.AuditActionCreated,
		domain.AuditActionGroomerAssigned,
		domain.AuditActionConfirmed,
		domain.AuditActionServiceStarted,
		domain.AuditActionCompleted,
	}, actions)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingTransitions.WithLabelValues(ActionComplete, "ok")))
}

func TestAssign_CapacityExceeded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, slot := range domain.AllSlots() {
		f.create(t, "c-1", day, slot, ptr.Ptr("g-X"))
	}
	b := f.create(t, "c-2", day, domain.SlotMorning, nil)

	_, err := f.uc.AssignGroomer(ctx, b.ID, "g-X", admin)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	var te *domain.TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "g-X", te.GroomerID)
	assert.Len(t, f.history(t, b.ID), 1)
}

func TestAssign_AbsentGroomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.SaveAbsence(ctx, &domain.Absence{
		ID: "a-1", GroomerID: "g-Y", Date: day, Status: domain.AbsenceApproved,
	}))
	b := f.create(t, "c-1", day, domain.SlotMidday, nil)

	_, err := f.uc.AssignGroomer(ctx, b.ID, "g-Y", admin)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	_, err = f.uc.AssignGroomer(ctx, b.ID, "g-unknown", admin)
	assert.ErrorIs(t, err, domain.ErrGroomerNotFound)
}

func TestReschedule_TwoStepConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b1 := f.create(t, "c-1", day, domain.SlotMorning, ptr.Ptr("g-Y"))
	_, err := f.uc.Confirm(ctx, b1.ID, admin)
	require.NoError(t, err)

	b2 := f.create(t, "c-2", day.AddDate(0, 0, 1), domain.SlotMidday, ptr.Ptr("g-X"))
	_, err = f.uc.Confirm(ctx, b2.ID, admin)
	require.NoError(t, err)

	req := &RescheduleRequest{
		BookingID: b2.ID,
		Date:      day,
		Slot:      domain.SlotMorning,
		GroomerID: ptr.Ptr("g-Y"),
		Actor:     admin,
	}
	_, err = f.uc.Reschedule(ctx, req)
	require.ErrorIs(t, err, domain.ErrSlotConflict)

	var te *domain.TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, b1.ID, te.ConflictingBookingID)

	unchanged, err := f.uc.Get(ctx, b2.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, unchanged.Status)

	req.CancelConflicting = true
	moved, err := f.uc.Reschedule(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, moved.Status)
	assert.Equal(t, "g-Y", *moved.GroomerID)
	assert.True(t, domain.SameDay(day, moved.Date))
	require.NotNil(t, moved.RescheduledFrom)

	cancelled, err := f.uc.Get(ctx, b1.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByAdmin, cancelled.Status)
	require.NotNil(t, cancelled.CancellationNote)
	assert.Contains(t, *cancelled.CancellationNote, b2.ShortCode)

	b1History := f.history(t, b1.ID)
	assert.Equal(t, domain.AuditActionCancelled, b1History[len(b1History)-1].Action)
}

func TestReschedule_PackageChangeRequotes(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, "c-1", day, domain.SlotMorning, nil)

	moved, err := f.uc.Reschedule(context.Background(), &RescheduleRequest{
		BookingID: b.ID,
		Date:      day,
		Slot:      domain.SlotAfternoon,
		PackageID: ptr.Ptr("bath-brush"),
		Actor:     admin,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bath & Brush", moved.PackageName)
	assert.Equal(t, 530.0, moved.TotalPrice)
	assert.Equal(t, domain.SlotAfternoon, moved.Slot)
}

func TestCloseDate_CascadesOnlyThatDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	onDay := f.create(t, "c-1", day, domain.SlotMorning, nil)
	other := f.create(t, "c-2", day.AddDate(0, 0, 1), domain.SlotMorning, nil)

	resp, err := f.uc.CloseDate(ctx, &CloseDateRequest{Date: day, Reason: "Holiday", Actor: admin})
	require.NoError(t, err)
	require.Len(t, resp.Cancelled, 1)

	got, err := f.uc.Get(ctx, onDay.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByAdmin, got.Status)
	assert.Equal(t, "Closed day: Holiday", *got.CancellationNote)

	got, err = f.uc.Get(ctx, other.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)

	_, err = f.uc.CloseDate(ctx, &CloseDateRequest{Date: day, Reason: "Again", Actor: admin})
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)

	_, err = f.uc.Create(ctx, &CreateRequest{
		CustomerID: "c-3", CustomerName: "Three", Pet: domain.Pet{Name: "Bo", WeightBracket: "Small"},
		PackageID: "full-groom", Date: day, Slot: domain.SlotAfternoon, Actor: admin,
	})
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)

	closed, err := f.uc.Blackouts(ctx)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, "Holiday", closed[0].Reason)

	require.NoError(t, f.uc.ReopenDate(ctx, day, admin))
	assert.ErrorIs(t, f.uc.ReopenDate(ctx, day, admin), ErrBlackoutNotFound)
}

func TestAddOns_TotalStaysAdditive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "c-1", day, domain.SlotMorning, ptr.Ptr("g-X"))

	_, err := f.uc.AddAddOn(ctx, &AddOnRequest{BookingID: b.ID, Key: "toothbrush", Actor: admin})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.uc.Confirm(ctx, b.ID, admin)
	require.NoError(t, err)
	_, err = f.uc.Start(ctx, b.ID, admin)
	require.NoError(t, err)

	b, err = f.uc.AddAddOn(ctx, &AddOnRequest{BookingID: b.ID, Key: "toothbrush", Actor: admin})
	require.NoError(t, err)
	b, err = f.uc.AddAddOn(ctx, &AddOnRequest{BookingID: b.ID, Key: "dematting", Actor: admin})
	require.NoError(t, err)
	assert.Equal(t, 985.0, b.TotalPrice)
	assert.True(t, pricing.Consistent(b))

	b, err = f.uc.RemoveAddOn(ctx, &RemoveAddOnRequest{BookingID: b.ID, AddOnID: "toothbrush", Actor: admin})
	require.NoError(t, err)
	assert.Equal(t, 960.0, b.TotalPrice)
	require.Len(t, b.AddOns, 1)
	assert.Equal(t, "dematting", b.AddOns[0].Key)

	_, err = f.uc.RemoveAddOn(ctx, &RemoveAddOnRequest{BookingID: b.ID, AddOnID: "toothbrush", Actor: admin})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 880.0, *b.BasePrice)
	assert.True(t, pricing.Consistent(b))

	_, err = f.uc.Complete(ctx, b.ID, "", admin)
	require.NoError(t, err)
	_, err = f.uc.AddAddOn(ctx, &AddOnRequest{BookingID: b.ID, Key: "toothbrush", Actor: admin})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMarkNoShow_IssuesWarningWithoutBan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := domain.NewConductRecord("c-1")
	rec.WarningCount = 4
	require.NoError(t, f.store.PersistConductRecord(ctx, rec))

	b := f.create(t, "c-1", day, domain.SlotMorning, nil)
	b, err := f.uc.MarkNoShow(ctx, b.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, b.Status)
	assert.Equal(t, "Marked as no-show by admin", *b.CancellationNote)

	got, err := f.conduct.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.WarningCount)
	assert.False(t, got.IsBanned)
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, "No Show on 2024-06-01 at 9am-12pm", got.Warnings[0].Reason)
}

func TestCancel_CustomerOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "c-1", day, domain.SlotMorning, nil)

	_, err := f.uc.Cancel(ctx, &CancelRequest{BookingID: b.ID, Actor: domain.Actor{ID: "c-2", Kind: domain.ActorCustomer}})
	assert.ErrorIs(t, err, ErrAccessDenied)

	got, err := f.uc.Cancel(ctx, &CancelRequest{BookingID: b.ID, Note: "sick", Actor: domain.Actor{ID: "c-1", Kind: domain.ActorCustomer}})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByCustomer, got.Status)
}

func TestMutate_PersistFailureLeavesNoTrace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "c-1", day, domain.SlotMorning, nil)

	boom := errors.New("disk full")
	f.store.FailPersist(boom)
	_, err := f.uc.AssignGroomer(ctx, b.ID, "g-X", admin)
	require.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, boom)
	f.store.FailPersist(nil)

	got, err := f.uc.Get(ctx, b.ID, admin)
	require.NoError(t, err)
	assert.Nil(t, got.GroomerID)
	assert.Len(t, f.history(t, b.ID), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingTransitions.WithLabelValues(ActionAssign, "error")))
}

func TestSetFeatured_RequiresMedia(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "c-1", day, domain.SlotMorning, ptr.Ptr("g-Z"))
	_, err := f.uc.Confirm(ctx, b.ID, admin)
	require.NoError(t, err)
	_, err = f.uc.Start(ctx, b.ID, admin)
	require.NoError(t, err)
	_, err = f.uc.AttachMedia(ctx, &MediaRequest{BookingID: b.ID, Before: ptr.Ptr("before.jpg"), Actor: admin})
	require.NoError(t, err)
	_, err = f.uc.Complete(ctx, b.ID, "", admin)
	require.NoError(t, err)

	_, err = f.uc.SetFeatured(ctx, b.ID, true, admin)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)

	_, err = f.uc.AttachMedia(ctx, &MediaRequest{BookingID: b.ID, After: ptr.Ptr("after.jpg"), Actor: admin})
	require.NoError(t, err)
	got, err := f.uc.SetFeatured(ctx, b.ID, true, admin)
	require.NoError(t, err)
	assert.True(t, got.Featured)

	entries := f.history(t, b.ID)
	last := entries[len(entries)-1]
	assert.Equal(t, domain.AuditActionFeatured, last.Action)
	assert.Equal(t, "Marked as featured", last.Message)
}

func TestDayView(t *testing.T) {
	f := newFixture(t)
	f.create(t, "c-1", day, domain.SlotAfternoon, ptr.Ptr("g-X"))
	f.create(t, "c-2", day, domain.SlotMorning, nil)

	view, err := f.uc.DayView(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, view.Bookings, 2)
	assert.Equal(t, domain.SlotMorning, view.Bookings[0].Slot)
	require.Len(t, view.Load, 3)
	assert.Equal(t, 1, view.Load[0].DailyCount)
	assert.Nil(t, view.Closed)
}

func TestCreate_AdvanceWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := domain.Actor{ID: "c-1", Kind: domain.ActorCustomer}
	farAway := time.Date(2029, 6, 1, 0, 0, 0, 0, time.UTC)

	req := &CreateRequest{
		CustomerID:   "c-1",
		CustomerName: "Planner",
		Pet:          domain.Pet{Name: "Rex", WeightBracket: "Small"},
		PackageID:    "full-groom",
		Date:         farAway,
		Slot:         domain.SlotMorning,
		Actor:        customer,
	}
	_, err := f.uc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.Contains(t, err.Error(), "30 days in advance")

	all, err := f.uc.List(ctx, domain.BookingsFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Empty(t, all)

	req.Date = day
	resp, err := f.uc.Create(ctx, req)
	require.NoError(t, err)

	_, err = f.uc.Reschedule(ctx, &RescheduleRequest{BookingID: resp.Booking.ID, Date: farAway, Slot: domain.SlotMorning, Actor: customer})
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)

	got, err := f.uc.Get(ctx, resp.Booking.ID, admin)
	require.NoError(t, err)
	assert.True(t, domain.SameDay(day, got.Date))
}

func TestCreate_UsesSalonClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	manila := time.FixedZone("PHT", 8*60*60)
	f.uc.policy = calendar.NewPolicy(30).InLocation(manila)
	// 17:00 UTC 1 июня - в салоне уже 2 июня
	f.uc.WithTimeProvider(fixedClock{now: time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)})

	_, err := f.uc.Create(ctx, &CreateRequest{
		CustomerID:   "c-1",
		CustomerName: "Late",
		Pet:          domain.Pet{Name: "Rex", WeightBracket: "Small"},
		PackageID:    "full-groom",
		Date:         time.Date(2024, 6, 1, 0, 0, 0, 0, manila),
		Slot:         domain.SlotAfternoon,
		Actor:        domain.Actor{ID: "c-1", Kind: domain.ActorCustomer},
	})
	require.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.Contains(t, err.Error(), "is in the past")
}

func TestRealTimeProvider_InSalonZone(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	now := (&RealTimeProvider{Location: manila}).Now()
	assert.Equal(t, manila, now.Location())
}

func TestCloseDate_RejectsPastDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.CloseDate(ctx, &CloseDateRequest{Date: day.AddDate(0, 0, -5), Reason: "Too late", Actor: admin})
	require.ErrorIs(t, err, domain.ErrPreconditionFailed)

	closed, err := f.uc.Blackouts(ctx)
	require.NoError(t, err)
	assert.Empty(t, closed)
}
