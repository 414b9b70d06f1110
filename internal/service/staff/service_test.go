package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/infra/storage/memory"
	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
	"github.com/bestbuddies/grooming-booking/pkg/ptr"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newService() *Service {
	return NewService(memory.NewStore(), 3, logger.NewNop()).
		WithTimeProvider(fixedClock{now: time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)})
}

func TestCreateAndUpdateGroomer(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	first, err := svc.CreateGroomer(ctx, &models.CreateGroomerRequest{Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Capacity)
	assert.True(t, first.Active)

	_, err = svc.CreateGroomer(ctx, &models.CreateGroomerRequest{Name: "Ben", MaxDailyBookings: 2})
	require.NoError(t, err)

	updated, err := svc.UpdateGroomer(ctx, first.ID, &models.UpdateGroomerRequest{
		MaxDailyBookings: ptr.Ptr(5),
		Active:           ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Capacity)
	assert.False(t, updated.Active)
	assert.Equal(t, "Ana", updated.Name)

	list, err := svc.ListGroomers(ctx)
	require.NoError(t, err)
	require.Len(t, list.Groomers, 2)
	assert.Equal(t, "Ana", list.Groomers[0].Name)

	_, err = svc.UpdateGroomer(ctx, "missing", &models.UpdateGroomerRequest{})
	assert.ErrorIs(t, err, ErrGroomerNotFound)

	_, err = svc.CreateGroomer(ctx, &models.CreateGroomerRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAbsenceWorkflow(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	g, err := svc.CreateGroomer(ctx, &models.CreateGroomerRequest{Name: "Ana"})
	require.NoError(t, err)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	a, err := svc.RequestAbsence(ctx, &models.RequestAbsenceRequest{GroomerID: g.ID, Date: date, Reason: "vet visit"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.AbsencePending), a.Status)

	_, err = svc.RequestAbsence(ctx, &models.RequestAbsenceRequest{GroomerID: g.ID, Date: date})
	assert.ErrorIs(t, err, ErrAbsenceAlreadyExists)

	decided, err := svc.DecideAbsence(ctx, a.ID, &models.DecideAbsenceRequest{Approve: true})
	require.NoError(t, err)
	assert.Equal(t, string(domain.AbsenceApproved), decided.Status)

	_, err = svc.DecideAbsence(ctx, a.ID, &models.DecideAbsenceRequest{Approve: false})
	assert.ErrorIs(t, err, ErrAbsenceAlreadyDecided)

	_, err = svc.RequestAbsence(ctx, &models.RequestAbsenceRequest{GroomerID: g.ID, Date: date.AddDate(0, 0, -5)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.ListAbsences(ctx, ptr.Ptr(g.ID))
	require.NoError(t, err)
	assert.Len(t, list.Absences, 1)
}
