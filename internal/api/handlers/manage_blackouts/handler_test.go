package manage_blackouts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Blackouts(ctx context.Context) ([]*domain.CalendarBlackout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CalendarBlackout), args.Error(1)
}

func (m *mockUseCase) CloseDate(ctx context.Context, req *lifecycle.CloseDateRequest) (*lifecycle.CloseDateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lifecycle.CloseDateResponse), args.Error(1)
}

func (m *mockUseCase) ReopenDate(ctx context.Context, date time.Time, actor domain.Actor) error {
	return m.Called(ctx, date, actor).Error(0)
}

var (
	admin = domain.Actor{ID: "a-1", Kind: domain.ActorAdmin}
	day   = time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
)

func TestHandleClose_ReturnsCascade(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("CloseDate", mock.Anything, &lifecycle.CloseDateRequest{Date: day, Reason: "Holiday", Actor: admin}).
		Return(&lifecycle.CloseDateResponse{
			Blackout:  &domain.CalendarBlackout{Date: day, Reason: "Holiday", CreatedBy: admin.String()},
			Cancelled: []*domain.Booking{{ID: "b-1", Date: day, Status: domain.StatusCancelledByAdmin}},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/blackouts", strings.NewReader(`{"date":"2024-12-25","reason":"Holiday"}`))
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rec := httptest.NewRecorder()
	NewHandler(uc, time.UTC, logger.NewNop()).HandleClose(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp CloseDateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-12-25", resp.Blackout.Date)
	require.Len(t, resp.Cancelled, 1)
	assert.Equal(t, "cancelled_by_admin", resp.Cancelled[0].Status)
}

func TestHandleClose_AlreadyClosed(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("CloseDate", mock.Anything, mock.Anything).
		Return(nil, domain.PreconditionFailed(nil, lifecycle.ActionCloseDate, "date 2024-12-25 is already closed")).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/blackouts", strings.NewReader(`{"date":"2024-12-25","reason":"Holiday"}`))
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rec := httptest.NewRecorder()
	NewHandler(uc, time.UTC, logger.NewNop()).HandleClose(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleReopen_NotClosed(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("ReopenDate", mock.Anything, day, admin).
		Return(fmt.Errorf("%w: 2024-12-25", lifecycle.ErrBlackoutNotFound)).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/blackouts/2024-12-25", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "2024-12-25"})
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rec := httptest.NewRecorder()
	NewHandler(uc, time.UTC, logger.NewNop()).HandleReopen(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleList(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Blackouts", mock.Anything).Return([]*domain.CalendarBlackout{{Date: day, Reason: "Holiday"}}, nil).Once()

	rec := httptest.NewRecorder()
	NewHandler(uc, time.UTC, logger.NewNop()).HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/blackouts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"Holiday"`)
}
