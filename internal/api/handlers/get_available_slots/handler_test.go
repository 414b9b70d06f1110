package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	getAvailableSlots "github.com/bestbuddies/grooming-booking/internal/usecase/get_available_slots"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots"+query, nil))
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getAvailableSlots.Request) bool {
		return r.Date.Equal(day)
	})).Return(&getAvailableSlots.Response{
		Date: day,
		Slots: []getAvailableSlots.Slot{
			{Slot: domain.SlotMorning, StartTime: "09:00", EndTime: "12:00", AvailableGroomers: 0, TotalGroomers: 2, Reason: "fully booked"},
			{Slot: domain.SlotMidday, StartTime: "12:00", EndTime: "15:00", AvailableGroomers: 2, TotalGroomers: 2, Bookable: true},
		},
	}, nil).Once()

	rec := get(NewHandler(uc, time.UTC, logger.NewNop()), "?date=2024-06-01")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "9am-12pm", resp.Slots[0].Slot)
	assert.False(t, resp.Slots[0].Bookable)
	assert.True(t, resp.Slots[1].Bookable)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{"missing date", "", nil, http.StatusBadRequest},
		{"bad date", "?date=01.06.2024", nil, http.StatusBadRequest},
		{"past", "?date=2024-06-01", getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{"too far", "?date=2024-06-01", fmt.Errorf("%w: 30 days", getAvailableSlots.ErrDateTooFarInFuture), http.StatusBadRequest},
		{"internal", "?date=2024-06-01", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			}
			rec := get(NewHandler(uc, time.UTC, logger.NewNop()), tt.query)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
