package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

var customer = domain.Actor{ID: "c-1", Kind: domain.ActorCustomer}

func cancelRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/b-1/cancel", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "b-1"})
	req = req.WithContext(middleware.WithActor(req.Context(), customer))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_WithReason(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, "b-1", &models.CancelBookingRequest{Actor: customer, CancellationReason: "Sick pet"}).
		Return(&models.BookingResponse{ID: "b-1", Status: "cancelled_by_customer"}, nil).Once()

	rec := cancelRequest(NewHandler(svc, logger.NewNop()), `{"cancellationReason":"Sick pet"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cancelled_by_customer")
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, "b-1", &models.CancelBookingRequest{Actor: customer}).
		Return(&models.BookingResponse{ID: "b-1"}, nil).Once()

	rec := cancelRequest(NewHandler(svc, logger.NewNop()), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"foreign booking", bookings.ErrAccessDenied, http.StatusForbidden},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"already completed", domain.InvalidTransition(&domain.Booking{ID: "b-1", Status: domain.StatusCompleted}, "cancel"), http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Cancel", mock.Anything, "b-1", mock.Anything).Return(nil, tt.err).Once()
			rec := cancelRequest(NewHandler(svc, logger.NewNop()), "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
