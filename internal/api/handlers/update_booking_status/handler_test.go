package update_booking_status

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

func (m *mockService) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

var admin = domain.Actor{ID: "a-1", Kind: domain.ActorAdmin}

func patch(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/b-1/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "b-1"})
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PassesActorAndNotes(t *testing.T) {
	svc := &mockService{}
	svc.On("UpdateStatus", mock.Anything, "b-1", mock.MatchedBy(func(r *models.UpdateStatusRequest) bool {
		return r.Actor == admin && r.Status == "completed" && r.Notes == "Calm dog"
	})).Return(&models.BookingResponse{ID: "b-1", Status: "completed"}, nil).Once()

	rec := patch(NewHandler(svc, logger.NewNop()), `{"status":"completed","notes":"Calm dog"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid transition", domain.InvalidTransition(&domain.Booking{ID: "b-1", Status: domain.StatusPending}, "start"), http.StatusConflict},
		{"no groomer", domain.PreconditionFailed(&domain.Booking{ID: "b-1"}, "confirm", "assign a groomer before confirming"), http.StatusUnprocessableEntity},
		{"unknown status", bookings.ErrInvalidStatus, http.StatusBadRequest},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", mock.Anything, "b-1", mock.Anything).Return(nil, tt.err).Once()
			rec := patch(NewHandler(svc, logger.NewNop()), `{"status":"confirmed"}`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	rec := patch(NewHandler(&mockService{}, logger.NewNop()), `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
