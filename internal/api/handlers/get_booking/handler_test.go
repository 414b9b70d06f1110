package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
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

func (m *mockService) GetByID(ctx context.Context, id string, actor domain.Actor) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

func TestHandle(t *testing.T) {
	customer := domain.Actor{ID: "c-1", Kind: domain.ActorCustomer}
	tests := []struct {
		name   string
		resp   *models.BookingResponse
		err    error
		status int
	}{
		{"found", &models.BookingResponse{ID: "b-1", ShortCode: "BB-AAAAAA"}, nil, http.StatusOK},
		{"not found", nil, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"foreign booking", nil, bookings.ErrAccessDenied, http.StatusForbidden},
		{"storage failure", nil, bookings.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.resp != nil {
				svc.On("GetByID", mock.Anything, "BB-AAAAAA", customer).Return(tt.resp, nil).Once()
			} else {
				svc.On("GetByID", mock.Anything, "BB-AAAAAA", customer).Return(nil, tt.err).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/BB-AAAAAA", nil)
			req = mux.SetURLVars(req, map[string]string{"bookingId": "BB-AAAAAA"})
			req = req.WithContext(middleware.WithActor(req.Context(), customer))
			rec := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
