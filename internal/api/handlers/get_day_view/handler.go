package get_day_view

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service  BookingService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	date, err := domain.ParseDate(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /admin/schedule/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := h.service.GetDayView(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/schedule/{date} - Failed to build day view: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/schedule/{date} - Day view built: date=%s, bookings=%d", dateStr, len(view.Bookings))
	handlers.RespondJSON(w, http.StatusOK, view)
}
