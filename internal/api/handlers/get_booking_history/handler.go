package get_booking_history

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "бронирование не найдено"
	msgForbidden     = "доступ запрещен"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service  BookingService
	exporter AuditExporter
	logger   Logger
}

func NewHandler(service BookingService, exporter AuditExporter, logger Logger) *Handler {
	return &Handler{
		service:  service,
		exporter: exporter,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	history, err := h.service.GetHistory(r.Context(), bookingID, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/history - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/history - Access denied: booking_id=%s, actor=%s", bookingID, actor)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id}/history - Failed to get history: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/history - History retrieved: booking_id=%s, entries=%d", bookingID, len(history.Entries))
	handlers.RespondJSON(w, http.StatusOK, history)
}

// HandleExport GET /api/v1/admin/audit/export
// Query params: bookingId (опционально, без него - весь журнал)
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var bookingID *string
	if id := strings.TrimSpace(r.URL.Query().Get("bookingId")); id != "" {
		bookingID = &id
	}

	// Буферизуем файл, чтобы ошибка не оборвала уже начатый ответ
	var buf bytes.Buffer
	if err := h.exporter.ExportXLSX(r.Context(), &buf, bookingID); err != nil {
		h.logger.Error("GET /admin/audit/export - Failed to export audit log: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	name := "audit.xlsx"
	if bookingID != nil {
		name = fmt.Sprintf("audit-%s.xlsx", *bookingID)
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())

	h.logger.Info("GET /admin/audit/export - Audit log exported: bytes=%d", buf.Len())
}
