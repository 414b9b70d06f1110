package manage_absences

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/staff"
	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата"
	msgInvalidData        = "некорректные данные заявки"
	msgGroomerNotFound    = "грумер не найден"
	msgAbsenceNotFound    = "заявка не найдена"
	msgAlreadyExists      = "на эту дату уже есть заявка"
	msgAlreadyDecided     = "решение по заявке уже принято"
)

// Handler заявки грумеров на отсутствие
type Handler struct {
	service  StaffService
	location *time.Location
	logger   Logger
}

func NewHandler(service StaffService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// HandleList GET /api/v1/admin/absences?groomerId=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var groomerID *string
	if raw := r.URL.Query().Get("groomerId"); raw != "" {
		groomerID = &raw
	}

	result, err := h.service.ListAbsences(r.Context(), groomerID)
	if err != nil {
		h.logger.Error("GET /absences - Failed to list absences: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleRequest POST /api/v1/admin/groomers/{groomerId}/absences
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	groomerID := mux.Vars(r)["groomerId"]

	var req models.RequestAbsenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groomers/{id}/absences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	date, err := domain.ParseDate(req.RawDate, h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	req.GroomerID = groomerID
	req.Date = date

	result, err := h.service.RequestAbsence(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /groomers/{id}/absences", groomerID, err)
		return
	}

	h.logger.Info("POST /groomers/{id}/absences - Absence requested: groomer_id=%s, absence_id=%s", groomerID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDecide POST /api/v1/admin/absences/{absenceId}/decision
func (h *Handler) HandleDecide(w http.ResponseWriter, r *http.Request) {
	absenceID := mux.Vars(r)["absenceId"]

	var req models.DecideAbsenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /absences/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.DecideAbsence(r.Context(), absenceID, &req)
	if err != nil {
		h.respondError(w, "POST /absences/{id}/decision", absenceID, err)
		return
	}

	h.logger.Info("POST /absences/{id}/decision - Absence %s: absence_id=%s", result.Status, absenceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, staff.ErrGroomerNotFound):
		handlers.RespondNotFound(w, msgGroomerNotFound)

	case errors.Is(err, staff.ErrAbsenceNotFound):
		handlers.RespondNotFound(w, msgAbsenceNotFound)

	case errors.Is(err, staff.ErrAbsenceAlreadyExists):
		handlers.RespondError(w, http.StatusConflict, msgAlreadyExists)

	case errors.Is(err, staff.ErrAbsenceAlreadyDecided):
		handlers.RespondError(w, http.StatusConflict, msgAlreadyDecided)

	case errors.Is(err, staff.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: id=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Failed: id=%s, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
