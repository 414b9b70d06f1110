package manage_blackouts

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgBlackoutNotFound   = "день не закрыт"
)

type Handler struct {
	useCase  BlackoutUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase BlackoutUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// HandleList GET /api/v1/admin/blackouts
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	blackouts, err := h.useCase.Blackouts(r.Context())
	if err != nil {
		h.logger.Error("GET /blackouts - Failed to load blackouts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := BlackoutListResponse{Blackouts: make([]BlackoutResponse, 0, len(blackouts))}
	for _, b := range blackouts {
		resp.Blackouts = append(resp.Blackouts, fromDomainBlackout(b))
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleClose POST /api/v1/admin/blackouts
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CloseDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	date, err := domain.ParseDate(req.Date, h.location)
	if err != nil {
		h.logger.Warn("POST /blackouts - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.CloseDate(r.Context(), &lifecycle.CloseDateRequest{
		Date:   date,
		Reason: req.Reason,
		Actor:  actor,
	})
	if err != nil {
		h.respondError(w, "POST /blackouts", req.Date, err)
		return
	}

	h.logger.Info("POST /blackouts - Date closed: date=%s, cancelled=%d", req.Date, len(resp.Cancelled))
	handlers.RespondJSON(w, http.StatusCreated, fromUseCaseResponse(resp))
}

// HandleReopen DELETE /api/v1/admin/blackouts/{date}
func (h *Handler) HandleReopen(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	date, err := domain.ParseDate(raw, h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.useCase.ReopenDate(r.Context(), date, actor); err != nil {
		h.respondError(w, "DELETE /blackouts/{date}", raw, err)
		return
	}

	h.logger.Info("DELETE /blackouts/{date} - Date reopened: date=%s", raw)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op, date string, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrBlackoutNotFound):
		h.logger.Warn("%s - Blackout not found: date=%s", op, date)
		handlers.RespondNotFound(w, msgBlackoutNotFound)

	case errors.Is(err, lifecycle.ErrAccessDenied):
		handlers.RespondForbidden(w, msgForbidden)

	case handlers.RespondDomainError(w, err):
		h.logger.Warn("%s - Rejected: date=%s, error=%v", op, date, err)

	default:
		h.logger.Error("%s - Failed: date=%s, error=%v", op, date, err)
		handlers.RespondInternalError(w)
	}
}
