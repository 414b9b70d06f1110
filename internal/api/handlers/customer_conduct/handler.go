package customer_conduct

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/conduct"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные"
)

// Handler админские операции над дисциплиной клиентов
type Handler struct {
	service ConductService
	logger  Logger
}

func NewHandler(service ConductService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/admin/customers/{customerId}/conduct
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	record, err := h.service.Get(r.Context(), customerID)
	if err != nil {
		h.respondError(w, "GET /customers/{id}/conduct", customerID, err)
		return
	}
	h.respondRecord(w, http.StatusOK, record)
}

// HandleWarn POST /api/v1/admin/customers/{customerId}/warnings
func (h *Handler) HandleWarn(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req WarningRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	record, err := h.service.AddWarning(r.Context(), conduct.WarningRequest{
		CustomerID: customerID,
		Reason:     req.Reason,
		BookingID:  req.BookingID,
		IssuedBy:   actor.String(),
	})
	if err != nil {
		h.respondError(w, "POST /customers/{id}/warnings", customerID, err)
		return
	}

	h.logger.Info("POST /customers/{id}/warnings - Warning issued: customer=%s, count=%d", customerID, record.WarningCount)
	h.respondRecord(w, http.StatusOK, record)
}

// HandleBan POST /api/v1/admin/customers/{customerId}/ban
func (h *Handler) HandleBan(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	record, err := h.service.Ban(r.Context(), conduct.BanRequest{
		CustomerID: customerID,
		Reason:     req.Reason,
		Actor:      actor.String(),
	})
	if err != nil {
		h.respondError(w, "POST /customers/{id}/ban", customerID, err)
		return
	}

	h.logger.Info("POST /customers/{id}/ban - Customer banned: customer=%s", customerID)
	h.respondRecord(w, http.StatusOK, record)
}

// HandleEnforce POST /api/v1/admin/customers/{customerId}/enforce
// Блокирует клиента только если лимит предупреждений достигнут.
func (h *Handler) HandleEnforce(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	record, banned, err := h.service.EnforceLimit(r.Context(), customerID, actor.String())
	if err != nil {
		h.respondError(w, "POST /customers/{id}/enforce", customerID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, EnforceResponse{
		Banned: banned,
		Record: fromDomainRecord(record, h.service.NeedsReview(record), h.service.BanLiftFee()),
	})
}

// HandleLift POST /api/v1/admin/customers/{customerId}/lift
func (h *Handler) HandleLift(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req LiftBanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	record, err := h.service.LiftBan(r.Context(), conduct.LiftBanRequest{
		CustomerID: customerID,
		FeePaid:    req.FeePaid,
		Actor:      actor.String(),
	})
	if err != nil {
		h.respondError(w, "POST /customers/{id}/lift", customerID, err)
		return
	}

	h.logger.Info("POST /customers/{id}/lift - Ban lifted: customer=%s", customerID)
	h.respondRecord(w, http.StatusOK, record)
}

// HandleReview GET /api/v1/admin/customers/review
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListForReview(r.Context())
	if err != nil {
		h.logger.Error("GET /customers/review - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ReviewListResponse{Customers: make([]ConductResponse, 0, len(items))}
	for _, item := range items {
		resp.Customers = append(resp.Customers, fromDomainRecord(item.Record, item.Level, h.service.BanLiftFee()))
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) respondRecord(w http.ResponseWriter, status int, record *domain.ConductRecord) {
	handlers.RespondJSON(w, status, fromDomainRecord(record, h.service.NeedsReview(record), h.service.BanLiftFee()))
}

func (h *Handler) respondError(w http.ResponseWriter, op, customerID string, err error) {
	switch {
	case errors.Is(err, conduct.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: customer=%s, error=%v", op, customerID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case handlers.RespondDomainError(w, err):
		h.logger.Warn("%s - Rejected: customer=%s, error=%v", op, customerID, err)

	default:
		h.logger.Error("%s - Failed: customer=%s, error=%v", op, customerID, err)
		handlers.RespondInternalError(w)
	}
}
