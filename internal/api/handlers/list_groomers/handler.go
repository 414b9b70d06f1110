package list_groomers

import (
	"net/http"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/groomers
// Клиент видит тех же грумеров, что и админ: выбор грумера при записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListGroomers(r.Context())
	if err != nil {
		h.logger.Error("GET /groomers - Failed to list groomers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /groomers - Groomers retrieved: count=%d", len(result.Groomers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
