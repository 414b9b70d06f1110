package manage_catalog

import (
	"io"
	"net/http"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	storage "github.com/bestbuddies/grooming-booking/internal/infra/storage/catalog"
)

const (
	maxCatalogSize = 1 << 20

	msgInvalidRequestBody = "некорректное тело запроса"
	msgCatalogNotFound    = "каталог не загружен"
)

type Handler struct {
	store  CatalogStore
	logger Logger
}

func NewHandler(store CatalogStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// HandleGet GET /api/v1/catalog
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.LoadCatalog(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to load catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if c == nil {
		handlers.RespondNotFound(w, msgCatalogNotFound)
		return
	}

	raw, err := storage.Encode(c)
	if err != nil {
		h.logger.Error("GET /catalog - Failed to encode catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// HandleUpdate PUT /api/v1/admin/catalog
// Заменяет каталог целиком. Уже созданные брони не переоцениваются.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxCatalogSize))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	c, err := storage.Decode(raw)
	if err != nil {
		h.logger.Warn("PUT /catalog - Invalid catalog document: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := c.Validate(); err != nil {
		h.logger.Warn("PUT /catalog - Rejected: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	if err := h.store.SaveCatalog(r.Context(), c); err != nil {
		h.logger.Error("PUT /catalog - Failed to save catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /catalog - Catalog replaced: packages=%d, add_ons=%d, services=%d",
		len(c.Packages), len(c.AddOns), len(c.SingleServices))
	h.HandleGet(w, r)
}
