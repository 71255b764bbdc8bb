package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"feedback-coach/internal/app"
	"feedback-coach/internal/domain"
	"go.uber.org/zap"
)

// CatalogHandler serves the active content catalog as JSON.
type CatalogHandler struct {
	service *app.CoachService
	logger  *zap.Logger
}

func NewCatalogHandler(service *app.CoachService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, logger: logger}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	catalog, err := h.service.Catalog(r.Context())
	if errors.Is(err, domain.ErrCatalogNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("load catalog failed", zap.Error(err))
		http.Error(w, "failed to load catalog", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(catalog); err != nil {
		h.logger.Debug("write catalog failed", zap.Error(err))
	}
}
