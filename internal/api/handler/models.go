package handler

import (
	"net/http"

	"github.com/tesseralabs/tessera/internal/api/response"
	"github.com/tesseralabs/tessera/internal/service"
)

// ModelsHandler serves the model catalog merged with fleet availability.
type ModelsHandler struct {
	catalog  *service.ModelCatalog
	registry *service.Registry
}

// NewModelsHandler creates a ModelsHandler.
func NewModelsHandler(catalog *service.ModelCatalog, registry *service.Registry) *ModelsHandler {
	return &ModelsHandler{catalog: catalog, registry: registry}
}

// List handles GET /api/v1/models.
func (h *ModelsHandler) List(w http.ResponseWriter, r *http.Request) {
	models := h.catalog.List(h.registry.Snapshot())
	response.JSON(w, http.StatusOK, map[string]any{
		"models": models,
		"voices": h.catalog.Voices(),
	})
}
