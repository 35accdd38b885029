package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/desenroladireito/desenrola-direito/internal/service"
)

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	content *service.ContentService
	logger  *slog.Logger
}

func NewCategoryHandler(content *service.ContentService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{content: content, logger: logger}
}

// HandleList returns every category.
//
// HTTP: GET /api/categories
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.content.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// HandleGetBySlug returns a single category, 404 when absent.
//
// HTTP: GET /api/categories/{slug}
func (h *CategoryHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.content.CategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// HandleCreate creates a category from a JSON body.
//
// HTTP: POST /api/categories
func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.CategoryInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	category, err := h.content.CreateCategory(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}
