package handler

import (
	"log/slog"
	"net/http"

	"github.com/desenroladireito/desenrola-direito/internal/service"
)

// SolutionHandler serves /api/solutions.
type SolutionHandler struct {
	content *service.ContentService
	logger  *slog.Logger
}

func NewSolutionHandler(content *service.ContentService, logger *slog.Logger) *SolutionHandler {
	return &SolutionHandler{content: content, logger: logger}
}

// HandleList returns every solution card.
//
// HTTP: GET /api/solutions
func (h *SolutionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	solutions, err := h.content.Solutions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, solutions)
}

// HandleCreate creates a solution card from a JSON body.
//
// HTTP: POST /api/solutions
func (h *SolutionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.SolutionInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	solution, err := h.content.CreateSolution(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, solution)
}
