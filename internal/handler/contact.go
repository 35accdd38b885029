package handler

import (
	"log/slog"
	"net/http"

	"github.com/desenroladireito/desenrola-direito/internal/model"
	"github.com/desenroladireito/desenrola-direito/internal/service"
)

// ContactHandler serves POST /api/contact.
type ContactHandler struct {
	contact *service.ContactService
	logger  *slog.Logger
}

func NewContactHandler(contact *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contact: contact, logger: logger}
}

// contactResponse acknowledges a relayed message with its reference ID.
type contactResponse struct {
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

// HandleSubmit validates the form and relays it through the email bridge.
// Fire-and-once: a failed send surfaces as an error and is not retried.
//
// HTTP: POST /api/contact
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	reference, err := h.contact.Submit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contactResponse{
		Message:   "mensagem enviada com sucesso",
		Reference: reference,
	})
}
