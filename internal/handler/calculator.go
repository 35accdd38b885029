package handler

import (
	"log/slog"
	"net/http"

	"github.com/desenroladireito/desenrola-direito/internal/calc"
)

// CalculatorHandler serves the /api/calculators endpoints. The calculators
// are pure functions; the handler only decodes, delegates and encodes.
type CalculatorHandler struct {
	logger *slog.Logger
}

func NewCalculatorHandler(logger *slog.Logger) *CalculatorHandler {
	return &CalculatorHandler{logger: logger}
}

// HandleSeverance estimates a dismissal-without-cause payout.
//
// HTTP: POST /api/calculators/severance
func (h *CalculatorHandler) HandleSeverance(w http.ResponseWriter, r *http.Request) {
	var in calc.SeveranceInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	result, err := calc.Severance(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleTrafficFine estimates a traffic fine's value and points.
//
// HTTP: POST /api/calculators/traffic-fine
func (h *CalculatorHandler) HandleTrafficFine(w http.ResponseWriter, r *http.Request) {
	var in calc.TrafficFineInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	result, err := calc.TrafficFine(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleMoralDamages returns a moral-damages estimate band.
//
// HTTP: POST /api/calculators/moral-damages
func (h *CalculatorHandler) HandleMoralDamages(w http.ResponseWriter, r *http.Request) {
	var in calc.MoralDamagesInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	result, err := calc.MoralDamages(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleChildSupport suggests a child-support percentage and amount.
//
// HTTP: POST /api/calculators/child-support
func (h *CalculatorHandler) HandleChildSupport(w http.ResponseWriter, r *http.Request) {
	var in calc.ChildSupportInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	result, err := calc.ChildSupport(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
