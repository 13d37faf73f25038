package http

import (
	"net/http"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/service"
)

// SimulationHandler exposes policy what-if previews
type SimulationHandler struct {
	simulationService service.SimulationService
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(simulation service.SimulationService) *SimulationHandler {
	return &SimulationHandler{simulationService: simulation}
}

type simulationRequest struct {
	Threshold float64 `json:"threshold" validate:"required,gt=0"`
	LowRate   float64 `json:"lowRate" validate:"gte=0"`
	HighRate  float64 `json:"highRate" validate:"gte=0"`
}

// Preview handles POST /api/simulation/preview
func (h *SimulationHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req simulationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, domain.Validationf("invalid simulation request: %v", err))
		return
	}

	result, err := h.simulationService.PreviewPolicy(r.Context(), req.Threshold, req.LowRate, req.HighRate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
