package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jaskrrish/go-qre/internal/models"
	"github.com/jaskrrish/go-qre/internal/resources"
)

// ResourceHandler serves the first-quantization resource estimates
type ResourceHandler struct {
	defaultRotationBits int
}

// NewResourceHandler creates a handler; defaultRotationBits is used for norm
// requests that omit br
func NewResourceHandler(defaultRotationBits int) *ResourceHandler {
	return &ResourceHandler{defaultRotationBits: defaultRotationBits}
}

// SuccessProbHandler handles POST /api/v1/resources/success-prob
func (h *ResourceHandler) SuccessProbHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SuccessProbRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	p, err := resources.SuccessProb(req.N, req.RotationBits)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.SuccessProbResponse{
		N:            req.N,
		RotationBits: req.RotationBits,
		SuccessProb:  p,
	})
}

// NormHandler handles POST /api/v1/resources/norm
func (h *ResourceHandler) NormHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.NormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(h.defaultRotationBits); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	est, err := resources.EstimateNorm(req.Eta, req.N, req.Omega,
		resources.WithRotationBits(*req.RotationBits),
		resources.WithCharge(req.Charge),
	)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.NormResponse{Estimate: est})
}
