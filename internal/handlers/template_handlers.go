package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jaskrrish/go-qre/internal/models"
	"github.com/jaskrrish/go-qre/internal/quantum"
	"github.com/jaskrrish/go-qre/internal/templates/flipsign"
)

// TemplateHandler serves operator templates and their decompositions
type TemplateHandler struct{}

// NewTemplateHandler creates a template handler
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// FlipSignHandler handles POST /api/v1/templates/flipsign
// Validates the state against the wires and returns the decomposition, plus
// an OpenQASM export when requested
func (h *TemplateHandler) FlipSignHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.FlipSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, bits, isBits, err := req.ParseState()
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	state := flipsign.FromInt(n)
	if isBits {
		state = flipsign.FromBits(bits...)
	}

	fs, err := flipsign.New(state, req.Wires)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	zap.L().Debug("flipsign request",
		zap.Stringer("id", fs.ID),
		zap.Stringer("state", state),
		zap.Bool("bit_vector", state.IsBits()),
	)

	ops := fs.Decomposition()
	resp := models.FlipSignResponse{
		ID:         fs.ID,
		Wires:      fs.Wires(),
		Bits:       fs.Bits(),
		State:      quantum.BitsString(fs.Bits()),
		Operations: ops,
	}
	if v, err := fs.Value(); err == nil {
		resp.Value = &v
	}

	if req.QASM {
		qasm, err := quantum.BuildGateSequenceCircuit(quantum.RegisterSize(ops), ops)
		if err != nil {
			respondWithDomainError(w, r, err)
			return
		}
		resp.QASM = qasm
		resp.Digest = quantum.CircuitDigest(qasm)
	}

	respondWithJSON(w, http.StatusOK, resp)
}
