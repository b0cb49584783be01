package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jaskrrish/go-qre/internal/quantum"
	"github.com/jaskrrish/go-qre/internal/resources"
)

// SuccessProbRequest asks for the state preparation success probability
type SuccessProbRequest struct {
	N            int `json:"n"`
	RotationBits int `json:"br"`
}

// SuccessProbResponse carries the success probability
type SuccessProbResponse struct {
	N            int     `json:"n"`
	RotationBits int     `json:"br"`
	SuccessProb  float64 `json:"success_prob"`
}

// NormRequest asks for the 1-norm of a first-quantized Hamiltonian.
// RotationBits falls back to the service default when omitted.
type NormRequest struct {
	Eta          int     `json:"eta"`
	N            int     `json:"n"`
	Omega        float64 `json:"omega"`
	RotationBits *int    `json:"br,omitempty"`
	Charge       int     `json:"charge,omitempty"`
}

// NormResponse wraps the estimate and its terms
type NormResponse struct {
	Estimate *resources.NormEstimate `json:"estimate"`
}

// FlipSignRequest describes a FlipSign template. State is either a JSON
// integer or an array of 0/1 integers.
type FlipSignRequest struct {
	State json.RawMessage `json:"state"`
	Wires []int           `json:"wires"`
	QASM  bool            `json:"qasm,omitempty"`
}

// FlipSignResponse describes the validated template and its decomposition
type FlipSignResponse struct {
	ID         uuid.UUID        `json:"id"`
	Wires      []int            `json:"wires"`
	Bits       []quantum.Bit    `json:"bits"`
	State      string           `json:"state"`
	Value      *int             `json:"value,omitempty"`
	Operations []quantum.GateOp `json:"operations"`
	QASM       string           `json:"qasm,omitempty"`
	Digest     string           `json:"digest,omitempty"`
}

// Validate validates a success probability request
func (r *SuccessProbRequest) Validate() error {
	if r.N <= 0 {
		return ErrInvalidBasisCount
	}
	if r.RotationBits <= 0 {
		return ErrInvalidRotationBits
	}
	return nil
}

// Validate validates a norm request, filling in the default rotation bits
func (r *NormRequest) Validate(defaultBits int) error {
	if r.Eta <= 0 {
		return ErrInvalidElectronCount
	}
	if r.N <= 0 {
		return ErrInvalidBasisCount
	}
	if r.Omega <= 0 {
		return ErrInvalidVolume
	}
	if r.RotationBits == nil {
		br := defaultBits
		r.RotationBits = &br
	}
	if *r.RotationBits <= 0 {
		return ErrInvalidRotationBits
	}
	return nil
}

// ParseState decodes the raw state into either an integer or a bit vector.
// Fractional numbers, strings and nested values are rejected.
func (r *FlipSignRequest) ParseState() (n int, bits []int, isBits bool, err error) {
	raw := bytes.TrimSpace(r.State)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil, false, ErrMissingState
	}

	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &bits); err != nil {
			return 0, nil, false, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		return 0, bits, true, nil
	}

	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, nil, false, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return n, nil, false, nil
}

// APIError is returned for malformed requests
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

var (
	ErrInvalidElectronCount = &APIError{"eta must be a positive integer"}
	ErrInvalidBasisCount    = &APIError{"n must be a positive integer"}
	ErrInvalidVolume        = &APIError{"omega must be positive"}
	ErrInvalidRotationBits  = &APIError{"br must be a positive integer"}
	ErrMissingState         = &APIError{"state is required"}
	ErrInvalidState         = &APIError{"state must be a non-negative integer or an integer binary array"}
)
