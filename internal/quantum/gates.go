package quantum

import (
	"fmt"
	"strings"
)

// GateKind identifies an elementary gate in a decomposition
type GateKind string

const (
	// PauliX flips the 0 and 1 amplitudes of a single wire
	PauliX GateKind = "PauliX"
	// CtrlPhaseFlip applies Z to the target when every control wire
	// matches its control value
	CtrlPhaseFlip GateKind = "CtrlPhaseFlip"
)

// GateOp is one element of a decomposition
type GateOp struct {
	Kind          GateKind `json:"kind"`
	Target        int      `json:"target"`
	Controls      []int    `json:"controls,omitempty"`
	ControlValues []Bit    `json:"control_values,omitempty"`
}

// NewPauliX returns a bit-flip on wire
func NewPauliX(wire int) GateOp {
	return GateOp{Kind: PauliX, Target: wire}
}

// NewCtrlPhaseFlip returns a multi-controlled Z on target. With no controls it
// is an unconditional Z. The slices are copied.
func NewCtrlPhaseFlip(controls []int, values []Bit, target int) GateOp {
	op := GateOp{Kind: CtrlPhaseFlip, Target: target}
	if len(controls) > 0 {
		op.Controls = append([]int(nil), controls...)
		op.ControlValues = append([]Bit(nil), values...)
	}
	return op
}

// Wires returns every wire the gate touches, controls first
func (g GateOp) Wires() []int {
	wires := make([]int, 0, len(g.Controls)+1)
	wires = append(wires, g.Controls...)
	return append(wires, g.Target)
}

func (g GateOp) String() string {
	switch g.Kind {
	case PauliX:
		return fmt.Sprintf("X(%d)", g.Target)
	case CtrlPhaseFlip:
		if len(g.Controls) == 0 {
			return fmt.Sprintf("Z(%d)", g.Target)
		}
		parts := make([]string, len(g.Controls))
		for i, c := range g.Controls {
			parts[i] = fmt.Sprintf("%d=%d", c, g.ControlValues[i])
		}
		return fmt.Sprintf("C[%s]Z(%d)", strings.Join(parts, ","), g.Target)
	default:
		return "Unknown"
	}
}
