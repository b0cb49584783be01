package flipsign

import (
	"math"

	"github.com/jaskrrish/go-qre/internal/quantum"
)

// stateVector is a dense simulator used to check decompositions. Wire labels
// are positions in wires; the first wire is the most significant bit of an
// amplitude index.
type stateVector struct {
	amps  []float64
	index map[int]int
	n     int
}

func newUniformState(wires []int) *stateVector {
	n := len(wires)
	amps := make([]float64, 1<<n)
	for i := range amps {
		amps[i] = 1 / math.Sqrt(float64(len(amps)))
	}
	index := make(map[int]int, n)
	for i, w := range wires {
		index[w] = i
	}
	return &stateVector{amps: amps, index: index, n: n}
}

func (s *stateVector) mask(wire int) int {
	return 1 << (s.n - 1 - s.index[wire])
}

func (s *stateVector) applyX(wire int) {
	bit := s.mask(wire)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *stateVector) applyCtrlZ(controls []int, values []quantum.Bit, target int) {
	tBit := s.mask(target)
	for i := range s.amps {
		if i&tBit == 0 {
			continue
		}
		match := true
		for k, c := range controls {
			set := i&s.mask(c) != 0
			if set != (values[k] == quantum.One) {
				match = false
				break
			}
		}
		if match {
			s.amps[i] *= -1
		}
	}
}

func (s *stateVector) apply(ops []quantum.GateOp) {
	for _, op := range ops {
		switch op.Kind {
		case quantum.PauliX:
			s.applyX(op.Target)
		case quantum.CtrlPhaseFlip:
			s.applyCtrlZ(op.Controls, op.ControlValues, op.Target)
		}
	}
}

// negated returns the indices whose amplitude is negative
func (s *stateVector) negated() []int {
	var out []int
	for i, a := range s.amps {
		if a < 0 {
			out = append(out, i)
		}
	}
	return out
}
