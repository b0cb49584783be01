// Package flipsign implements the FlipSign template: an operator that negates
// the amplitude of one computational basis state and leaves every other basis
// state unchanged.
//
//	FlipSign(n)|m⟩ = -|m⟩  if m == n
//	FlipSign(n)|m⟩ =  |m⟩  otherwise
//
// The state is given either as an integer or as a big-endian bit vector with
// one bit per wire; the first wire carries the most significant bit.
package flipsign

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jaskrrish/go-qre/internal/quantum"
)

// BasisState specifies the basis state to flip, either as an integer or as
// an explicit bit vector
type BasisState struct {
	value  int
	bits   []int
	isBits bool
}

// FromInt specifies the basis state by its integer index
func FromInt(n int) BasisState {
	return BasisState{value: n}
}

// FromBits specifies the basis state by its bits, most significant first
func FromBits(bits ...int) BasisState {
	return BasisState{bits: append([]int(nil), bits...), isBits: true}
}

// IsBits reports whether the state was given as a bit vector
func (s BasisState) IsBits() bool {
	return s.isBits
}

func (s BasisState) String() string {
	if s.isBits {
		return fmt.Sprint(s.bits)
	}
	return fmt.Sprint(s.value)
}

// FlipSign is a validated (wires, bits) pair
type FlipSign struct {
	ID    uuid.UUID
	wires []int
	bits  []quantum.Bit
}

// New validates wires and then the basis state, in that order, and returns the
// operator. Errors wrap quantum.ErrInvalidArgument, quantum.ErrEncodingOverflow
// or quantum.ErrLengthMismatch.
func New(state BasisState, wires []int) (*FlipSign, error) {
	if err := quantum.ValidateWires(wires); err != nil {
		return nil, err
	}

	var (
		bits []quantum.Bit
		err  error
	)
	if state.isBits {
		bits, err = quantum.ToBits(state.bits)
	} else {
		bits, err = quantum.IntToBits(state.value, len(wires))
	}
	if err != nil {
		return nil, err
	}

	if len(bits) != len(wires) {
		return nil, fmt.Errorf("%w: %d wires, %d bits", quantum.ErrLengthMismatch, len(wires), len(bits))
	}

	fs := &FlipSign{
		ID:    uuid.New(),
		wires: append([]int(nil), wires...),
		bits:  bits,
	}

	zap.L().Debug("flipsign template created",
		zap.String("id", fs.ID.String()),
		zap.Ints("wires", fs.wires),
		zap.String("state", quantum.BitsString(bits)),
	)

	return fs, nil
}

// Wires returns a copy of the wires the operator acts on
func (f *FlipSign) Wires() []int {
	return append([]int(nil), f.wires...)
}

// Bits returns a copy of the flipped basis state
func (f *FlipSign) Bits() []quantum.Bit {
	return append([]quantum.Bit(nil), f.bits...)
}

// Value returns the integer index of the flipped basis state. It fails when
// the index does not fit an int.
func (f *FlipSign) Value() (int, error) {
	return quantum.BitsToInt(f.bits)
}

// NumWires returns the number of wires
func (f *FlipSign) NumWires() int {
	return len(f.wires)
}

// NumParams is always zero: the state is a hyperparameter, not a trainable angle
func (f *FlipSign) NumParams() int {
	return 0
}

// Decomposition returns the elementary gates realising the operator
func (f *FlipSign) Decomposition() []quantum.GateOp {
	// New already checked wires and bits, so Decompose cannot fail here.
	ops, _ := Decompose(f.wires, f.bits)
	return ops
}

func (f *FlipSign) String() string {
	return fmt.Sprintf("FlipSign(%s, wires=%v)", quantum.BitsString(f.bits), f.wires)
}

// Decompose returns the gate sequence flipping the sign of bits on wires.
//
// The last wire is the phase-flip target and the others are controls. A
// controlled Z fires on target value 1, so a 0 in the last bit is handled by
// conjugating the target with X.
func Decompose(wires []int, bits []quantum.Bit) ([]quantum.GateOp, error) {
	if len(wires) == 0 {
		return nil, fmt.Errorf("%w: wires must be a non-empty integer sequence", quantum.ErrInvalidArgument)
	}
	if len(wires) != len(bits) {
		return nil, fmt.Errorf("%w: %d wires, %d bits", quantum.ErrLengthMismatch, len(wires), len(bits))
	}

	last := len(wires) - 1
	target := wires[last]
	ops := make([]quantum.GateOp, 0, 3)

	if bits[last] == quantum.Zero {
		ops = append(ops, quantum.NewPauliX(target))
	}
	ops = append(ops, quantum.NewCtrlPhaseFlip(wires[:last], bits[:last], target))
	if bits[last] == quantum.Zero {
		ops = append(ops, quantum.NewPauliX(target))
	}

	return ops, nil
}
