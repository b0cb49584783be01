package flipsign

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaskrrish/go-qre/internal/quantum"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		state    BasisState
		wires    []int
		expected []quantum.Bit
	}{
		{"Bits [1,0]", FromBits(1, 0), []int{0, 1}, []quantum.Bit{1, 0}},
		{"Bits [1,0,0,0]", FromBits(1, 0, 0, 0), []int{0, 1, 2, 3}, []quantum.Bit{1, 0, 0, 0}},
		{"Int 6 on 3 wires", FromInt(6), []int{0, 1, 2}, []quantum.Bit{1, 1, 0}},
		{"Int 0 on 1 wire", FromInt(0), []int{4}, []quantum.Bit{0}},
		{"Int 1 padded", FromInt(1), []int{3, 2, 1, 0}, []quantum.Bit{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := New(tt.state, tt.wires)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, fs.Bits())
			assert.Equal(t, tt.wires, fs.Wires())
			assert.Equal(t, len(tt.wires), fs.NumWires())
			assert.Equal(t, 0, fs.NumParams())
			assert.NotEqual(t, uuid.Nil, fs.ID)
		})
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name  string
		state BasisState
		wires []int
		err   error
	}{
		{"Empty wires with int", FromInt(0), []int{}, quantum.ErrInvalidArgument},
		{"Nil wires with bits", FromBits(1), nil, quantum.ErrInvalidArgument},
		{"Empty wires with bad bits", FromBits(7), nil, quantum.ErrInvalidArgument},
		{"Empty wires with overflowing int", FromInt(6), nil, quantum.ErrInvalidArgument},
		{"Duplicate wires", FromInt(0), []int{0, 0}, quantum.ErrInvalidArgument},
		{"Negative wire", FromInt(0), []int{-1}, quantum.ErrInvalidArgument},
		{"Non-binary bits", FromBits(1, 2), []int{0, 1}, quantum.ErrInvalidArgument},
		{"Negative int", FromInt(-3), []int{0, 1}, quantum.ErrInvalidArgument},
		{"Six into two wires", FromInt(6), []int{0, 1}, quantum.ErrEncodingOverflow},
		{"Bits too short", FromBits(1), []int{0, 1}, quantum.ErrLengthMismatch},
		{"Bits too long", FromBits(1, 0, 1), []int{0, 1}, quantum.ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := New(tt.state, tt.wires)
			assert.Nil(t, fs)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewCopiesInputs(t *testing.T) {
	wires := []int{0, 1}
	raw := []int{1, 0}
	state := FromBits(raw...)
	raw[0] = 0

	fs, err := New(state, wires)
	require.NoError(t, err)
	wires[0] = 9

	assert.Equal(t, []int{0, 1}, fs.Wires())
	assert.Equal(t, []quantum.Bit{1, 0}, fs.Bits())

	bits := fs.Bits()
	bits[0] = 0
	assert.Equal(t, []quantum.Bit{1, 0}, fs.Bits())
}

func TestValue(t *testing.T) {
	fs, err := New(FromBits(1, 0, 1), []int{0, 1, 2})
	require.NoError(t, err)

	v, err := fs.Value()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, "FlipSign(101, wires=[0 1 2])", fs.String())
}

func TestBasisStateString(t *testing.T) {
	assert.Equal(t, "6", FromInt(6).String())
	assert.Equal(t, "[1 0]", FromBits(1, 0).String())
	assert.True(t, FromBits(1).IsBits())
	assert.False(t, FromInt(1).IsBits())
}

func TestDecompose(t *testing.T) {
	t.Run("Two wires, state 10", func(t *testing.T) {
		ops, err := Decompose([]int{0, 1}, []quantum.Bit{1, 0})
		require.NoError(t, err)

		assert.Equal(t, []quantum.GateOp{
			quantum.NewPauliX(1),
			quantum.NewCtrlPhaseFlip([]int{0}, []quantum.Bit{1}, 1),
			quantum.NewPauliX(1),
		}, ops)
	})

	t.Run("Last bit set needs no X", func(t *testing.T) {
		ops, err := Decompose([]int{2, 5, 7}, []quantum.Bit{0, 1, 1})
		require.NoError(t, err)
		require.Len(t, ops, 1)

		assert.Equal(t, quantum.CtrlPhaseFlip, ops[0].Kind)
		assert.Equal(t, 7, ops[0].Target)
		assert.Equal(t, []int{2, 5}, ops[0].Controls)
		assert.Equal(t, []quantum.Bit{0, 1}, ops[0].ControlValues)
	})

	t.Run("Single wire is an unconditional Z", func(t *testing.T) {
		ops, err := Decompose([]int{3}, []quantum.Bit{1})
		require.NoError(t, err)
		assert.Equal(t, []quantum.GateOp{quantum.NewCtrlPhaseFlip(nil, nil, 3)}, ops)

		ops, err = Decompose([]int{3}, []quantum.Bit{0})
		require.NoError(t, err)
		assert.Equal(t, "X(3) Z(3) X(3)", fmt.Sprintf("%v %v %v", ops[0], ops[1], ops[2]))
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := Decompose(nil, nil)
		assert.ErrorIs(t, err, quantum.ErrInvalidArgument)

		_, err = Decompose([]int{0, 1}, []quantum.Bit{1})
		assert.ErrorIs(t, err, quantum.ErrLengthMismatch)
	})
}

// TestDecomposeShape checks the gate count and the control count of the
// phase flip for every basis state up to six wires
func TestDecomposeShape(t *testing.T) {
	for w := 1; w <= 6; w++ {
		wires := make([]int, w)
		for i := range wires {
			wires[i] = i
		}
		for k := 0; k < 1<<w; k++ {
			fs, err := New(FromInt(k), wires)
			require.NoError(t, err)
			ops := fs.Decomposition()

			want := 1
			if k&1 == 0 {
				want = 3
			}
			require.Len(t, ops, want, "k=%d w=%d", k, w)

			var phase quantum.GateOp
			for _, op := range ops {
				if op.Kind == quantum.CtrlPhaseFlip {
					phase = op
				}
			}
			assert.Len(t, phase.Controls, w-1)
			assert.Equal(t, wires[w-1], phase.Target)
		}
	}
}

func TestEndToEndTwoWires(t *testing.T) {
	fs, err := New(FromBits(1, 0), []int{0, 1})
	require.NoError(t, err)

	sv := newUniformState(fs.Wires())
	sv.apply(fs.Decomposition())

	assert.Equal(t, []int{2}, sv.negated())
	for _, i := range []int{0, 1, 3} {
		assert.Greater(t, sv.amps[i], 0.0, "index %d", i)
	}
}

// TestFlipsExactlyOneState runs every basis state through the simulator
func TestFlipsExactlyOneState(t *testing.T) {
	wireSets := [][]int{
		{0},
		{0, 1},
		{0, 1, 2},
		{3, 1, 0, 2},
		{10, 4, 7, 0, 2},
	}

	for _, wires := range wireSets {
		t.Run(fmt.Sprintf("wires %v", wires), func(t *testing.T) {
			for k := 0; k < 1<<len(wires); k++ {
				fs, err := New(FromInt(k), wires)
				require.NoError(t, err)

				sv := newUniformState(wires)
				sv.apply(fs.Decomposition())
				assert.Equal(t, []int{k}, sv.negated(), "state %d", k)
			}
		})
	}
}

func BenchmarkDecompose(b *testing.B) {
	wires := []int{0, 1, 2, 3, 4, 5, 6, 7}
	bits := []quantum.Bit{1, 0, 1, 1, 0, 0, 1, 0}
	for i := 0; i < b.N; i++ {
		Decompose(wires, bits)
	}
}
