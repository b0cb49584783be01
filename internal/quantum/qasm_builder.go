package quantum

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// QASMBuilder builds OpenQASM 2.0 circuits
type QASMBuilder struct {
	version      string
	includeStmt  string
	registers    []string
	gates        []string
	measurements []string
}

// NewQASMBuilder creates a new OpenQASM circuit builder
func NewQASMBuilder(numQubits int, numClassical int) *QASMBuilder {
	builder := &QASMBuilder{
		version:      "OPENQASM 2.0;",
		includeStmt:  "include \"qelib1.inc\";",
		registers:    make([]string, 0),
		gates:        make([]string, 0),
		measurements: make([]string, 0),
	}

	builder.registers = append(builder.registers, fmt.Sprintf("qreg q[%d];", numQubits))
	if numClassical > 0 {
		builder.registers = append(builder.registers, fmt.Sprintf("creg c[%d];", numClassical))
	}

	return builder
}

// AddGate adds a raw quantum gate statement
func (b *QASMBuilder) AddGate(gate string) {
	b.gates = append(b.gates, gate)
}

// AddGateOp translates a GateOp into qelib1 statements.
//
// Controls with value 0 are conjugated by x so that the native gates, which
// trigger on 1, fire on the requested pattern.
func (b *QASMBuilder) AddGateOp(op GateOp) error {
	switch op.Kind {
	case PauliX:
		b.AddGate(fmt.Sprintf("x q[%d];", op.Target))
		return nil
	case CtrlPhaseFlip:
	default:
		return fmt.Errorf("%w: unknown gate kind %q", ErrUnsupportedGate, op.Kind)
	}

	if len(op.Controls) != len(op.ControlValues) {
		return fmt.Errorf("%w: %d controls but %d control values", ErrLengthMismatch, len(op.Controls), len(op.ControlValues))
	}

	var flipped []int
	for i, c := range op.Controls {
		if op.ControlValues[i] == Zero {
			flipped = append(flipped, c)
		}
	}
	for _, c := range flipped {
		b.AddGate(fmt.Sprintf("x q[%d];", c))
	}

	switch len(op.Controls) {
	case 0:
		b.AddGate(fmt.Sprintf("z q[%d];", op.Target))
	case 1:
		b.AddGate(fmt.Sprintf("cz q[%d],q[%d];", op.Controls[0], op.Target))
	case 2:
		// CCZ = (I⊗I⊗H) CCX (I⊗I⊗H)
		b.AddGate(fmt.Sprintf("h q[%d];", op.Target))
		b.AddGate(fmt.Sprintf("ccx q[%d],q[%d],q[%d];", op.Controls[0], op.Controls[1], op.Target))
		b.AddGate(fmt.Sprintf("h q[%d];", op.Target))
	default:
		return fmt.Errorf("%w: %d controls, qelib1.inc supports at most 2", ErrUnsupportedGate, len(op.Controls))
	}

	for _, c := range flipped {
		b.AddGate(fmt.Sprintf("x q[%d];", c))
	}
	return nil
}

// AddMeasurement adds a measurement operation
func (b *QASMBuilder) AddMeasurement(qubit int, classical int) {
	b.measurements = append(b.measurements,
		fmt.Sprintf("measure q[%d] -> c[%d];", qubit, classical))
}

// Build generates the complete QASM circuit string
func (b *QASMBuilder) Build() string {
	var circuit strings.Builder

	circuit.WriteString(b.version + "\n")
	circuit.WriteString(b.includeStmt + "\n")
	circuit.WriteString("\n")

	for _, reg := range b.registers {
		circuit.WriteString(reg + "\n")
	}
	circuit.WriteString("\n")

	for _, gate := range b.gates {
		circuit.WriteString(gate + "\n")
	}

	if len(b.measurements) > 0 {
		circuit.WriteString("\n")
		for _, meas := range b.measurements {
			circuit.WriteString(meas + "\n")
		}
	}

	return circuit.String()
}

// RegisterSize returns the number of qubits needed to address every wire in ops
func RegisterSize(ops []GateOp) int {
	size := 0
	for _, op := range ops {
		for _, w := range op.Wires() {
			if w+1 > size {
				size = w + 1
			}
		}
	}
	return size
}

// BuildGateSequenceCircuit exports a gate sequence as an OpenQASM 2.0 program
// without measurements
func BuildGateSequenceCircuit(numQubits int, ops []GateOp) (string, error) {
	if need := RegisterSize(ops); numQubits < need {
		return "", fmt.Errorf("%w: gates address %d qubits, register has %d", ErrInvalidArgument, need, numQubits)
	}

	builder := NewQASMBuilder(numQubits, 0)
	for _, op := range ops {
		if err := builder.AddGateOp(op); err != nil {
			return "", err
		}
	}

	return builder.Build(), nil
}

// BuildSuperpositionCircuit prepares the uniform superposition on every
// qubit, applies ops and measures all qubits. The measured distribution is
// flat; the sign flip only shows up in interference or state readout.
func BuildSuperpositionCircuit(numQubits int, ops []GateOp) (string, error) {
	if need := RegisterSize(ops); numQubits < need {
		return "", fmt.Errorf("%w: gates address %d qubits, register has %d", ErrInvalidArgument, need, numQubits)
	}

	builder := NewQASMBuilder(numQubits, numQubits)
	for i := 0; i < numQubits; i++ {
		builder.AddGate(fmt.Sprintf("h q[%d];", i))
	}
	for _, op := range ops {
		if err := builder.AddGateOp(op); err != nil {
			return "", err
		}
	}
	for i := 0; i < numQubits; i++ {
		builder.AddMeasurement(i, i)
	}

	return builder.Build(), nil
}

// CircuitDigest returns the hex SHA3-256 of a circuit's text
func CircuitDigest(qasm string) string {
	sum := sha3.Sum256([]byte(qasm))
	return hex.EncodeToString(sum[:])
}
