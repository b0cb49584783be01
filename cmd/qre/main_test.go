package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"qre"}, args...))
	return out.String(), err
}

func TestSuccessProbCommand(t *testing.T) {
	out, err := run(t, "success-prob", "--n", "10000", "--br", "7")
	require.NoError(t, err)

	p, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.9998814293823286, p, 1e-9)
}

func TestNormCommand(t *testing.T) {
	out, err := run(t, "norm", "--eta", "156", "--n", "100000", "--omega", "169.69608")
	require.NoError(t, err)

	v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InEpsilon(t, 799011.8412787738, v, 1e-6)

	out, err = run(t, "norm", "--eta", "156", "--n", "100000", "--omega", "169.69608", "--terms")
	require.NoError(t, err)
	assert.Contains(t, out, "TERM")
	assert.Contains(t, out, "lambda_u_1")

	_, err = run(t, "norm", "--eta", "0", "--n", "100", "--omega", "1")
	assert.Error(t, err)
}

func TestFlipSignCommand(t *testing.T) {
	out, err := run(t, "flipsign", "--wires", "0,1", "--bits", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "FlipSign(10, wires=[0 1])")
	assert.Equal(t, 2, strings.Count(out, "PauliX"))
	assert.Contains(t, out, "CtrlPhaseFlip")

	out, err = run(t, "flipsign", "--wires", "0,1,2", "--state", "6", "--qasm")
	require.NoError(t, err)
	assert.Contains(t, out, "OPENQASM 2.0;")
	assert.Contains(t, out, "ccx q[0],q[1],q[2];")
	assert.Contains(t, out, "// sha3-256 ")

	_, err = run(t, "flipsign", "--wires", "0,1", "--state", "6")
	assert.Error(t, err)

	_, err = run(t, "flipsign", "--wires", "0,1")
	assert.Error(t, err)

	_, err = run(t, "flipsign", "--wires", "0,1", "--bits", "1x")
	assert.Error(t, err)
}
