package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/jaskrrish/go-qre/internal/config"
	"github.com/jaskrrish/go-qre/internal/quantum"
	"github.com/jaskrrish/go-qre/internal/resources"
	"github.com/jaskrrish/go-qre/internal/templates/flipsign"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "qre:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "qre",
		Usage: "quantum resource estimates and FlipSign decompositions",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log intermediate values"},
		},
		Before: func(c *cli.Context) error {
			if !c.Bool("verbose") {
				return nil
			}
			cfg := config.Default()
			cfg.LogLevel = "debug"
			logger, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)
			return nil
		},
		Commands: []*cli.Command{
			successProbCommand(),
			normCommand(),
			flipSignCommand(),
		},
	}
}

func successProbCommand() *cli.Command {
	return &cli.Command{
		Name:  "success-prob",
		Usage: "success probability of preparing a uniform state over n basis states",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Required: true, Usage: "number of basis states"},
			&cli.IntFlag{Name: "br", Value: resources.DefaultRotationBits, Usage: "bits for the ancilla rotation"},
		},
		Action: func(c *cli.Context) error {
			p, err := resources.SuccessProb(c.Int("n"), c.Int("br"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, strconv.FormatFloat(p, 'g', -1, 64))
			return nil
		},
	}
}

func normCommand() *cli.Command {
	return &cli.Command{
		Name:  "norm",
		Usage: "1-norm of a first-quantized Hamiltonian in a plane-wave basis",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "eta", Required: true, Usage: "number of electrons"},
			&cli.IntFlag{Name: "n", Required: true, Usage: "number of plane-wave basis states"},
			&cli.Float64Flag{Name: "omega", Required: true, Usage: "unit cell volume"},
			&cli.IntFlag{Name: "br", Value: resources.DefaultRotationBits, Usage: "bits for the ancilla rotation"},
			&cli.IntFlag{Name: "charge", Usage: "total electric charge"},
			&cli.BoolFlag{Name: "terms", Usage: "print the intermediate terms"},
		},
		Action: func(c *cli.Context) error {
			est, err := resources.EstimateNorm(c.Int("eta"), c.Int("n"), c.Float64("omega"),
				resources.WithRotationBits(c.Int("br")),
				resources.WithCharge(c.Int("charge")),
			)
			if err != nil {
				return err
			}
			if !c.Bool("terms") {
				fmt.Fprintln(c.App.Writer, strconv.FormatFloat(est.Norm, 'g', -1, 64))
				return nil
			}
			renderNormTerms(c.App.Writer, est)
			return nil
		},
	}
}

func flipSignCommand() *cli.Command {
	return &cli.Command{
		Name:  "flipsign",
		Usage: "decompose the operator negating one basis state",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{Name: "wires", Required: true, Usage: "wires, the last one is the target"},
			&cli.IntFlag{Name: "state", Usage: "basis state as an integer"},
			&cli.StringFlag{Name: "bits", Usage: "basis state as a bit string, first wire first"},
			&cli.BoolFlag{Name: "qasm", Usage: "print OpenQASM 2.0 instead of a table"},
		},
		Action: func(c *cli.Context) error {
			state := flipsign.FromInt(c.Int("state"))
			if c.IsSet("bits") {
				bits, err := quantum.ParseBits(c.String("bits"))
				if err != nil {
					return err
				}
				raw := make([]int, len(bits))
				for i, b := range bits {
					raw[i] = int(b)
				}
				state = flipsign.FromBits(raw...)
			} else if !c.IsSet("state") {
				return fmt.Errorf("one of --state or --bits is required")
			}

			fs, err := flipsign.New(state, c.IntSlice("wires"))
			if err != nil {
				return err
			}
			ops := fs.Decomposition()

			if c.Bool("qasm") {
				qasm, err := quantum.BuildGateSequenceCircuit(quantum.RegisterSize(ops), ops)
				if err != nil {
					return err
				}
				fmt.Fprint(c.App.Writer, qasm)
				fmt.Fprintf(c.App.Writer, "// sha3-256 %s\n", quantum.CircuitDigest(qasm))
				return nil
			}

			fmt.Fprintln(c.App.Writer, fs)
			renderOps(c.App.Writer, ops)
			return nil
		},
	}
}

func renderOps(w io.Writer, ops []quantum.GateOp) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Gate", "Target", "Controls", "Values"})
	for i, op := range ops {
		table.Append([]string{
			strconv.Itoa(i),
			string(op.Kind),
			strconv.Itoa(op.Target),
			fmt.Sprint(op.Controls),
			quantum.BitsString(op.ControlValues),
		})
	}
	table.Render()
}

func renderNormTerms(w io.Writer, est *resources.NormEstimate) {
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Term", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"n_p", strconv.Itoa(est.NP)},
		{"p_nu", format(est.PNu)},
		{"p_eq", format(est.PEq)},
		{"lambda_t_p", format(est.LambdaTP)},
		{"lambda_u_1", format(est.LambdaU1)},
		{"lambda_v_1", format(est.LambdaV1)},
		{"lambda_a", format(est.LambdaA)},
		{"lambda_b", format(est.LambdaB)},
		{"norm", format(est.Norm)},
	})
	table.Render()
}
