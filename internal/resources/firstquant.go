// Package resources estimates the cost of quantum algorithms for
// first-quantized Hamiltonians in a plane-wave basis.
//
// The expressions follow Su et al., "Fault-tolerant quantum simulations of
// chemistry in first quantization", arXiv:2105.12767.
package resources

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultRotationBits is the default number of bits for the ancilla rotation
	DefaultRotationBits = 7

	// PNu is the upper bound on the success probability of preparing the
	// nuclear-momentum state, Eq. (29) of arXiv:1807.09802
	PNu = 0.936640680638239

	// LambdaNu1 is the calibrated value of λ_ν used by the λ_U,1 and λ_V,1 bounds
	LambdaNu1 = 234.007322015
)

// SuccessProb returns the probability that amplitude amplification prepares
// a uniform superposition over n basis states on the first attempt, when the
// ancilla rotation angle is stored with br bits.
func SuccessProb(n, br int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: number of basis states must be positive, got %d", ErrInvalidArgument, n)
	}
	if br <= 0 {
		return 0, fmt.Errorf("%w: rotation bits must be positive, got %d", ErrInvalidArgument, br)
	}

	steps := math.Pow(2, float64(br))
	if math.IsInf(steps, 0) {
		return 0, fmt.Errorf("%w: 2^%d rotation steps overflow float64", ErrInvalidArgument, br)
	}

	nf := float64(n)
	c := nf / math.Pow(2, math.Ceil(math.Log2(nf)))
	d := 2 * math.Pi / steps

	theta := d * math.RoundToEven((1/d)*math.Asin(math.Sqrt(1/(4*c))))

	s := math.Sin(theta)
	s2 := math.Sin(2 * theta)
	a := 1 + (2-4*c)*s*s

	p := c * (a*a + s2*s2)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: success probability is not finite for n=%d br=%d", ErrInvalidArgument, n, br)
	}
	return p, nil
}

// NormEstimate holds the 1-norm of a first-quantized Hamiltonian together with
// the terms it is built from
type NormEstimate struct {
	Eta          int     `json:"eta"`
	N            int     `json:"n"`
	Omega        float64 `json:"omega"`
	RotationBits int     `json:"br"`
	Charge       int     `json:"charge"`

	NP       int     `json:"n_p"`
	PNu      float64 `json:"p_nu"`
	PEq      float64 `json:"p_eq"`
	LambdaTP float64 `json:"lambda_t_p"`
	LambdaU1 float64 `json:"lambda_u_1"`
	LambdaV1 float64 `json:"lambda_v_1"`
	LambdaA  float64 `json:"lambda_a"`
	LambdaB  float64 `json:"lambda_b"`
	Norm     float64 `json:"norm"`
}

type normConfig struct {
	br     int
	charge int
}

// Option configures a norm estimate
type Option func(*normConfig)

// WithRotationBits sets the number of bits for the ancilla rotation
func WithRotationBits(br int) Option {
	return func(c *normConfig) {
		c.br = br
	}
}

// WithCharge sets the total electric charge of the system
func WithCharge(charge int) Option {
	return func(c *normConfig) {
		c.charge = charge
	}
}

// Norm returns the 1-norm of a first-quantized Hamiltonian with eta electrons,
// n plane-wave basis states and unit cell volume omega
func Norm(eta, n int, omega float64, opts ...Option) (float64, error) {
	est, err := EstimateNorm(eta, n, omega, opts...)
	if err != nil {
		return 0, err
	}
	return est.Norm, nil
}

// EstimateNorm computes the 1-norm and exposes the intermediate terms
func EstimateNorm(eta, n int, omega float64, opts ...Option) (*NormEstimate, error) {
	cfg := normConfig{br: DefaultRotationBits}
	for _, opt := range opts {
		opt(&cfg)
	}

	if eta <= 0 {
		return nil, fmt.Errorf("%w: number of electrons must be positive, got %d", ErrInvalidArgument, eta)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of basis states must be positive, got %d", ErrInvalidArgument, n)
	}
	if !(omega > 0) || math.IsInf(omega, 0) {
		return nil, fmt.Errorf("%w: unit cell volume must be positive and finite, got %v", ErrInvalidArgument, omega)
	}
	if eta > math.MaxInt/6 || cfg.charge > math.MaxInt/6 || cfg.charge < -math.MaxInt/6 {
		return nil, fmt.Errorf("%w: eta=%d charge=%d overflow 3*eta + 2*charge", ErrInvalidArgument, eta, cfg.charge)
	}
	if ne := 3*eta + 2*cfg.charge; ne <= 0 {
		return nil, fmt.Errorf("%w: 3*eta + 2*charge must be positive, got %d", ErrInvalidArgument, ne)
	}

	nf, etaf, q := float64(n), float64(eta), float64(cfg.charge)
	nCbrt := math.Pow(nf, 1.0/3)
	omegaCbrt := math.Pow(omega, 1.0/3)

	np := int(math.Ceil(math.Log2(nCbrt + 1)))
	lambdaNu := 4 * math.Pi * nCbrt

	pEq, err := stateSuccessProb(eta, cfg.charge, cfg.br)
	if err != nil {
		return nil, err
	}

	lambdaU := lambdaNu * etaf * (etaf + q) / (math.Pi * omegaCbrt)
	lambdaV := lambdaNu * etaf * (etaf - 1) / (2 * math.Pi * omegaCbrt)

	lambdaTP := (6 * etaf * math.Pi * math.Pi) / math.Pow(omega, 2.0/3) * math.Pow(2, float64(2*np-2))
	lambdaU1 := LambdaNu1 * lambdaU / lambdaNu
	lambdaV1 := LambdaNu1 * lambdaV / lambdaNu

	// λ_V,1 / (1 - 1/η) vanishes as 0/0 for a single electron; use its limit.
	var lambdaVScaled float64
	if eta == 1 {
		lambdaVScaled = LambdaNu1 * etaf * etaf / (2 * math.Pi * omegaCbrt)
	} else {
		lambdaVScaled = lambdaV1 / (1 - 1/etaf)
	}

	lambdaA := lambdaTP + lambdaU1 + lambdaV1
	lambdaB := (lambdaU1 + lambdaVScaled) / PNu

	est := &NormEstimate{
		Eta:          eta,
		N:            n,
		Omega:        omega,
		RotationBits: cfg.br,
		Charge:       cfg.charge,
		NP:           np,
		PNu:          PNu,
		PEq:          pEq,
		LambdaTP:     lambdaTP,
		LambdaU1:     lambdaU1,
		LambdaV1:     lambdaV1,
		LambdaA:      lambdaA,
		LambdaB:      lambdaB,
		Norm:         math.Max(lambdaA, lambdaB) / pEq,
	}

	zap.L().Debug("first quantization norm estimated",
		zap.Int("eta", eta),
		zap.Int("n", n),
		zap.Float64("omega", omega),
		zap.Int("n_p", np),
		zap.Float64("p_eq", pEq),
		zap.Float64("lambda_t_p", lambdaTP),
		zap.Float64("lambda_u_1", lambdaU1),
		zap.Float64("lambda_v_1", lambdaV1),
		zap.Float64("norm", est.Norm),
	)

	return est, nil
}

// stateSuccessProb is the combined success probability of the state
// preparations used by the block encoding
func stateSuccessProb(eta, charge, br int) (float64, error) {
	p3, err := SuccessProb(3, 8)
	if err != nil {
		return 0, err
	}
	pc, err := SuccessProb(3*eta+2*charge, br)
	if err != nil {
		return 0, err
	}
	pe, err := SuccessProb(eta, br)
	if err != nil {
		return 0, err
	}
	return p3 * pc * pe * pe, nil
}

// Error is the error type returned by the resources package
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrInvalidArgument reports an input outside the domain of a formula
var ErrInvalidArgument = &Error{"invalid argument"}
