package activation

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/neuralnet/matrix"
)

var (
	// ErrUnknownKind is returned by Lookup for a Kind outside the table.
	ErrUnknownKind = errors.New("activation: unknown kind")

	// ErrBadAlpha is returned by Lookup when the LeakyReLU slope is NaN or ±Inf.
	ErrBadAlpha = errors.New("activation: alpha must be finite")
)

// Kind names an entry of the activation table.
type Kind int

const (
	// KindReLU is max(0, z).
	KindReLU Kind = iota
	// KindLeakyReLU is max(alpha*z, z).
	KindLeakyReLU
	// KindSigmoid is 1/(1+e^-z).
	KindSigmoid
	// KindTanH is the hyperbolic tangent.
	KindTanH
)

var kindNames = [...]string{
	KindReLU:      "relu",
	KindLeakyReLU: "leaky_relu",
	KindSigmoid:   "sigmoid",
	KindTanH:      "tanh",
}

// String returns the table name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Func is one resolved table entry: the function and its derivative, both
// taking the pre-activation z.
type Func struct {
	Kind       Kind
	Eval       func(z float64) float64
	Derivative func(z float64) float64
}

// Lookup resolves kind into a Func. alpha is the negative-side slope and is
// used by KindLeakyReLU only.
func Lookup(kind Kind, alpha float64) (Func, error) {
	switch kind {
	case KindReLU:
		return Func{Kind: kind, Eval: ReLU, Derivative: ReLUDerivative}, nil
	case KindLeakyReLU:
		if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
			return Func{}, fmt.Errorf("activation: Lookup(%s, %g): %w", kind, alpha, ErrBadAlpha)
		}
		return Func{
			Kind:       kind,
			Eval:       func(z float64) float64 { return LeakyReLU(alpha, z) },
			Derivative: func(z float64) float64 { return LeakyReLUDerivative(alpha, z) },
		}, nil
	case KindSigmoid:
		return Func{Kind: kind, Eval: Sigmoid, Derivative: SigmoidDerivative}, nil
	case KindTanH:
		return Func{Kind: kind, Eval: TanH, Derivative: TanHDerivative}, nil
	}

	return Func{}, fmt.Errorf("activation: Lookup(%s): %w", kind, ErrUnknownKind)
}

// Activate replaces every cell z of m with f.Eval(z).
// The determinant cache of m is cleared.
func Activate(m *matrix.Dense, f Func) error {
	return m.Map(func(_, _ int, z float64) float64 { return f.Eval(z) })
}

// Derive replaces every cell z of m with f.Derivative(z).
func Derive(m *matrix.Dense, f Func) error {
	return m.Map(func(_, _ int, z float64) float64 { return f.Derivative(z) })
}

// LeakyReLU returns max(alpha*z, z).
func LeakyReLU(alpha, z float64) float64 {
	return math.Max(alpha*z, z)
}

// LeakyReLUDerivative returns alpha for z <= 0 and 1 otherwise.
func LeakyReLUDerivative(alpha, z float64) float64 {
	if z <= 0 {
		return alpha
	}

	return 1
}

// ReLU returns max(0, z).
func ReLU(z float64) float64 {
	return math.Max(0, z)
}

// ReLUDerivative returns 0 for z <= 0 and 1 otherwise.
func ReLUDerivative(z float64) float64 {
	if z <= 0 {
		return 0
	}

	return 1
}

// Sigmoid returns 1/(1+e^-z).
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// SigmoidDerivative returns σ(z)·(1-σ(z)).
func SigmoidDerivative(z float64) float64 {
	s := Sigmoid(z)

	return s * (1 - s)
}

// TanH returns the hyperbolic tangent of z.
func TanH(z float64) float64 {
	return math.Tanh(z)
}

// TanHDerivative returns 1 - tanh²(z).
func TanHDerivative(z float64) float64 {
	t := math.Tanh(z)

	return 1 - t*t
}
