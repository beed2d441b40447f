package numeric

import "math"

// GELU constants of the tanh approximation.
const (
	sqrt2OverPi = 0.7978845608028654 // sqrt(2/pi)
	geluCoeff   = 0.044715
)

// GELU applies the Gaussian Error Linear Unit activation.
// Uses approximation: 0.5 * x * (1 + tanh(sqrt(2/pi) * (x + 0.044715 * x^3))).
func GELU(x float32) float32 {
	v := float64(x)
	inner := sqrt2OverPi * (v + geluCoeff*v*v*v)
	return float32(0.5 * v * (1 + math.Tanh(inner)))
}

// ReLU returns x for positive x and alpha*x otherwise. alpha == 0 is the
// plain rectifier.
func ReLU(x, alpha float32) float32 {
	if x > 0 {
		return x
	}
	return alpha * x
}

// Tanh computes the hyperbolic tangent of x.
func Tanh(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}
