package numeric

import "math"

// expBounds is the float32 input range outside which exp saturates.
// hi is ln(FLT_MAX) and lo is ln(FLT_MIN), rounded the way the JIT kernels
// encode them.
var expBounds = struct {
	lo, hi float32
}{
	lo: math.Float32frombits(0xc2aeac50),
	hi: math.Float32frombits(0x42b17218),
}

// ExpBounds returns the lower and upper saturation thresholds of BoundedExp.
func ExpBounds() (lo, hi float32) {
	return expBounds.lo, expBounds.hi
}

// BoundedExp computes e^x, returning +Inf above ln(FLT_MAX) and 0 below
// ln(FLT_MIN) without calling into math.Exp.
func BoundedExp(x float32) float32 {
	switch {
	case x > expBounds.hi:
		return float32(math.Inf(1))
	case x < expBounds.lo:
		return 0
	default:
		return float32(math.Exp(float64(x)))
	}
}
