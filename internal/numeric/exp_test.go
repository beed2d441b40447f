package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpBounds(t *testing.T) {
	lo, hi := ExpBounds()
	assert.InDelta(t, math.Log(math.MaxFloat32), hi, 1e-4)
	assert.InDelta(t, math.Log(math.SmallestNonzeroFloat32*(1<<23)), lo, 1e-4) // ln(FLT_MIN)
}

func TestBoundedExpSaturates(t *testing.T) {
	lo, hi := ExpBounds()

	for _, x := range []float32{hi + 0.01, 100, 1e10, float32(math.Inf(1))} {
		assert.True(t, math.IsInf(float64(BoundedExp(x)), 1), "exp(%v) should be +Inf", x)
	}
	for _, x := range []float32{lo - 0.01, -100, -1e10, float32(math.Inf(-1))} {
		assert.Equal(t, float32(0), BoundedExp(x), "exp(%v) should be 0", x)
	}
}

func TestBoundedExpInRange(t *testing.T) {
	for _, x := range []float32{-87, -10, -1, 0, 0.5, 1, 10, 88} {
		want := math.Exp(float64(x))
		got := float64(BoundedExp(x))
		assert.InEpsilon(t, want, got, 1e-6, "exp(%v)", x)
	}
}

func TestBoundedExpNaN(t *testing.T) {
	assert.True(t, math.IsNaN(float64(BoundedExp(float32(math.NaN())))))
}
