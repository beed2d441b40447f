package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGELU(t *testing.T) {
	tests := []struct {
		x    float32
		want float32
	}{
		{0, 0},
		{1, 0.8412},
		{-1, -0.1588},
		{2, 1.9546},
		{-3, -0.0036},
		{6, 6},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, GELU(tt.x), 1e-3, "GELU(%v)", tt.x)
	}
}

func TestGELUMatchesFormula(t *testing.T) {
	for x := float32(-5); x <= 5; x += 0.25 {
		v := float64(x)
		want := 0.5 * v * (1 + math.Tanh(0.7978845608*(v+0.044715*v*v*v)))
		assert.InDelta(t, want, GELU(x), 1e-6, "GELU(%v)", x)
	}
}

func TestReLU(t *testing.T) {
	assert.Equal(t, float32(3), ReLU(3, 0))
	assert.Equal(t, float32(0), ReLU(-3, 0))
	assert.InDelta(t, -0.3, ReLU(-3, 0.1), 1e-6)
	assert.Equal(t, float32(2), ReLU(2, 0.1))
}

func TestTanh(t *testing.T) {
	assert.Equal(t, float32(0), Tanh(0))
	assert.InDelta(t, 0.7616, Tanh(1), 1e-4)
	assert.InDelta(t, -1, Tanh(-20), 1e-6)
}
