package postop

import (
	"fmt"

	"github.com/born-ml/postop/internal/numeric"
	"github.com/born-ml/postop/internal/tensor"
)

// Apply runs value through ops in order and returns the final value.
//
// It fails on the first descriptor whose category is not Eltwise or whose
// algorithm is unknown. An empty list returns value unchanged.
func Apply(value float32, ops []Op) (float32, error) {
	for i, op := range ops {
		v, err := op.Apply(value)
		if err != nil {
			return 0, fmt.Errorf("postop %d: %w", i, err)
		}
		value = v
	}
	return value, nil
}

// Apply applies a single descriptor to x.
func (op Op) Apply(x float32) (float32, error) {
	if op.Type != Eltwise {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, op.Type)
	}

	switch op.Alg {
	case Exp:
		return numeric.BoundedExp(x), nil
	case Gelu:
		return numeric.GELU(x), nil
	case Relu:
		return numeric.ReLU(x, op.Alpha), nil
	case Quantize:
		return float32(numeric.QuantizeAffine(x, op.Alpha, op.Scale)), nil
	case Dequantize:
		return numeric.DequantizeAffine(x, op.Alpha, op.Scale), nil
	case Tanh:
		return numeric.Tanh(x), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedAlg, op.Alg)
	}
}

// ApplyAll applies ops to every element of values in place.
// On error values may be partially transformed.
func ApplyAll(values []float32, ops []Op) error {
	for i, v := range values {
		out, err := Apply(v, ops)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		values[i] = out
	}
	return nil
}

// ApplyTo applies ops to each src value and stores the result at the same
// index of dst, encoded as dst's data type.
//
// This is how reference outputs are produced for comparison against a kernel
// that fuses the same postops into its store.
func ApplyTo(dst *tensor.RawBuffer, src []float32, ops []Op) error {
	if len(src) > dst.NumElements() {
		return fmt.Errorf("apply to buffer: %w: %d values for %d elements",
			tensor.ErrIndexOutOfRange, len(src), dst.NumElements())
	}
	for i, v := range src {
		out, err := Apply(v, ops)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		if err := dst.Set(i, out); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}
