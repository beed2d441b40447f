package numeric

import (
	"math"

	"github.com/born-ml/postop/internal/tensor"
)

// QuantizeAffine maps x to u8 as round(scale * (x - alpha)) clamped to [0, 255].
//
// Rounding is half away from zero and happens before the clamp. NaN maps to 0.
func QuantizeAffine(x, alpha, scale float32) uint8 {
	r := math.Round(float64(scale * (x - alpha)))
	switch {
	case r > 255:
		return 255
	case r >= 0:
		return uint8(r)
	default: // negative or NaN
		return 0
	}
}

// DequantizeAffine maps x back to float as (u8(x) - alpha) * scale.
//
// x is first narrowed with the same 8-bit store WriteElement uses (fraction
// dropped, wrapped modulo 256), so fractional or out-of-range inputs lose
// precision exactly as an 8-bit round-trip would. The narrowing happens before
// alpha is subtracted.
func DequantizeAffine(x, alpha, scale float32) float32 {
	v := float32(tensor.TruncUint8(x))
	v -= alpha
	v *= scale
	return v
}
