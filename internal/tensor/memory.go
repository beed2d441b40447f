package tensor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
)

// BufferMode selects what BufferOp does with a buffer.
type BufferMode int

// Buffer operations.
const (
	// Alloc returns a new zeroed buffer of count elements.
	Alloc BufferMode = iota
	// Zero clears the first count elements of an existing buffer.
	Zero
)

// ByteWidth returns the size in bytes of one element of dtype.
func ByteWidth(dtype DataType) (int, error) {
	return dtype.Size()
}

// BufferOp allocates or zero-fills a buffer of count elements of dtype.
//
// In Alloc mode buf is ignored and a new buffer owned by the caller is
// returned. In Zero mode buf is cleared in place and returned. Any other
// mode returns buf untouched.
func BufferOp(buf []byte, count int, dtype DataType, mode BufferMode) ([]byte, error) {
	width, err := dtype.Size()
	if err != nil {
		return nil, fmt.Errorf("buffer op: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("buffer op: negative element count %d", count)
	}
	n := count * width

	switch mode {
	case Alloc:
		return make([]byte, n), nil
	case Zero:
		clear(buf[:n])
	}
	return buf, nil
}

// WriteElement stores val as the idx-th element of buf, encoded as dtype.
//
// Supported stores are fp32, bf16 (rounded to nearest even) and u8 (truncating
// cast). The caller guarantees idx is within the buffer; an out-of-range idx
// panics like any slice access.
func WriteElement(buf []byte, dtype DataType, val float32, idx int) error {
	switch dtype {
	case Fp32:
		binary.NativeEndian.PutUint32(buf[idx*4:], math.Float32bits(val))
	case Bf16:
		binary.NativeEndian.PutUint16(buf[idx*2:], uint16(ToBF16(val)))
	case U8:
		buf[idx] = TruncUint8(val)
	default:
		return fmt.Errorf("write element: %w: %s", ErrUnsupportedDataType, dtype)
	}
	return nil
}

// ReadElement loads the idx-th element of buf, decoded as dtype, widened to float32.
func ReadElement(buf []byte, dtype DataType, idx int) (float32, error) {
	switch dtype {
	case Fp32:
		return math.Float32frombits(binary.NativeEndian.Uint32(buf[idx*4:])), nil
	case Bf16:
		return bfloat16.BFloat16(binary.NativeEndian.Uint16(buf[idx*2:])).Float32(), nil
	case U8:
		return float32(buf[idx]), nil
	case S8:
		return float32(int8(buf[idx])), nil
	default:
		return 0, fmt.Errorf("read element: %w: %s", ErrUnsupportedDataType, dtype)
	}
}

// ToBF16 converts f to bfloat16, rounding to nearest with ties to even.
// NaN stays NaN.
func ToBF16(f float32) bfloat16.BFloat16 {
	bits := math.Float32bits(f)
	if math.IsNaN(float64(f)) {
		// Keep the sign and force a quiet NaN so rounding cannot carry into Inf.
		return bfloat16.BFloat16(bits>>16 | 0x0040)
	}
	bits += 0x7FFF + (bits>>16)&1
	return bfloat16.BFloat16(bits >> 16)
}

// TruncUint8 converts f to uint8 dropping the fraction and wrapping modulo
// 256, which is what a raw 8-bit store of a float does on the reference
// kernels. NaN and infinities store 0.
func TruncUint8(f float32) uint8 {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	w := math.Mod(math.Trunc(v), 256)
	if w < 0 {
		w += 256
	}
	return uint8(w)
}
