// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/postop/internal/tensor"
)

// DataType is the runtime tag for an element representation.
type DataType = tensor.DataType

// Data type constants.
const (
	Undef DataType = tensor.Undef
	Fp32  DataType = tensor.Fp32
	Bf16  DataType = tensor.Bf16
	U8    DataType = tensor.U8
	S8    DataType = tensor.S8
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} has 24 elements.
type Shape = tensor.Shape

// TensorDesc describes one kernel operand: dimensions and element type.
type TensorDesc = tensor.TensorDesc

// OperatorDesc is the ordered set of operand descriptors of a kernel.
type OperatorDesc = tensor.OperatorDesc

// BufferMode selects the action of BufferOp.
type BufferMode = tensor.BufferMode

// Buffer modes.
const (
	Alloc BufferMode = tensor.Alloc
	Zero  BufferMode = tensor.Zero
)

// Errors.
var (
	ErrUnsupportedDataType = tensor.ErrUnsupportedDataType
	ErrIndexOutOfRange     = tensor.ErrIndexOutOfRange
	ErrInvalidShape        = tensor.ErrInvalidShape
)

// ParseDataType returns the data type named "fp32", "bf16", "u8" or "s8".
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// ByteWidth returns the size in bytes of one element of dtype.
func ByteWidth(dtype DataType) (int, error) {
	return tensor.ByteWidth(dtype)
}

// BufferOp allocates (Alloc) or clears (Zero) a buffer of count elements.
func BufferOp(buf []byte, count int, dtype DataType, mode BufferMode) ([]byte, error) {
	return tensor.BufferOp(buf, count, dtype, mode)
}

// WriteElement stores val as element idx of buf encoded as dtype.
// fp32, bf16 and u8 are supported. idx is not bounds-checked beyond the
// slice access itself.
func WriteElement(buf []byte, dtype DataType, val float32, idx int) error {
	return tensor.WriteElement(buf, dtype, val, idx)
}

// ReadElement loads element idx of buf decoded as dtype.
func ReadElement(buf []byte, dtype DataType, idx int) (float32, error) {
	return tensor.ReadElement(buf, dtype, idx)
}

// ElementCount returns the element count of descs[idx], or 0 and an error
// wrapping ErrIndexOutOfRange.
func ElementCount(descs []TensorDesc, idx int) (int, error) {
	return tensor.ElementCount(descs, idx)
}
