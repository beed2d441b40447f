package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// TensorDesc describes one operand of a kernel: its dimensions and element type.
type TensorDesc struct {
	Dims  Shape
	DType DataType
}

// Shape returns the descriptor's dimensions.
func (d TensorDesc) Shape() Shape {
	return d.Dims
}

// ByteSize returns the number of bytes a dense buffer for d occupies.
func (d TensorDesc) ByteSize() (int, error) {
	width, err := d.DType.Size()
	if err != nil {
		return 0, err
	}
	return d.Dims.NumElements() * width, nil
}

// OperatorDesc is the ordered set of tensor descriptors of a kernel invocation
// (sources, weights, destination, ...).
type OperatorDesc struct {
	TensorDescs []TensorDesc
}

// ElementCount returns the element count of the descriptor at idx.
// See ElementCount.
func (o OperatorDesc) ElementCount(idx int) (int, error) {
	return ElementCount(o.TensorDescs, idx)
}

// ElementCount returns the product of the dimensions of descs[idx].
//
// An out-of-range idx is not fatal: the count is 0 and the returned error
// wraps ErrIndexOutOfRange so the caller can report it and carry on.
func ElementCount(descs []TensorDesc, idx int) (int, error) {
	if idx < 0 || idx >= len(descs) {
		return 0, fmt.Errorf("%w: tensor descriptor %d of %d", ErrIndexOutOfRange, idx, len(descs))
	}
	n := 1
	for _, dim := range descs[idx].Dims {
		n *= dim
	}
	return n, nil
}
