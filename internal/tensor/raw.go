package tensor

import (
	"fmt"
	"unsafe"
)

// RawBuffer is a dense, untyped byte buffer interpreted through a DataType.
// It is the destination a kernel (or a reference implementation) writes into.
type RawBuffer struct {
	data  []byte
	shape Shape
	dtype DataType
}

// NewRaw allocates a zeroed buffer for the given descriptor.
func NewRaw(desc TensorDesc) (*RawBuffer, error) {
	if err := desc.Dims.Validate(); err != nil {
		return nil, fmt.Errorf("new raw buffer: %w", err)
	}
	data, err := BufferOp(nil, desc.Dims.NumElements(), desc.DType, Alloc)
	if err != nil {
		return nil, fmt.Errorf("new raw buffer: %w", err)
	}
	return &RawBuffer{
		data:  data,
		shape: desc.Dims.Clone(),
		dtype: desc.DType,
	}, nil
}

// Shape returns the buffer's shape.
func (r *RawBuffer) Shape() Shape {
	return r.shape
}

// DType returns the buffer's data type.
func (r *RawBuffer) DType() DataType {
	return r.dtype
}

// Desc returns the descriptor the buffer was built from.
func (r *RawBuffer) Desc() TensorDesc {
	return TensorDesc{Dims: r.shape.Clone(), DType: r.dtype}
}

// NumElements returns the total number of elements.
func (r *RawBuffer) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawBuffer) ByteSize() int {
	return len(r.data)
}

// Bytes returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawBuffer) Bytes() []byte {
	return r.data
}

// Set stores val at element idx using the buffer's data type.
func (r *RawBuffer) Set(idx int, val float32) error {
	if err := r.checkIndex(idx); err != nil {
		return err
	}
	return WriteElement(r.data, r.dtype, val, idx)
}

// At loads element idx widened to float32.
func (r *RawBuffer) At(idx int) (float32, error) {
	if err := r.checkIndex(idx); err != nil {
		return 0, err
	}
	return ReadElement(r.data, r.dtype, idx)
}

// Zero clears every element.
func (r *RawBuffer) Zero() error {
	_, err := BufferOp(r.data, r.NumElements(), r.dtype, Zero)
	return err
}

// AsFloat32 interprets the data as []float32.
// Panics if the buffer's dtype is not Fp32.
func (r *RawBuffer) AsFloat32() []float32 {
	if r.dtype != Fp32 {
		panic(fmt.Sprintf("buffer dtype is %s, not fp32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the buffer's dtype is not U8.
func (r *RawBuffer) AsUint8() []uint8 {
	if r.dtype != U8 {
		panic(fmt.Sprintf("buffer dtype is %s, not u8", r.dtype))
	}
	return r.data // Already []byte = []uint8
}

func (r *RawBuffer) checkIndex(idx int) error {
	if idx < 0 || idx >= r.NumElements() {
		return fmt.Errorf("%w: element %d of %d", ErrIndexOutOfRange, idx, r.NumElements())
	}
	return nil
}
