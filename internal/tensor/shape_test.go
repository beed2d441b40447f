package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 0, Shape{5, 0}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{1, 2}.Validate())
	assert.ErrorIs(t, Shape{1, 0}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{-3}.Validate(), ErrInvalidShape)
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 7
	assert.Equal(t, 2, s[0])
	assert.False(t, s.Equal(c))
	assert.True(t, s.Equal(Shape{2, 3}))
}

func TestElementCount(t *testing.T) {
	descs := []TensorDesc{
		{Dims: Shape{2, 3, 4}, DType: Fp32},
		{Dims: Shape{16}, DType: U8},
		{Dims: Shape{}, DType: Bf16},
	}

	n, err := ElementCount(descs, 0)
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	n, err = ElementCount(descs, 1)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	n, err = ElementCount(descs, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestElementCountOutOfRange(t *testing.T) {
	op := OperatorDesc{TensorDescs: []TensorDesc{{Dims: Shape{2, 3, 4}, DType: Fp32}}}

	for _, idx := range []int{1, 5, -1} {
		n, err := op.ElementCount(idx)
		assert.Zero(t, n)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	n, err := ElementCount(nil, 0)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTensorDescByteSize(t *testing.T) {
	n, err := TensorDesc{Dims: Shape{4, 8}, DType: Bf16}.ByteSize()
	require.NoError(t, err)
	assert.Equal(t, 64, n)

	_, err = TensorDesc{Dims: Shape{4}, DType: Undef}.ByteSize()
	assert.ErrorIs(t, err, ErrUnsupportedDataType)
}
