// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package postop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/postop/postop"
	"github.com/born-ml/postop/tensor"
)

func TestParseAndApply(t *testing.T) {
	res := postop.Parse("fp32_relu+quantize+dequantize")
	require.Empty(t, res.Warnings)
	assert.Equal(t, tensor.Fp32, res.DataType)
	assert.Equal(t, "fp32_relu+quantize+dequantize", postop.Format(res.Ops))

	got, err := postop.Apply(9, res.Ops)
	require.NoError(t, err)
	assert.Equal(t, float32(10), got)
}

func TestBadTokenIsDiagnostic(t *testing.T) {
	res := postop.Parse("badtoken")
	assert.Empty(t, res.Ops)
	require.Len(t, res.Warnings, 1)

	var perr *postop.ParseError
	require.ErrorAs(t, res.Warnings[0], &perr)
	assert.ErrorIs(t, perr, postop.ErrUnsupportedToken)
}

func TestApplyToBuffer(t *testing.T) {
	dst, err := tensor.NewRaw(tensor.TensorDesc{Dims: tensor.Shape{3}, DType: tensor.Fp32})
	require.NoError(t, err)

	ops := postop.List{postop.NewOp(tensor.Fp32, postop.Eltwise, postop.Relu, 0.25, 0, 0)}
	require.NoError(t, postop.ApplyTo(dst, []float32{-4, 0, 4}, ops))
	assert.Equal(t, []float32{-1, 0, 4}, dst.AsFloat32())
}

func TestUnsupportedCategory(t *testing.T) {
	op := postop.NewOp(tensor.Fp32, postop.TypeUndef, postop.Exp, 0, 0, 0)
	_, err := postop.Apply(1, []postop.Op{op})
	assert.ErrorIs(t, err, postop.ErrUnsupportedType)
}
