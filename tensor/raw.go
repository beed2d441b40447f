// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/postop/internal/tensor"
)

// RawBuffer is a dense byte buffer interpreted through a DataType.
//
// RawBuffer provides:
//   - Shape and type information via Shape(), DType(), Desc()
//   - Checked element access via Set() and At()
//   - Zero-copy views via AsFloat32() and AsUint8()
//
// Example:
//
//	buf, _ := tensor.NewRaw(tensor.TensorDesc{Dims: tensor.Shape{4}, DType: tensor.U8})
//	_ = buf.Set(0, 200)
//	data := buf.AsUint8()
type RawBuffer = tensor.RawBuffer

// NewRaw allocates a zeroed buffer for desc.
func NewRaw(desc TensorDesc) (*RawBuffer, error) {
	return tensor.NewRaw(desc)
}
