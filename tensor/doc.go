// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the element types, shape descriptors and typed byte
// buffers of the postop harness.
//
// # Data Types
//
// Four element representations are supported, each with a fixed width:
//   - Fp32 (4 bytes)
//   - Bf16 (2 bytes, upper half of an fp32, stored with round-to-nearest-even)
//   - U8, S8 (1 byte)
//
// Any other tag makes width-dependent calls fail with ErrUnsupportedDataType.
//
// # Basic Usage
//
//	desc := tensor.TensorDesc{Dims: tensor.Shape{2, 3, 4}, DType: tensor.Bf16}
//	buf, err := tensor.NewRaw(desc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = buf.Set(0, 1.5)
//	v, _ := buf.At(0)
package tensor
