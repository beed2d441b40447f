// Package numeric implements the scalar reference primitives applied after a
// sparse kernel produces a raw value: saturating exponential, tanh-based GELU,
// leaky ReLU, tanh and 8-bit affine quantize/dequantize.
//
// Every function is pure and operates on float32 the way the benchmarked
// kernels do; intermediates are widened to float64 only where the math
// package requires it.
package numeric
