// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package postop parses post-operation chains and applies them to kernel
// outputs.
//
// A chain is a "+"-separated list of segments, each either "quantize",
// "dequantize" or "<fp32|bf16>_<exp|gelu|relu|tanh>":
//
//	res := postop.Parse("fp32_gelu+quantize+bf16_exp")
//	for _, w := range res.Warnings {
//	    log.Printf("skipped: %v", w)
//	}
//	out, err := postop.Apply(x, res.Ops)
//
// Parsing never fails; bad segments are reported in Result.Warnings. Applying
// fails only for descriptors that are not elementwise or name an unknown
// algorithm.
package postop

import (
	"github.com/born-ml/postop/internal/postop"
	"github.com/born-ml/postop/tensor"
)

// Op describes one post-operation.
type Op = postop.Op

// List is an ordered chain of post-operations.
type List = postop.List

// Type is the category of a post-operation.
type Type = postop.Type

// Categories.
const (
	TypeUndef Type = postop.TypeUndef
	Eltwise   Type = postop.Eltwise
)

// Alg is the algorithm of a post-operation.
type Alg = postop.Alg

// Algorithms.
const (
	AlgUndef   Alg = postop.AlgUndef
	Exp        Alg = postop.Exp
	Gelu       Alg = postop.Gelu
	Relu       Alg = postop.Relu
	Quantize   Alg = postop.Quantize
	Dequantize Alg = postop.Dequantize
	Tanh       Alg = postop.Tanh
)

// Result is the outcome of parsing a chain.
type Result = postop.Result

// ParseError describes a skipped chain segment.
type ParseError = postop.ParseError

// QuantParams are the parameters attached to bare quantize/dequantize segments.
type QuantParams = postop.QuantParams

// ParserConfig configures a Parser.
type ParserConfig = postop.ParserConfig

// Parser converts chain strings into descriptor lists.
type Parser = postop.Parser

// Errors.
var (
	ErrUnsupportedType  = postop.ErrUnsupportedType
	ErrUnsupportedAlg   = postop.ErrUnsupportedAlg
	ErrUnsupportedToken = postop.ErrUnsupportedToken
)

// DefaultParserConfig returns the quantize (fp32, scale 0.5) and dequantize
// (u8, scale 2) defaults.
func DefaultParserConfig() ParserConfig {
	return postop.DefaultParserConfig()
}

// NewParser creates a parser with the given configuration.
func NewParser(config ParserConfig) *Parser {
	return postop.NewParser(config)
}

// Parse parses a chain with the default configuration.
func Parse(s string) Result {
	return postop.Parse(s)
}

// Format renders ops in chain form.
func Format(ops []Op) string {
	return postop.Format(ops)
}

// NewOp returns a fully specified descriptor.
func NewOp(dt tensor.DataType, typ Type, alg Alg, alpha, beta, scale float32) Op {
	return postop.NewOp(dt, typ, alg, alpha, beta, scale)
}

// NewEltwise returns an elementwise descriptor without parameters.
func NewEltwise(dt tensor.DataType, alg Alg) Op {
	return postop.NewEltwise(dt, alg)
}

// Apply runs value through ops in order.
func Apply(value float32, ops []Op) (float32, error) {
	return postop.Apply(value, ops)
}

// ApplyAll applies ops to every element of values in place.
func ApplyAll(values []float32, ops []Op) error {
	return postop.ApplyAll(values, ops)
}

// ApplyTo applies ops to src and stores the results into dst.
func ApplyTo(dst *tensor.RawBuffer, src []float32, ops []Op) error {
	return postop.ApplyTo(dst, src, ops)
}
