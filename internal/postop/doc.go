// Package postop turns a compact "+"-separated chain such as
// "fp32_gelu+quantize+bf16_exp" into an ordered list of post-operation
// descriptors and applies such a list to scalars produced by a kernel.
//
// Grammar:
//
//	chain   = segment { "+" segment }
//	segment = "quantize" | "dequantize" | dtype "_" alg
//	dtype   = "fp32" | "bf16"
//	alg     = "exp" | "gelu" | "relu" | "tanh"
//
// Unrecognized segments are reported in Result.Warnings and skipped; they
// never fail the parse. Applying a list is a left-to-right composition, so an
// empty list is the identity.
//
// Lists are never mutated after parsing and may be shared between goroutines.
package postop
