package postop

import (
	"fmt"
	"strings"

	"github.com/born-ml/postop/internal/tensor"
)

// QuantParams are the fixed parameters attached to a bare "quantize" or
// "dequantize" segment.
type QuantParams struct {
	DType tensor.DataType
	Alpha float32
	Beta  float32
	Scale float32
}

// ParserConfig configures the descriptors produced for parameterless segments.
type ParserConfig struct {
	Quantize   QuantParams
	Dequantize QuantParams
}

// DefaultParserConfig returns the parameters the reference kernels are
// benchmarked with: quantize fp32 input with scale 0.5, dequantize u8 input
// with scale 2, zero points at 0.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		Quantize:   QuantParams{DType: tensor.Fp32, Scale: 0.5},
		Dequantize: QuantParams{DType: tensor.U8, Scale: 2},
	}
}

// Result is the outcome of parsing a chain.
type Result struct {
	// Ops holds one descriptor per accepted segment, in chain order.
	Ops List

	// DataType is the data type of the last segment whose "<dtype>_" prefix
	// was recognized, or tensor.Undef if there was none. A recognized prefix
	// counts even if its algorithm suffix was then rejected.
	DataType tensor.DataType

	// Warnings holds a *ParseError for every skipped segment.
	Warnings []error
}

// Parser converts chain strings into descriptor lists.
type Parser struct {
	config ParserConfig
}

// NewParser creates a parser with the given configuration.
func NewParser(config ParserConfig) *Parser {
	return &Parser{config: config}
}

var defaultParser = NewParser(DefaultParserConfig())

// Parse parses s with DefaultParserConfig.
func Parse(s string) Result {
	return defaultParser.Parse(s)
}

// Parse splits s on "+" and converts every segment into a descriptor.
//
// An empty s yields an empty list without warnings. Empty segments produced
// by a leading, trailing or doubled "+" are skipped with a warning.
func (p *Parser) Parse(s string) Result {
	res := Result{DataType: tensor.Undef}
	if s == "" {
		return res
	}

	for i, seg := range strings.Split(s, "+") {
		prefix, suffix, found := strings.Cut(seg, "_")
		if !found {
			switch seg {
			case "quantize":
				res.Ops = append(res.Ops, p.config.Quantize.op(Quantize))
			case "dequantize":
				res.Ops = append(res.Ops, p.config.Dequantize.op(Dequantize))
			default:
				res.warn(i, seg, ErrUnsupportedToken)
			}
			continue
		}

		dt, err := chainDataType(prefix)
		if err != nil {
			res.warn(i, seg, err)
			continue
		}
		res.DataType = dt

		alg, err := chainAlg(suffix)
		if err != nil {
			res.warn(i, seg, err)
			continue
		}
		res.Ops = append(res.Ops, NewEltwise(dt, alg))
	}
	return res
}

func (q QuantParams) op(alg Alg) Op {
	return NewOp(q.DType, Eltwise, alg, q.Alpha, q.Beta, q.Scale)
}

func (r *Result) warn(idx int, seg string, err error) {
	r.Warnings = append(r.Warnings, &ParseError{Index: idx, Segment: seg, Err: err})
}

// chainDataType accepts only the data types a "<dtype>_<alg>" segment may name.
func chainDataType(s string) (tensor.DataType, error) {
	switch s {
	case "fp32":
		return tensor.Fp32, nil
	case "bf16":
		return tensor.Bf16, nil
	default:
		return tensor.Undef, fmt.Errorf("%w: %q", tensor.ErrUnsupportedDataType, s)
	}
}

// chainAlg accepts only the algorithms a "<dtype>_<alg>" segment may name.
func chainAlg(s string) (Alg, error) {
	switch s {
	case "exp":
		return Exp, nil
	case "gelu":
		return Gelu, nil
	case "relu":
		return Relu, nil
	case "tanh":
		return Tanh, nil
	default:
		return AlgUndef, fmt.Errorf("%w: %q", ErrUnsupportedAlg, s)
	}
}

// Format renders ops in chain form, e.g. "fp32_gelu+quantize+bf16_exp".
//
// Quantize and Dequantize render as their bare tokens, so their parameters are
// not preserved; parsing the output with the same ParserConfig reproduces any
// list the parser built.
func Format(ops []Op) string {
	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		switch op.Alg {
		case Quantize, Dequantize:
			parts = append(parts, op.Alg.String())
		default:
			parts = append(parts, op.DType.String()+"_"+op.Alg.String())
		}
	}
	return strings.Join(parts, "+")
}
