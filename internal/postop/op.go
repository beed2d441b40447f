package postop

import (
	"fmt"

	"github.com/born-ml/postop/internal/tensor"
)

// Type is the category of a post-operation.
type Type int

// Supported categories. Only Eltwise can be applied.
const (
	TypeUndef Type = iota
	Eltwise
)

// String returns a human-readable name for the category.
func (t Type) String() string {
	switch t {
	case TypeUndef:
		return "undef"
	case Eltwise:
		return "eltwise"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Alg is the algorithm a post-operation applies.
type Alg int

// Supported algorithms.
const (
	AlgUndef Alg = iota
	Exp
	Gelu
	Relu
	Quantize
	Dequantize
	Tanh
)

var algNames = map[Alg]string{
	AlgUndef:   "undef",
	Exp:        "exp",
	Gelu:       "gelu",
	Relu:       "relu",
	Quantize:   "quantize",
	Dequantize: "dequantize",
	Tanh:       "tanh",
}

// String returns the grammar name of the algorithm.
func (a Alg) String() string {
	if name, ok := algNames[a]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(a))
}

// ParseAlg returns the algorithm named s.
func ParseAlg(s string) (Alg, error) {
	for alg, name := range algNames {
		if alg != AlgUndef && name == s {
			return alg, nil
		}
	}
	return AlgUndef, fmt.Errorf("%w: %q", ErrUnsupportedAlg, s)
}

// Op describes one post-operation.
//
// Relu reads Alpha as its negative slope. Quantize and Dequantize read Alpha
// as the zero point and Scale as the affine scale. Exp, Gelu and Tanh take no
// parameters. Beta is carried for kernels that use it and ignored here.
type Op struct {
	DType tensor.DataType
	Type  Type
	Alg   Alg
	Alpha float32
	Beta  float32
	Scale float32
}

// NewOp returns a fully specified descriptor.
func NewOp(dt tensor.DataType, typ Type, alg Alg, alpha, beta, scale float32) Op {
	return Op{DType: dt, Type: typ, Alg: alg, Alpha: alpha, Beta: beta, Scale: scale}
}

// NewEltwise returns an elementwise descriptor with all parameters zero.
func NewEltwise(dt tensor.DataType, alg Alg) Op {
	return Op{DType: dt, Type: Eltwise, Alg: alg}
}

// String returns a debug representation of the descriptor.
func (op Op) String() string {
	return fmt.Sprintf("{%s %s %s alpha=%g beta=%g scale=%g}",
		op.DType, op.Type, op.Alg, op.Alpha, op.Beta, op.Scale)
}

// List is an ordered chain of post-operations. Element i feeds element i+1.
type List []Op

// Apply runs value through the list. See Apply.
func (l List) Apply(value float32) (float32, error) {
	return Apply(value, l)
}

// String renders the list in chain form. See Format.
func (l List) String() string {
	return Format(l)
}
