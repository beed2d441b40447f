// Package tensor provides the element types, shape descriptors and typed byte
// buffers used by the postop benchmark harness.
package tensor

import "fmt"

// DataType is the runtime tag for the element representation of a buffer.
type DataType int

// Supported data types. Undef marks "no data type seen" and is rejected by
// every width-dependent operation.
const (
	Undef DataType = iota
	Fp32
	Bf16
	U8
	S8
)

// Size returns the byte width of the data type.
func (dt DataType) Size() (int, error) {
	switch dt {
	case Fp32:
		return 4, nil
	case Bf16:
		return 2, nil
	case U8, S8:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedDataType, dt)
	}
}

// MustSize is like Size but panics on an unsupported data type.
func (dt DataType) MustSize() int {
	n, err := dt.Size()
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the grammar name of the data type.
func (dt DataType) String() string {
	switch dt {
	case Undef:
		return "undef"
	case Fp32:
		return "fp32"
	case Bf16:
		return "bf16"
	case U8:
		return "u8"
	case S8:
		return "s8"
	default:
		return fmt.Sprintf("unknown(%d)", int(dt))
	}
}

// ParseDataType returns the data type named by s ("fp32", "bf16", "u8", "s8").
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "fp32":
		return Fp32, nil
	case "bf16":
		return Bf16, nil
	case "u8":
		return U8, nil
	case "s8":
		return S8, nil
	default:
		return Undef, fmt.Errorf("%w: %q", ErrUnsupportedDataType, s)
	}
}
