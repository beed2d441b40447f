package tensor

import "errors"

// Common errors.
var (
	ErrUnsupportedDataType = errors.New("unsupported data type")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrInvalidShape        = errors.New("invalid shape")
)
