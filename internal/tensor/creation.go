package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// Zeros creates a zero-initialized tensor.
// Panics on an invalid shape; use NewRaw for recoverable allocation.
func Zeros(shape Shape, dtype DataType, device Device) *RawTensor {
	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		panic(err)
	}
	return raw
}

// oneValue returns the multiplicative identity for the element type T.
func oneValue[T DType]() T {
	var dummy T
	var one any
	switch any(dummy).(type) {
	case bool:
		one = true
	case uint8:
		one = uint8(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case float16.Float16:
		one = float16.Fromfloat32(1)
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case complex64:
		one = complex64(1)
	case complex128:
		one = complex128(1)
	default:
		panic("unsupported type")
	}
	return one.(T)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape, device Device) *RawTensor {
	return Full(shape, oneValue[T](), device)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T, device Device) *RawTensor {
	raw := Zeros(shape, DataTypeOf[T](), device)
	data := Slice[T](raw)
	for i := range data {
		data[i] = value
	}
	return raw
}

// ScalarOf creates a 0-dimensional tensor holding a single value.
func ScalarOf[T DType](value T, device Device) *RawTensor {
	return Full(Shape{}, value, device)
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, DataTypeOf[T](), device)
	if err != nil {
		return nil, err
	}

	copy(Slice[T](raw), data)
	return raw, nil
}
