package tensor

import (
	"github.com/qingzengsong/pytorch/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape, stride, type, and device metadata
//   - Type-safe zero-copy data access via AsFloat32(), AsInt64(), etc.
//   - Copy-on-Write semantics via Clone() and reference counting
//   - The device-transfer primitive To()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32() // Type-safe view
//	clone := raw.Clone()    // Shares the buffer via reference counting
type RawTensor = tensor.RawTensor

// NewRaw allocates a zero-initialized tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Zeros allocates a zero-initialized tensor, panicking on an invalid shape.
func Zeros(shape Shape, dtype DataType, device Device) *RawTensor {
	return tensor.Zeros(shape, dtype, device)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape, device Device) *RawTensor {
	return tensor.Ones[T](shape, device)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T, device Device) *RawTensor {
	return tensor.Full(shape, value, device)
}

// ScalarOf creates a 0-dimensional tensor holding a single value.
func ScalarOf[T DType](value T, device Device) *RawTensor {
	return tensor.ScalarOf(value, device)
}

// FromSlice creates a tensor by copying a Go slice.
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromSlice(data, shape, device)
}

// Slice returns a typed zero-copy view of the tensor's data.
// Panics if T does not match the tensor's dtype.
func Slice[T DType](r *RawTensor) []T {
	return tensor.Slice[T](r)
}
