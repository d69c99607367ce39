// Package tensor provides the dense array storage layer: shapes, strides,
// element types, devices, and raw buffers that the iteration planner operates on.
package tensor

import "github.com/x448/float16"

// DType is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool |
		~complex64 | ~complex128 | float16.Float16
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported element types, in promotion order (see PromoteTypes).
const (
	Bool DataType = iota
	Uint8
	Int32
	Int64
	Float16
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Uint8:
		return 1
	case Float16:
		return 2
	case Float32, Int32:
		return 4
	case Float64, Int64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// IsFloatingPoint reports whether the type is a real floating-point type.
func (dt DataType) IsFloatingPoint() bool {
	return dt == Float16 || dt == Float32 || dt == Float64
}

// IsComplex reports whether the type is a complex type.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// PromoteTypes returns the element type that results from combining operands
// of types a and b. The supported types form a total order
//
//	Bool < Uint8 < Int32 < Int64 < Float16 < Float32 < Float64 < Complex64 < Complex128
//
// and promotion picks the wider of the two.
func PromoteTypes(a, b DataType) DataType {
	if a > b {
		return a
	}
	return b
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case bool:
		return Bool
	case uint8:
		return Uint8
	case int32:
		return Int32
	case int64:
		return Int64
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}

// DataTypeOf returns the runtime DataType for a compile-time element type.
func DataTypeOf[T DType]() DataType {
	var dummy T
	return inferDataType(dummy)
}
