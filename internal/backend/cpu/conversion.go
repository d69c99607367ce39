package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/qingzengsong/pytorch/internal/iter"
	"github.com/qingzengsong/pytorch/internal/parallel"
	"github.com/qingzengsong/pytorch/internal/tensor"
)

// Cast converts x to a new tensor of the given dtype. Returns x unchanged
// when the dtype already matches. Real and bool types convert through
// float64; real types widen into complex; narrowing a complex type to a real
// type is not supported.
func (c *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	out := tensor.Zeros(x.Shape(), dtype, x.Device())
	it, err := iter.NewBuilder().
		AddOutput(out).
		AddInput(x).
		DontComputeCommonDType().
		Build()
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch x.DType() {
	case tensor.Bool:
		castFrom(c, it, dtype, func(v bool) float64 {
			if v {
				return 1
			}
			return 0
		})
	case tensor.Uint8:
		castFrom(c, it, dtype, func(v uint8) float64 { return float64(v) })
	case tensor.Int32:
		castFrom(c, it, dtype, func(v int32) float64 { return float64(v) })
	case tensor.Int64:
		castFrom(c, it, dtype, func(v int64) float64 { return float64(v) })
	case tensor.Float16:
		castFrom(c, it, dtype, func(v float16.Float16) float64 { return float64(v.Float32()) })
	case tensor.Float32:
		castFrom(c, it, dtype, func(v float32) float64 { return float64(v) })
	case tensor.Float64:
		castFrom(c, it, dtype, func(v float64) float64 { return v })
	case tensor.Complex64:
		if dtype != tensor.Complex128 {
			panic(fmt.Sprintf("cast: cannot convert %s to %s", x.DType(), dtype))
		}
		c.run(parallel.Unary(it, func(v complex64) complex128 { return complex128(v) }, c.par))
	case tensor.Complex128:
		if dtype != tensor.Complex64 {
			panic(fmt.Sprintf("cast: cannot convert %s to %s", x.DType(), dtype))
		}
		c.run(parallel.Unary(it, func(v complex128) complex64 { return complex64(v) }, c.par))
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", x.DType()))
	}
	return out
}

// castFrom writes conv(v) into the target dtype for a real or bool source.
func castFrom[A tensor.DType](c *CPUBackend, it *iter.Iter, dtype tensor.DataType, conv func(A) float64) {
	switch dtype {
	case tensor.Bool:
		c.run(parallel.Unary(it, func(v A) bool { return conv(v) != 0 }, c.par))
	case tensor.Uint8:
		c.run(parallel.Unary(it, func(v A) uint8 { return uint8(conv(v)) }, c.par))
	case tensor.Int32:
		c.run(parallel.Unary(it, func(v A) int32 { return int32(conv(v)) }, c.par))
	case tensor.Int64:
		c.run(parallel.Unary(it, func(v A) int64 { return int64(conv(v)) }, c.par))
	case tensor.Float16:
		c.run(parallel.Unary(it, func(v A) float16.Float16 { return float16.Fromfloat32(float32(conv(v))) }, c.par))
	case tensor.Float32:
		c.run(parallel.Unary(it, func(v A) float32 { return float32(conv(v)) }, c.par))
	case tensor.Float64:
		c.run(parallel.Unary(it, conv, c.par))
	case tensor.Complex64:
		c.run(parallel.Unary(it, func(v A) complex64 { return complex(float32(conv(v)), 0) }, c.par))
	case tensor.Complex128:
		c.run(parallel.Unary(it, func(v A) complex128 { return complex(conv(v), 0) }, c.par))
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", dtype))
	}
}

func (c *CPUBackend) run(err error) {
	if err != nil {
		panic(err)
	}
}
