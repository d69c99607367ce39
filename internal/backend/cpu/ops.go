package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/qingzengsong/pytorch/internal/iter"
	"github.com/qingzengsong/pytorch/internal/parallel"
	"github.com/qingzengsong/pytorch/internal/tensor"
)

// arithOp selects the arithmetic kernel.
type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
)

// numeric covers element types with native Go arithmetic.
type numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~complex64 | ~complex128
}

// Add performs element-wise addition with broadcasting and type promotion.
func (c *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryArith("add", opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting and type promotion.
func (c *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryArith("sub", opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting and type promotion.
func (c *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryArith("mul", opMul, a, b)
}

// Div performs element-wise division with broadcasting and type promotion.
func (c *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryArith("div", opDiv, a, b)
}

// binaryArith plans out = a <op> b and dispatches the kernel on the common
// dtype. Inputs whose declared dtype differs from the promoted dtype are cast
// first, so kernels always see uniform storage.
func (c *CPUBackend) binaryArith(name string, op arithOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	common := tensor.PromoteTypes(a.DType(), b.DType())
	a = c.Cast(a, common)
	b = c.Cast(b, common)

	it, err := iter.BinaryOp(nil, a, b)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch common {
	case tensor.Uint8:
		runArith[uint8](c, it, op)
	case tensor.Int32:
		runArith[int32](c, it, op)
	case tensor.Int64:
		runArith[int64](c, it, op)
	case tensor.Float16:
		runArithFloat16(c, it, op)
	case tensor.Float32:
		runArith[float32](c, it, op)
	case tensor.Float64:
		runArith[float64](c, it, op)
	case tensor.Complex64:
		runArith[complex64](c, it, op)
	case tensor.Complex128:
		runArith[complex128](c, it, op)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, common))
	}
	return it.Output()
}

func runArith[T numeric](c *CPUBackend, it *iter.Iter, op arithOp) {
	var f func(T, T) T
	switch op {
	case opAdd:
		f = func(x, y T) T { return x + y }
	case opSub:
		f = func(x, y T) T { return x - y }
	case opMul:
		f = func(x, y T) T { return x * y }
	case opDiv:
		f = func(x, y T) T { return x / y }
	}
	if err := parallel.Binary(it, f, c.par); err != nil {
		panic(err)
	}
}

// runArithFloat16 computes through float32, matching the usual half-precision
// accumulate-in-single convention.
func runArithFloat16(c *CPUBackend, it *iter.Iter, op arithOp) {
	var f func(x, y float32) float32
	switch op {
	case opAdd:
		f = func(x, y float32) float32 { return x + y }
	case opSub:
		f = func(x, y float32) float32 { return x - y }
	case opMul:
		f = func(x, y float32) float32 { return x * y }
	case opDiv:
		f = func(x, y float32) float32 { return x / y }
	}
	err := parallel.Binary(it, func(x, y float16.Float16) float16.Float16 {
		return float16.Fromfloat32(f(x.Float32(), y.Float32()))
	}, c.par)
	if err != nil {
		panic(err)
	}
}
