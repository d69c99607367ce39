package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/qingzengsong/pytorch/internal/iter"
	"github.com/qingzengsong/pytorch/internal/parallel"
	"github.com/qingzengsong/pytorch/internal/tensor"
)

// cmpOp selects the comparison kernel.
type cmpOp int

const (
	opGT cmpOp = iota
	opLT
	opGE
	opLE
	opEQ
	opNE
)

// ordered covers element types with a native total order.
type ordered interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Greater returns the element-wise a > b as a bool tensor.
func (c *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("greater", opGT, a, b)
}

// Lower returns the element-wise a < b as a bool tensor.
func (c *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("lower", opLT, a, b)
}

// GreaterEqual returns the element-wise a >= b as a bool tensor.
func (c *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("greater_equal", opGE, a, b)
}

// LowerEqual returns the element-wise a <= b as a bool tensor.
func (c *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("lower_equal", opLE, a, b)
}

// Equal returns the element-wise a == b as a bool tensor.
func (c *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("equal", opEQ, a, b)
}

// NotEqual returns the element-wise a != b as a bool tensor.
func (c *CPUBackend) NotEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("not_equal", opNE, a, b)
}

// compare plans a comparison with a bool output. The output dtype must stay
// bool while the inputs promote among themselves, which is exactly the
// inputs-only promotion mode; inputs are cast to the promoted dtype up front
// so the kernels see uniform storage.
func (c *CPUBackend) compare(name string, op cmpOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	common := tensor.PromoteTypes(a.DType(), b.DType())
	a = c.Cast(a, common)
	b = c.Cast(b, common)

	shape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	out := tensor.Zeros(shape, tensor.Bool, a.Device())

	it, err := iter.NewBuilder().
		AddOutput(out).
		AddInput(a).
		AddInput(b).
		ComputeCommonDTypeOnlyForInputs().
		Build()
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch common {
	case tensor.Bool:
		compareEqualOnly(c, name, it, op, func(x, y bool) bool { return x == y })
	case tensor.Uint8:
		runCompare[uint8](c, it, op)
	case tensor.Int32:
		runCompare[int32](c, it, op)
	case tensor.Int64:
		runCompare[int64](c, it, op)
	case tensor.Float16:
		runCompareFloat16(c, it, op)
	case tensor.Float32:
		runCompare[float32](c, it, op)
	case tensor.Float64:
		runCompare[float64](c, it, op)
	case tensor.Complex64:
		compareEqualOnly(c, name, it, op, func(x, y complex64) bool { return x == y })
	case tensor.Complex128:
		compareEqualOnly(c, name, it, op, func(x, y complex128) bool { return x == y })
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, common))
	}
	return it.Output()
}

// compareEqualOnly serves types without a native order: only equality
// comparisons are defined for them.
func compareEqualOnly[T tensor.DType](c *CPUBackend, name string, it *iter.Iter, op cmpOp, eq func(T, T) bool) {
	switch op {
	case opEQ:
		if err := parallel.Binary(it, eq, c.par); err != nil {
			panic(err)
		}
	case opNE:
		if err := parallel.Binary(it, func(x, y T) bool { return !eq(x, y) }, c.par); err != nil {
			panic(err)
		}
	default:
		panic(fmt.Sprintf("%s: dtype %s is not ordered", name, it.InputDType()))
	}
}

func runCompare[T ordered](c *CPUBackend, it *iter.Iter, op cmpOp) {
	var f func(T, T) bool
	switch op {
	case opGT:
		f = func(x, y T) bool { return x > y }
	case opLT:
		f = func(x, y T) bool { return x < y }
	case opGE:
		f = func(x, y T) bool { return x >= y }
	case opLE:
		f = func(x, y T) bool { return x <= y }
	case opEQ:
		f = func(x, y T) bool { return x == y }
	case opNE:
		f = func(x, y T) bool { return x != y }
	}
	if err := parallel.Binary(it, f, c.par); err != nil {
		panic(err)
	}
}

func runCompareFloat16(c *CPUBackend, it *iter.Iter, op cmpOp) {
	var f func(x, y float32) bool
	switch op {
	case opGT:
		f = func(x, y float32) bool { return x > y }
	case opLT:
		f = func(x, y float32) bool { return x < y }
	case opGE:
		f = func(x, y float32) bool { return x >= y }
	case opLE:
		f = func(x, y float32) bool { return x <= y }
	case opEQ:
		f = func(x, y float32) bool { return x == y }
	case opNE:
		f = func(x, y float32) bool { return x != y }
	}
	err := parallel.Binary(it, func(x, y float16.Float16) bool {
		return f(x.Float32(), y.Float32())
	}, c.par)
	if err != nil {
		panic(err)
	}
}
