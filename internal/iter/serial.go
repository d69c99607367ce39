package iter

import (
	"fmt"

	"github.com/qingzengsong/pytorch/internal/tensor"
)

// Serial kernels execute a finalized plan on the calling goroutine only.
// No work is dispatched elsewhere, so a per-element function observes one
// consistent goroutine identity across the whole call, and elements are
// visited in the deterministic row-major order of the unified shape.
//
// The kernels perform no implicit conversion: each type parameter must match
// the corresponding operand's resolved dtype, and a mismatch panics at the
// typed-view boundary (tensor.Slice).

// SerialNullary fills the output by invoking f once per element.
func SerialNullary[R tensor.DType](it *Iter, f func() R) error {
	if it.NumInputs() != 0 {
		return arityError(it, 0)
	}
	out := tensor.Slice[R](it.Tensor(0))
	c := it.Cursor()
	for i, n := 0, it.NumElements(); i < n; i++ {
		out[c.Offset(0)] = f()
		c.Next()
	}
	return nil
}

// SerialUnary applies f to the single input, writing the result to the output.
func SerialUnary[A, R tensor.DType](it *Iter, f func(A) R) error {
	if it.NumInputs() != 1 {
		return arityError(it, 1)
	}
	out := tensor.Slice[R](it.Tensor(0))
	in := tensor.Slice[A](it.Input(0))
	c := it.Cursor()
	for i, n := 0, it.NumElements(); i < n; i++ {
		out[c.Offset(0)] = f(in[c.Offset(1)])
		c.Next()
	}
	return nil
}

// SerialBinary applies f to the two inputs, writing the result to the output.
func SerialBinary[A, B, R tensor.DType](it *Iter, f func(A, B) R) error {
	if it.NumInputs() != 2 {
		return arityError(it, 2)
	}
	out := tensor.Slice[R](it.Tensor(0))
	in0 := tensor.Slice[A](it.Input(0))
	in1 := tensor.Slice[B](it.Input(1))
	c := it.Cursor()
	for i, n := 0, it.NumElements(); i < n; i++ {
		out[c.Offset(0)] = f(in0[c.Offset(1)], in1[c.Offset(2)])
		c.Next()
	}
	return nil
}

// SerialTernary applies f to the three inputs, writing the result to the
// output. Higher pointwise arities follow the same pattern.
func SerialTernary[A, B, C, R tensor.DType](it *Iter, f func(A, B, C) R) error {
	if it.NumInputs() != 3 {
		return arityError(it, 3)
	}
	out := tensor.Slice[R](it.Tensor(0))
	in0 := tensor.Slice[A](it.Input(0))
	in1 := tensor.Slice[B](it.Input(1))
	in2 := tensor.Slice[C](it.Input(2))
	c := it.Cursor()
	for i, n := 0, it.NumElements(); i < n; i++ {
		out[c.Offset(0)] = f(in0[c.Offset(1)], in1[c.Offset(2)], in2[c.Offset(3)])
		c.Next()
	}
	return nil
}

func arityError(it *Iter, want int) error {
	return fmt.Errorf("%w: kernel takes %d, plan has %d", ErrArityMismatch, want, it.NumInputs())
}
