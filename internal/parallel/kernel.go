package parallel

import (
	"github.com/qingzengsong/pytorch/internal/iter"
	"github.com/qingzengsong/pytorch/internal/tensor"
)

// Typed kernels over a finalized plan. Each chunk starts from a cursor
// positioned at its linear index, so every element is read and written
// exactly as the serial kernel would; only the interleaving across chunks
// differs, and chunks are disjoint.

// Unary applies f to the single input across workers.
func Unary[A, R tensor.DType](it *iter.Iter, f func(A) R, cfg Config) error {
	if it.NumInputs() != 1 {
		return iter.SerialUnary(it, f) // Reports the arity error.
	}
	out := tensor.Slice[R](it.Tensor(0))
	in := tensor.Slice[A](it.Input(0))
	For(it.NumElements(), func(start, end int) {
		c := it.CursorAt(start)
		for i := start; i < end; i++ {
			out[c.Offset(0)] = f(in[c.Offset(1)])
			c.Next()
		}
	}, cfg)
	return nil
}

// Binary applies f to the two inputs across workers.
func Binary[A, B, R tensor.DType](it *iter.Iter, f func(A, B) R, cfg Config) error {
	if it.NumInputs() != 2 {
		return iter.SerialBinary(it, f) // Reports the arity error.
	}
	out := tensor.Slice[R](it.Tensor(0))
	in0 := tensor.Slice[A](it.Input(0))
	in1 := tensor.Slice[B](it.Input(1))
	For(it.NumElements(), func(start, end int) {
		c := it.CursorAt(start)
		for i := start; i < end; i++ {
			out[c.Offset(0)] = f(in0[c.Offset(1)], in1[c.Offset(2)])
			c.Next()
		}
	}, cfg)
	return nil
}
