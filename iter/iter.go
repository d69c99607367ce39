// Package iter is the public API for planning and executing elementwise
// operations over tensors.
//
// A Builder accumulates output and input declarations; Build resolves the
// unified broadcast shape, per-operand strides, the common element type, and
// the common device, and returns an immutable plan. Serial kernels execute a
// plan deterministically on the calling goroutine; the parallel-capable
// backends consume the same plan and produce identical results.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, tensor.CPU)
//	y, _ := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2}, tensor.CPU)
//	it, err := iter.BinaryOp(nil, x, y) // Output allocated as (3, 2) float32.
//	if err != nil {
//	    ...
//	}
//	err = iter.SerialBinary(it, func(a, b float32) float32 { return a + b })
package iter

import (
	"github.com/qingzengsong/pytorch/internal/iter"
	"github.com/qingzengsong/pytorch/internal/tensor"
)

// Type aliases for the public API.

// Builder accumulates operand declarations for one elementwise operation.
type Builder = iter.Builder

// Config carries the default device and dtype used when no declared operand
// can supply one.
type Config = iter.Config

// Iter is a finalized, immutable iteration plan.
type Iter = iter.Iter

// Cursor walks a plan's iteration space in row-major order.
type Cursor = iter.Cursor

// Planning and execution errors.
var (
	ErrBroadcastShape       = iter.ErrBroadcastShape
	ErrDeviceMismatch       = iter.ErrDeviceMismatch
	ErrDTypeAliasConflict   = iter.ErrDTypeAliasConflict
	ErrUndefinedOutputDType = iter.ErrUndefinedOutputDType
	ErrUndefinedInput       = iter.ErrUndefinedInput
	ErrArityMismatch        = iter.ErrArityMismatch
)

// NewBuilder creates an empty Builder with default configuration.
func NewBuilder() *Builder {
	return iter.NewBuilder()
}

// NewBuilderWith creates an empty Builder with explicit defaults.
func NewBuilderWith(cfg Config) *Builder {
	return iter.NewBuilderWith(cfg)
}

// DefaultConfig returns the standard defaults: host device, float32.
func DefaultConfig() Config {
	return iter.DefaultConfig()
}

// UnaryOp declares and builds a plan for one output and one input.
// Pass a nil output to have it allocated.
func UnaryOp(out, in *tensor.RawTensor) (*Iter, error) {
	return iter.UnaryOp(out, in)
}

// BinaryOp declares and builds a plan for one output and two inputs.
// Pass a nil output to have it allocated.
func BinaryOp(out, a, b *tensor.RawTensor) (*Iter, error) {
	return iter.BinaryOp(out, a, b)
}

// NullaryOp declares and builds a plan with a defined output and no inputs.
func NullaryOp(out *tensor.RawTensor) (*Iter, error) {
	return iter.NullaryOp(out)
}

// SerialNullary fills the output by invoking f once per element on the
// calling goroutine.
func SerialNullary[R tensor.DType](it *Iter, f func() R) error {
	return iter.SerialNullary(it, f)
}

// SerialUnary applies f to the single input on the calling goroutine.
func SerialUnary[A, R tensor.DType](it *Iter, f func(A) R) error {
	return iter.SerialUnary(it, f)
}

// SerialBinary applies f to the two inputs on the calling goroutine.
func SerialBinary[A, B, R tensor.DType](it *Iter, f func(A, B) R) error {
	return iter.SerialBinary(it, f)
}

// SerialTernary applies f to the three inputs on the calling goroutine.
func SerialTernary[A, B, C, R tensor.DType](it *Iter, f func(A, B, C) R) error {
	return iter.SerialTernary(it, f)
}
