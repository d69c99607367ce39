// Package cpu provides a pure Go CPU backend for elementwise tensor
// operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - NumPy-compatible broadcasting via the iteration planner
//   - Type promotion across the full element-type set, float16 and complex included
//   - Chunked multi-goroutine execution for large tensors
//
// # Basic Usage
//
//	import (
//	    "github.com/qingzengsong/pytorch/backend/cpu"
//	    "github.com/qingzengsong/pytorch/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
//	    b := tensor.ScalarOf(float32(10), tensor.CPU)
//	    sum := backend.Add(a, b) // Scalar broadcasts over a.
//	    _ = sum
//	}
package cpu
