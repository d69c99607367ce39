// Package tensor is the public API for dense multidimensional arrays.
//
// # Overview
//
// A RawTensor couples a reference-counted buffer with a shape, row-major
// strides, an element type, and a device tag. The iter package plans
// elementwise operations over one or more RawTensors; compute backends
// execute the plans.
//
// # Basic Usage
//
//	import (
//	    "github.com/qingzengsong/pytorch/backend/cpu"
//	    "github.com/qingzengsong/pytorch/tensor"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
//	y := tensor.Ones[float32](tensor.Shape{2}, tensor.CPU)
//	z := backend.Add(x, y) // Broadcasts y across the rows of x.
//
// # Supported Element Types
//
// The DType constraint covers:
//   - float16 (github.com/x448/float16), float32, float64
//   - complex64, complex128
//   - int32, int64
//   - uint8 (useful for images)
//   - bool (masks)
//
// Mixed-type operations promote along a total order; see PromoteTypes.
//
// # Devices
//
// Device is a placement tag (CPU, CUDA, Vulkan, Metal, WebGPU) resolved by
// the iteration planner. Storage in this implementation is host-backed, so
// accelerator-tagged tensors still participate in planning and reference
// execution.
//
// # Broadcasting
//
// Operations follow NumPy broadcasting rules:
//
//	a, _ := tensor.FromSlice(..., tensor.Shape{3, 1}, tensor.CPU) // (3, 1)
//	b, _ := tensor.FromSlice(..., tensor.Shape{3, 4}, tensor.CPU) // (3, 4)
//	c := backend.Add(a, b)                                        // (3, 4)
package tensor
