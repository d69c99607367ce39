package tensor

import "github.com/qingzengsong/pytorch/internal/tensor"

// Backend defines the interface elementwise compute backends implement.
// Backends resolve broadcasting, type promotion, and device placement through
// the iteration planner and run the per-element kernels.
//
// Implementations:
//   - backend/cpu: Pure Go kernels over the iteration plan
//
// Example:
//
//	import (
//	    "github.com/qingzengsong/pytorch/backend/cpu"
//	    "github.com/qingzengsong/pytorch/tensor"
//	)
//
//	backend := cpu.New()
//	mask := backend.Greater(x, y) // Bool tensor
type Backend = tensor.Backend
