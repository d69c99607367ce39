// Package cpu implements the CPU compute backend. Every elementwise
// operation builds an iteration plan (broadcast shape, promoted dtype,
// resolved devices) and runs a typed per-element kernel over it, chunked
// across workers when the element count warrants it.
package cpu

import (
	"github.com/qingzengsong/pytorch/internal/parallel"
	"github.com/qingzengsong/pytorch/internal/tensor"
)

// Verify that CPUBackend implements Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a CPU backend with default worker configuration.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// NewSerial creates a CPU backend that never spawns workers. Useful as a
// deterministic reference for comparing against the chunked path.
func NewSerial() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.Config{},
	}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (c *CPUBackend) Device() tensor.Device {
	return c.device
}
