package cpu

import (
	internalcpu "github.com/qingzengsong/pytorch/internal/backend/cpu"
	"github.com/qingzengsong/pytorch/tensor"
)

// Backend represents the CPU backend implementation.
//
// Every operation plans its iteration (broadcast, promotion, device
// resolution) and runs pure Go per-element kernels, chunked across workers
// for large tensors.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/qingzengsong/pytorch/backend/cpu"
//	    "github.com/qingzengsong/pytorch/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Ones[float32](tensor.Shape{2, 3}, tensor.CPU)
//	    y := backend.Add(x, x)
//	    _ = y
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewSerial creates a CPU backend that never spawns workers, as a
// deterministic reference for the chunked path.
func NewSerial() *Backend {
	return internalcpu.NewSerial()
}
