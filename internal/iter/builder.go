// Package iter plans and executes elementwise operations over dense tensors.
//
// A Builder accumulates output and input operand declarations and resolves
// them in a single Build call: the unified broadcast shape, per-operand
// strides, a common element type under the configured promotion mode, and a
// common device under the scalar-lifting rule. The resulting Iter is an
// immutable plan that typed kernels (serial here, chunked in the parallel
// package) execute against.
package iter

import (
	"fmt"

	"github.com/qingzengsong/pytorch/internal/tensor"
)

// Config carries the defaults used when no declared operand can supply a
// device or dtype. It replaces ambient process-wide default state: callers
// that want different defaults pass a different Config.
type Config struct {
	Device tensor.Device
	DType  tensor.DataType
}

// DefaultConfig returns the standard defaults: host device, float32.
func DefaultConfig() Config {
	return Config{Device: tensor.CPU, DType: tensor.Float32}
}

// Builder accumulates operand declarations for one elementwise operation.
//
// Declarations are pure bookkeeping: no validation happens until Build.
// Order is significant. Output operands precede input operands in the
// finalized plan, and relative declaration order decides which scalar may be
// device-lifted and the index of each operand in later queries.
//
// A Builder is owned by a single goroutine and produces at most one plan.
type Builder struct {
	cfg     Config
	outputs []*tensor.RawTensor // nil entry = undefined, allocated at build
	inputs  []*tensor.RawTensor

	noCommonDType         bool
	commonDTypeInputsOnly bool
}

// NewBuilder creates an empty Builder with DefaultConfig.
func NewBuilder() *Builder {
	return NewBuilderWith(DefaultConfig())
}

// NewBuilderWith creates an empty Builder with explicit defaults.
func NewBuilderWith(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// AddOutput declares an output operand. A nil tensor declares an undefined
// output that Build allocates with the resolved shape, dtype, and device.
func (b *Builder) AddOutput(t *tensor.RawTensor) *Builder {
	b.outputs = append(b.outputs, t)
	return b
}

// AddInput declares an input operand.
func (b *Builder) AddInput(t *tensor.RawTensor) *Builder {
	b.inputs = append(b.inputs, t)
	return b
}

// DontComputeCommonDType disables type promotion entirely: every operand
// keeps its own declared dtype. An undefined output falls back to the
// Config dtype.
func (b *Builder) DontComputeCommonDType() *Builder {
	b.noCommonDType = true
	return b
}

// ComputeCommonDTypeOnlyForInputs restricts type promotion to the input
// operands. Outputs keep their own declared dtype, which is why every output
// must be defined under this mode. If DontComputeCommonDType is also set, no
// promotion occurs at all.
func (b *Builder) ComputeCommonDTypeOnlyForInputs() *Builder {
	b.commonDTypeInputsOnly = true
	return b
}

// UnaryOp declares and builds a plan for one output and one input.
// Pass a nil output to have it allocated.
func UnaryOp(out, in *tensor.RawTensor) (*Iter, error) {
	return NewBuilder().AddOutput(out).AddInput(in).Build()
}

// BinaryOp declares and builds a plan for one output and two inputs.
// Pass a nil output to have it allocated.
func BinaryOp(out, a, b *tensor.RawTensor) (*Iter, error) {
	return NewBuilder().AddOutput(out).AddInput(a).AddInput(b).Build()
}

// NullaryOp declares and builds a plan with a single defined output and no
// inputs, for fill-style kernels.
func NullaryOp(out *tensor.RawTensor) (*Iter, error) {
	return NewBuilder().AddOutput(out).Build()
}

// Build resolves shape, device, and dtype (in that order), allocates any
// undefined outputs, and freezes the plan. On error no usable plan is
// returned and the Builder should be discarded.
func (b *Builder) Build() (*Iter, error) {
	ops := make([]operand, 0, len(b.outputs)+len(b.inputs))
	for _, t := range b.outputs {
		ops = append(ops, operand{tensor: t, isOutput: true})
	}
	for _, t := range b.inputs {
		if t == nil {
			return nil, fmt.Errorf("%w: input %d is nil", ErrUndefinedInput, len(ops)-len(b.outputs))
		}
		ops = append(ops, operand{tensor: t})
	}

	shape, err := b.resolveShape(ops)
	if err != nil {
		return nil, err
	}
	if err := b.resolveDevices(ops); err != nil {
		return nil, err
	}
	if err := b.resolveDTypes(ops); err != nil {
		return nil, err
	}
	if err := b.allocateOutputs(ops, shape); err != nil {
		return nil, err
	}
	resolveStrides(ops, shape)

	return &Iter{
		shape:      shape,
		ops:        ops,
		numOutputs: len(b.outputs),
	}, nil
}

// resolveShape broadcasts every defined operand's shape into the unified
// iteration shape. Undefined outputs contribute nothing.
func (b *Builder) resolveShape(ops []operand) (tensor.Shape, error) {
	shapes := make([]tensor.Shape, 0, len(ops))
	for i := range ops {
		if ops[i].defined() {
			shapes = append(shapes, ops[i].tensor.Shape())
		}
	}
	shape, err := tensor.BroadcastAll(shapes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBroadcastShape, err)
	}
	return shape, nil
}

// resolveDevices establishes the common device and applies the single-lift
// rule for host scalars.
//
// The common device is the device of the first defined non-scalar operand in
// declaration order, falling back to the first defined operand and then to
// the Config device. A scalar on the host while the common device is an
// accelerator may stay where it is, because elementwise kernels can embed one
// host scalar as an immediate parameter; the specialized code path supports
// exactly one such parameter, so only the first qualifying scalar is kept
// un-moved. Every later differing scalar is transferred to the common device.
// A differing non-scalar operand is a device-mismatch error.
func (b *Builder) resolveDevices(ops []operand) error {
	common := b.cfg.Device
	found := false
	for i := range ops {
		if ops[i].defined() && !ops[i].isScalar() {
			common = ops[i].tensor.Device()
			found = true
			break
		}
	}
	if !found {
		for i := range ops {
			if ops[i].defined() {
				common = ops[i].tensor.Device()
				break
			}
		}
	}

	lifted := false
	for i := range ops {
		op := &ops[i]
		if !op.defined() || op.tensor.Device() == common {
			if op.defined() {
				op.device = common
			}
			continue
		}
		switch {
		case op.isScalar() && !lifted &&
			!op.tensor.Device().IsAccelerator() && common.IsAccelerator():
			// Kept as the one liftable host scalar.
			lifted = true
			op.device = op.tensor.Device()
		case op.isScalar():
			op.tensor = op.tensor.To(common)
			op.device = common
		default:
			return fmt.Errorf("%w: found %s, expected %s (operand %d)",
				ErrDeviceMismatch, op.tensor.Device(), common, i)
		}
	}

	// Undefined outputs are allocated on the common device.
	for i := range ops {
		if !ops[i].defined() {
			ops[i].device = common
		}
	}
	return nil
}

// resolveDTypes applies the promotion mode selected on the Builder.
func (b *Builder) resolveDTypes(ops []operand) error {
	switch {
	case b.noCommonDType:
		return b.resolveOwnDTypes(ops)
	case b.commonDTypeInputsOnly:
		return b.resolveInputCommonDType(ops)
	default:
		return b.resolveCommonDType(ops)
	}
}

// resolveCommonDType promotes across every defined operand, outputs included,
// and assigns the result to all operands.
func (b *Builder) resolveCommonDType(ops []operand) error {
	common := b.cfg.DType
	found := false
	for i := range ops {
		if !ops[i].defined() {
			continue
		}
		if !found {
			common = ops[i].tensor.DType()
			found = true
		} else {
			common = tensor.PromoteTypes(common, ops[i].tensor.DType())
		}
	}
	for i := range ops {
		ops[i].dtype = common
	}
	return nil
}

// resolveOwnDTypes keeps each operand's declared dtype; an undefined output
// falls back to the Config dtype.
func (b *Builder) resolveOwnDTypes(ops []operand) error {
	for i := range ops {
		if ops[i].defined() {
			ops[i].dtype = ops[i].tensor.DType()
		} else {
			ops[i].dtype = b.cfg.DType
		}
	}
	return nil
}

// resolveInputCommonDType promotes across input operands only. Outputs keep
// their own dtype, so every output must be defined, and an output that
// aliases an input must already carry the promoted input dtype.
func (b *Builder) resolveInputCommonDType(ops []operand) error {
	var common tensor.DataType
	found := false
	for i := range ops {
		if ops[i].isOutput {
			continue
		}
		if !found {
			common = ops[i].tensor.DType()
			found = true
		} else {
			common = tensor.PromoteTypes(common, ops[i].tensor.DType())
		}
	}
	if !found {
		common = b.cfg.DType
	}

	for i := range ops {
		op := &ops[i]
		if !op.isOutput {
			op.dtype = common
			continue
		}
		if !op.defined() {
			return fmt.Errorf("%w: promotion is scoped to inputs only (output %d)",
				ErrUndefinedOutputDType, i)
		}
		op.dtype = op.tensor.DType()
		if op.dtype != common && aliasesInput(ops, op.tensor) {
			return fmt.Errorf("%w: output dtype %s, common input dtype %s",
				ErrDTypeAliasConflict, op.dtype, common)
		}
	}
	return nil
}

// aliasesInput reports whether t is also declared as an input operand.
func aliasesInput(ops []operand, t *tensor.RawTensor) bool {
	for i := range ops {
		if !ops[i].isOutput && ops[i].tensor == t {
			return true
		}
	}
	return false
}

// allocateOutputs materializes undefined outputs with the resolved shape,
// dtype, and device.
func (b *Builder) allocateOutputs(ops []operand, shape tensor.Shape) error {
	for i := range ops {
		if ops[i].defined() {
			continue
		}
		t, err := tensor.NewRaw(shape, ops[i].dtype, ops[i].device)
		if err != nil {
			return fmt.Errorf("allocating output %d: %w", i, err)
		}
		ops[i].tensor = t
	}
	return nil
}

// resolveStrides remaps every operand's strides to the unified shape,
// zeroing broadcast dimensions.
func resolveStrides(ops []operand, shape tensor.Shape) {
	for i := range ops {
		t := ops[i].tensor
		ops[i].stride = tensor.BroadcastStrides(t.Shape(), t.Strides(), shape)
	}
}
