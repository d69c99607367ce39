package iter

import "errors"

// Planning and execution errors. All are contract violations in how the
// operation was declared, not transient conditions: callers fix the
// declaration rather than retry.
var (
	// ErrBroadcastShape reports two declared operands that disagree on a
	// non-1, non-equal dimension size.
	ErrBroadcastShape = errors.New("operand shapes cannot be broadcast together")

	// ErrDeviceMismatch reports a non-scalar operand whose device differs
	// from the resolved common device.
	ErrDeviceMismatch = errors.New("expected all operands to be on the common device")

	// ErrDTypeAliasConflict reports an output that aliases an input while the
	// inputs-only common dtype differs from the output's own dtype.
	ErrDTypeAliasConflict = errors.New("in-place output cannot both keep its dtype and adopt the common input dtype")

	// ErrUndefinedOutputDType reports an undefined output with no resolvable
	// dtype under the active promotion mode.
	ErrUndefinedOutputDType = errors.New("cannot resolve a dtype for an undefined output")

	// ErrUndefinedInput reports an input declared without a concrete tensor.
	ErrUndefinedInput = errors.New("input operands must be defined")

	// ErrArityMismatch reports a per-element function whose input arity does
	// not match the plan's input-operand count.
	ErrArityMismatch = errors.New("kernel arity does not match the number of input operands")
)
