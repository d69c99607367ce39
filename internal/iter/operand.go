package iter

import "github.com/qingzengsong/pytorch/internal/tensor"

// operand is one participant in an iteration: an output or input tensor plus
// its resolved dtype, device, and strides in the unified iteration order.
// Resolution happens once during Build; operands are immutable afterward.
type operand struct {
	tensor   *tensor.RawTensor // nil while undefined (output allocated at build)
	isOutput bool

	dtype  tensor.DataType
	device tensor.Device
	stride []int // element units, one entry per unified dimension
}

// defined reports whether the operand carries a concrete tensor.
func (op *operand) defined() bool {
	return op.tensor != nil
}

// isScalar reports whether the operand holds exactly one element.
// Only scalar operands participate in device lifting.
func (op *operand) isScalar() bool {
	return op.defined() && op.tensor.IsScalar()
}
