package iter

import "github.com/qingzengsong/pytorch/internal/tensor"

// Iter is a finalized iteration plan: the unified broadcast shape plus one
// resolved descriptor per operand, outputs first. It is immutable; kernels
// read it but never change it, and it is not reusable across different
// logical tensors.
type Iter struct {
	shape      tensor.Shape
	ops        []operand
	numOutputs int
}

// Shape returns the unified logical shape of the iteration.
func (it *Iter) Shape() tensor.Shape {
	return it.shape
}

// NumElements returns the number of logical elements iterated.
func (it *Iter) NumElements() int {
	return it.shape.NumElements()
}

// NumOperands returns the total operand count (outputs plus inputs).
func (it *Iter) NumOperands() int {
	return len(it.ops)
}

// NumOutputs returns the number of output operands.
func (it *Iter) NumOutputs() int {
	return it.numOutputs
}

// NumInputs returns the number of input operands.
func (it *Iter) NumInputs() int {
	return len(it.ops) - it.numOutputs
}

// DType returns the resolved dtype of operand i (outputs first).
func (it *Iter) DType(i int) tensor.DataType {
	return it.ops[i].dtype
}

// InputDType returns the resolved dtype of an input operand.
// With no argument it reports the first input.
func (it *Iter) InputDType(i ...int) tensor.DataType {
	idx := 0
	if len(i) > 0 {
		idx = i[0]
	}
	return it.ops[it.numOutputs+idx].dtype
}

// Device returns the resolved device of operand i (outputs first).
func (it *Iter) Device(i int) tensor.Device {
	return it.ops[i].device
}

// Strides returns operand i's strides in the unified iteration order,
// in element units. Broadcast dimensions have stride 0.
func (it *Iter) Strides(i int) []int {
	return it.ops[i].stride
}

// Tensor returns the tensor behind operand i (outputs first). For an output
// declared undefined, this is the tensor allocated during Build.
func (it *Iter) Tensor(i int) *tensor.RawTensor {
	return it.ops[i].tensor
}

// Input returns the tensor behind input operand i.
func (it *Iter) Input(i int) *tensor.RawTensor {
	return it.ops[it.numOutputs+i].tensor
}

// Output returns the tensor behind the first output operand.
func (it *Iter) Output() *tensor.RawTensor {
	return it.ops[0].tensor
}

// Cursor walks the unified iteration space in row-major order (last
// dimension fastest), tracking every operand's element offset through its
// resolved strides. The walk order is fully deterministic.
type Cursor struct {
	shape   tensor.Shape
	strides [][]int
	coords  []int
	offsets []int
}

// Cursor returns a cursor positioned at the first element.
func (it *Iter) Cursor() *Cursor {
	return it.CursorAt(0)
}

// CursorAt returns a cursor positioned at linear index start. Range-splitting
// backends use it to hand each chunk its own starting position; a chunked
// walk visits exactly the elements a serial walk from zero would.
func (it *Iter) CursorAt(start int) *Cursor {
	c := &Cursor{
		shape:   it.shape,
		strides: make([][]int, len(it.ops)),
		coords:  make([]int, len(it.shape)),
		offsets: make([]int, len(it.ops)),
	}
	for i := range it.ops {
		c.strides[i] = it.ops[i].stride
	}
	if start != 0 {
		linear := it.shape.ComputeStrides()
		for d := range c.coords {
			c.coords[d] = (start / linear[d]) % it.shape[d]
			for k := range c.offsets {
				c.offsets[k] += c.coords[d] * c.strides[k][d]
			}
		}
	}
	return c
}

// Offset returns the current element offset of operand i, in element units.
func (c *Cursor) Offset(i int) int {
	return c.offsets[i]
}

// Next advances the cursor by one element in row-major order.
func (c *Cursor) Next() {
	for d := len(c.shape) - 1; d >= 0; d-- {
		c.coords[d]++
		for k := range c.offsets {
			c.offsets[k] += c.strides[k][d]
		}
		if c.coords[d] < c.shape[d] {
			return
		}
		c.coords[d] = 0
		for k := range c.offsets {
			c.offsets[k] -= c.strides[k][d] * c.shape[d]
		}
	}
}
