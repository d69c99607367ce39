package iter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qingzengsong/pytorch/iter"
	"github.com/qingzengsong/pytorch/tensor"
)

// End-to-end through the public API: plan a broadcast multiply and run it.
func TestPublicPlanAndExecute(t *testing.T) {
	col, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, tensor.CPU)
	require.NoError(t, err)
	row, err := tensor.FromSlice([]float32{10, 100}, tensor.Shape{2}, tensor.CPU)
	require.NoError(t, err)

	it, err := iter.BinaryOp(nil, col, row)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, it.Shape())
	assert.Equal(t, tensor.Float32, it.DType(0))

	require.NoError(t, iter.SerialBinary(it, func(a, b float32) float32 { return a * b }))

	want := []float32{10, 100, 20, 200, 30, 300}
	assert.Equal(t, want, tensor.Slice[float32](it.Output()))
}

func TestPublicBuilderModes(t *testing.T) {
	out := tensor.Zeros(tensor.Shape{1, 1}, tensor.Bool, tensor.CPU)
	it, err := iter.NewBuilder().
		AddOutput(out).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float32, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float64, tensor.CPU)).
		ComputeCommonDTypeOnlyForInputs().
		Build()
	require.NoError(t, err)

	assert.Equal(t, tensor.Bool, it.DType(0))
	assert.Equal(t, tensor.Float64, it.InputDType())
}

func TestPublicErrors(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{5, 5}, tensor.Float32, tensor.CUDA)
	y := tensor.Zeros(tensor.Shape{5}, tensor.Float32, tensor.CPU)

	_, err := iter.BinaryOp(nil, x, y)
	require.ErrorIs(t, err, iter.ErrDeviceMismatch)
}
