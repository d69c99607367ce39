package iter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qingzengsong/pytorch/internal/tensor"
)

// An operation with an accelerator tensor and a host scalar should keep the
// scalar on the host (lifted to an immediate kernel parameter).
func TestBuildCPUScalar(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{5, 5}, tensor.Float32, tensor.CUDA)
	y := tensor.ScalarOf(float32(1), tensor.CPU)

	it, err := BinaryOp(nil, x, y)
	require.NoError(t, err)

	assert.Equal(t, tensor.CUDA, it.Device(0), "result should be CUDA")
	assert.Equal(t, tensor.CUDA, it.Device(1), "x should be CUDA")
	assert.Equal(t, tensor.CPU, it.Device(2), "y should be CPU")
}

// With an accelerator output and two host scalar inputs, only one input may
// stay on the host: the kernel specialization supports a single immediate
// parameter, so the second scalar is transferred.
func TestBuildCPUScalarInputs(t *testing.T) {
	out := tensor.Zeros(tensor.Shape{5, 5}, tensor.Float32, tensor.CUDA)
	x := tensor.ScalarOf(float32(1), tensor.CPU)
	y := tensor.ScalarOf(float32(1), tensor.CPU)

	it, err := BinaryOp(out, x, y)
	require.NoError(t, err)

	assert.Equal(t, tensor.CUDA, it.Device(0), "result should be CUDA")
	assert.Equal(t, tensor.CPU, it.Device(1), "x should be CPU")
	assert.Equal(t, tensor.CUDA, it.Device(2), "y should be CUDA")
}

// Mixing host and accelerator tensors is an error when neither is a scalar.
func TestBuildMixedDevices(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{5, 5}, tensor.Float32, tensor.CUDA)
	y := tensor.Zeros(tensor.Shape{5}, tensor.Float32, tensor.CPU)

	_, err := BinaryOp(nil, x, y)
	require.ErrorIs(t, err, ErrDeviceMismatch)
}

func TestBuildBroadcastShape(t *testing.T) {
	a := tensor.Zeros(tensor.Shape{3, 1}, tensor.Float32, tensor.CPU)
	b := tensor.Zeros(tensor.Shape{1, 5}, tensor.Float32, tensor.CPU)

	it, err := BinaryOp(nil, a, b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 5}, it.Shape())
	assert.Equal(t, tensor.Shape{3, 5}, it.Output().Shape())
	// Broadcast dimensions read the same element repeatedly.
	assert.Equal(t, []int{1, 0}, it.Strides(1), "a stretches dim 1")
	assert.Equal(t, []int{0, 1}, it.Strides(2), "b stretches dim 0")
	assert.Equal(t, []int{5, 1}, it.Strides(0), "output is contiguous")
}

func TestBuildBroadcastRankMismatch(t *testing.T) {
	a := tensor.Zeros(tensor.Shape{4, 2, 3}, tensor.Float32, tensor.CPU)
	b := tensor.Zeros(tensor.Shape{3}, tensor.Float32, tensor.CPU)

	it, err := BinaryOp(nil, a, b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{4, 2, 3}, it.Shape())
	assert.Equal(t, []int{0, 0, 1}, it.Strides(2), "missing dims behave as size 1")
}

func TestBuildBroadcastError(t *testing.T) {
	a := tensor.Zeros(tensor.Shape{3, 4}, tensor.Float32, tensor.CPU)
	b := tensor.Zeros(tensor.Shape{3, 5}, tensor.Float32, tensor.CPU)

	_, err := BinaryOp(nil, a, b)
	require.ErrorIs(t, err, ErrBroadcastShape)
}

// Default mode promotes across every operand, outputs included, and an
// undefined output is allocated with the promoted dtype.
func TestBuildCommonDType(t *testing.T) {
	a := tensor.Zeros(tensor.Shape{2, 2}, tensor.Int32, tensor.CPU)
	b := tensor.Zeros(tensor.Shape{2, 2}, tensor.Float64, tensor.CPU)

	it, err := BinaryOp(nil, a, b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Float64, it.DType(0))
	assert.Equal(t, tensor.Float64, it.DType(1))
	assert.Equal(t, tensor.Float64, it.DType(2))
	assert.Equal(t, tensor.Float64, it.Output().DType())
}

func TestBuildInputDType(t *testing.T) {
	it, err := NewBuilder().
		AddOutput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Bool, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float32, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float64, tensor.CPU)).
		DontComputeCommonDType().
		Build()
	require.NoError(t, err)

	assert.Equal(t, tensor.Float32, it.InputDType())
	assert.Equal(t, tensor.Float32, it.InputDType(0))
	assert.Equal(t, tensor.Float64, it.InputDType(1))
	assert.Equal(t, tensor.Bool, it.DType(0))
}

func TestBuildCommonDTypeInputsOnly(t *testing.T) {
	it, err := NewBuilder().
		AddOutput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Bool, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float32, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float64, tensor.CPU)).
		ComputeCommonDTypeOnlyForInputs().
		Build()
	require.NoError(t, err)

	assert.Equal(t, tensor.Bool, it.DType(0))
	assert.Equal(t, tensor.Float64, it.DType(1))
	assert.Equal(t, tensor.Float64, it.DType(2))
}

// Setting both flags disables promotion everywhere.
func TestBuildDontComputeCommonDTypeInputsOnly(t *testing.T) {
	it, err := NewBuilder().
		AddOutput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Int64, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float32, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float64, tensor.CPU)).
		ComputeCommonDTypeOnlyForInputs().
		DontComputeCommonDType().
		Build()
	require.NoError(t, err)

	assert.Equal(t, tensor.Int64, it.DType(0))
	assert.Equal(t, tensor.Float32, it.DType(1))
	assert.Equal(t, tensor.Float64, it.DType(2))
}

// An in-place output cannot keep its own dtype and adopt the promoted input
// dtype at the same time.
func TestBuildAliasedOutputDTypeConflict(t *testing.T) {
	inout := tensor.Zeros(tensor.Shape{1, 1}, tensor.Float32, tensor.CPU)

	_, err := NewBuilder().
		AddOutput(inout).
		AddInput(inout).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float64, tensor.CPU)).
		ComputeCommonDTypeOnlyForInputs().
		Build()
	require.ErrorIs(t, err, ErrDTypeAliasConflict)
}

func TestBuildUndefinedOutputInputsOnly(t *testing.T) {
	_, err := NewBuilder().
		AddOutput(nil).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float64, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{1, 1}, tensor.Float32, tensor.CPU)).
		ComputeCommonDTypeOnlyForInputs().
		Build()
	require.ErrorIs(t, err, ErrUndefinedOutputDType)
}

// An undefined output under disabled promotion falls back to the Config dtype.
func TestBuildUndefinedOutputConfigDType(t *testing.T) {
	it, err := NewBuilderWith(Config{Device: tensor.CPU, DType: tensor.Int64}).
		AddOutput(nil).
		AddInput(tensor.Zeros(tensor.Shape{3}, tensor.Float32, tensor.CPU)).
		DontComputeCommonDType().
		Build()
	require.NoError(t, err)

	assert.Equal(t, tensor.Int64, it.Output().DType())
	assert.Equal(t, tensor.Float32, it.InputDType())
}

func TestBuildNilInput(t *testing.T) {
	_, err := NewBuilder().AddOutput(nil).AddInput(nil).Build()
	require.ErrorIs(t, err, ErrUndefinedInput)
}

func TestBuildOperandCounts(t *testing.T) {
	it, err := NewBuilder().
		AddOutput(nil).
		AddInput(tensor.Zeros(tensor.Shape{2}, tensor.Float32, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{2}, tensor.Float32, tensor.CPU)).
		AddInput(tensor.Zeros(tensor.Shape{2}, tensor.Float32, tensor.CPU)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 4, it.NumOperands())
	assert.Equal(t, 1, it.NumOutputs())
	assert.Equal(t, 3, it.NumInputs())
	assert.Equal(t, 2, it.NumElements())
}

// A scalar on a different device that does not qualify for lifting is
// transferred to the common device rather than rejected.
func TestBuildScalarTransferredToHost(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{5, 5}, tensor.Float32, tensor.CPU)
	y := tensor.ScalarOf(float32(2), tensor.CUDA)

	it, err := BinaryOp(nil, x, y)
	require.NoError(t, err)

	assert.Equal(t, tensor.CPU, it.Device(0))
	assert.Equal(t, tensor.CPU, it.Device(1))
	assert.Equal(t, tensor.CPU, it.Device(2), "accelerator scalar moves to the host common device")
}
