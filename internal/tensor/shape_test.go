package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements(), "scalar shape has one element")
	assert.Equal(t, 6, Shape{2, 3}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	require.Error(t, Shape{2, 0}.Validate())
	require.Error(t, Shape{-1, 3}.Validate())
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b, want Shape
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{}, Shape{2, 2}, Shape{2, 2}},
		{Shape{4, 1, 3}, Shape{2, 1}, Shape{4, 2, 3}},
	}
	for _, tt := range tests {
		got, err := BroadcastShapes(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v + %v", tt.a, tt.b)
	}
}

func TestBroadcastShapesError(t *testing.T) {
	_, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
	require.Error(t, err)
}

func TestBroadcastAll(t *testing.T) {
	got, err := BroadcastAll(Shape{3, 1}, Shape{5}, Shape{1, 1})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 5}, got)

	got, err = BroadcastAll()
	require.NoError(t, err)
	assert.Equal(t, Shape{}, got)
}

func TestBroadcastStrides(t *testing.T) {
	// (3, 1) into (3, 5): stretched dim reads the same element.
	assert.Equal(t, []int{1, 0}, BroadcastStrides(Shape{3, 1}, Shape{3, 1}.ComputeStrides(), Shape{3, 5}))
	// (5,) into (3, 5): missing leading dim gets stride 0.
	assert.Equal(t, []int{0, 1}, BroadcastStrides(Shape{5}, Shape{5}.ComputeStrides(), Shape{3, 5}))
	// Scalar into anything: all zeros.
	assert.Equal(t, []int{0, 0}, BroadcastStrides(Shape{}, nil, Shape{3, 5}))
	// Exact match keeps the original strides.
	assert.Equal(t, []int{5, 1}, BroadcastStrides(Shape{3, 5}, Shape{3, 5}.ComputeStrides(), Shape{3, 5}))
}
