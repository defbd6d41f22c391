package tensor

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 12, Shape{3, 4}.NumElements())
	assert.Equal(t, 0, Shape{3, 0}.NumElements())
}

func TestShape_ComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShape_Validate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	require.Error(t, Shape{2, 0}.Validate())
	require.Error(t, Shape{-1}.Validate())
}

func TestNormalizeDim(t *testing.T) {
	assert.Equal(t, 1, NormalizeDim(-1, 2))
	assert.Equal(t, 0, NormalizeDim(0, 2))
	assert.Panics(t, func() { NormalizeDim(2, 2) })
	assert.Panics(t, func() { NormalizeDim(-3, 2) })
}

func TestInferShape(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		n       int
		want    Shape
		wantErr bool
	}{
		{"Explicit", Shape{3, 4}, 12, Shape{3, 4}, false},
		{"InferLast", Shape{3, -1}, 12, Shape{3, 4}, false},
		{"InferFirst", Shape{-1, 2, 2}, 12, Shape{3, 2, 2}, false},
		{"Flatten", Shape{-1}, 12, Shape{12}, false},
		{"TwoInferred", Shape{-1, -1}, 12, nil, true},
		{"NotDivisible", Shape{5, -1}, 12, nil, true},
		{"WrongCount", Shape{5, 2}, 12, nil, true},
		{"ZeroDim", Shape{0, 12}, 12, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InferShape(tt.shape, tt.n)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{"Same", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{"Column", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"RowAndColumn", Shape{3, 1}, Shape{1, 4}, Shape{3, 4}, true, false},
		{"Scalar", Shape{}, Shape{2, 2}, Shape{2, 2}, true, false},
		{"LowerRank", Shape{5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"Incompatible", Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, broadcast, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.broadcast, broadcast)
		})
	}
}

func TestBroadcastStrides(t *testing.T) {
	assert.Equal(t, []int{1, 0}, BroadcastStrides(Shape{3, 1}, Shape{3, 4}))
	assert.Equal(t, []int{0, 1}, BroadcastStrides(Shape{4}, Shape{3, 4}))
	assert.Equal(t, []int{0, 0}, BroadcastStrides(Shape{}, Shape{3, 4}))
}

func TestRawTensor(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, err)
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 24, raw.ByteSize())
	assert.Equal(t, []int{3, 1}, raw.Strides())

	raw.SetFloat64At(4, 2.5)
	assert.Equal(t, float32(2.5), raw.AsFloat32()[4])
	assert.Panics(t, func() { raw.AsInt64() })
	err = exceptions.TryCatch[error](func() { raw.AsInt64() })
	require.ErrorContains(t, err, "tensor dtype is float32, not int64")

	clone := raw.Clone()
	clone.AsFloat32()[4] = 7
	assert.Equal(t, float32(2.5), raw.AsFloat32()[4])

	view := raw.WithShape(Shape{3, 2})
	view.AsFloat32()[0] = 1
	assert.Equal(t, float32(1), raw.AsFloat32()[0], "WithShape shares storage")

	assert.Same(t, raw, raw.OnDevice(CPU))
	moved := raw.OnDevice(WebGPU)
	assert.Equal(t, WebGPU, moved.Device())
	assert.Equal(t, raw.AsFloat32(), moved.AsFloat32())

	_, err = NewRaw(Shape{2, 0}, Float32, CPU)
	require.Error(t, err)
}

func TestDataType(t *testing.T) {
	err := exceptions.TryCatch[error](func() { DataType(99).Size() })
	require.ErrorContains(t, err, "unknown data type 99")

	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Int64, DataTypeOf[int64]())
	assert.Equal(t, Bool, DataTypeOf[bool]())
	assert.Equal(t, 8, Float64.Size())
	assert.True(t, Float64.IsFloat())
	assert.False(t, Int32.IsFloat())
	assert.Equal(t, "float32", Float32.String())

	assert.Equal(t, int64(3), FromFloat64[int64](3.9))
	assert.True(t, FromFloat64[bool](1))
	assert.InDelta(t, 1.5, ToFloat64(float32(1.5)), 1e-9)
}
