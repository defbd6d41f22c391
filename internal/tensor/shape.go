package tensor

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor. An empty shape is a scalar.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides: stride[i] is the product of
// all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// NormalizeDim resolves a possibly negative dimension against a rank.
// Panics if the dimension is out of range.
func NormalizeDim(dim, rank int) int {
	if dim < 0 {
		dim += rank
	}
	if dim < 0 || dim >= rank {
		exceptions.Panicf("dimension %d out of range for rank %d", dim, rank)
	}
	return dim
}

// InferShape resolves a single -1 entry so that the result holds numElements.
func InferShape(shape Shape, numElements int) (Shape, error) {
	result := shape.Clone()
	inferAt := -1
	known := 1
	for i, dim := range result {
		switch {
		case dim == -1:
			if inferAt >= 0 {
				return nil, errors.Errorf("only one dimension can be inferred, got shape %v", shape)
			}
			inferAt = i
		case dim <= 0:
			return nil, errors.Errorf("invalid dimension at index %d: %d", i, dim)
		default:
			known *= dim
		}
	}
	if inferAt >= 0 {
		if numElements%known != 0 {
			return nil, errors.Errorf("cannot infer dimension: %d elements into shape %v", numElements, shape)
		}
		result[inferAt] = numElements / known
	}
	if result.NumElements() != numElements {
		return nil, errors.Errorf("shape %v holds %d elements, tensor has %d", result, result.NumElements(), numElements)
	}
	return result, nil
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Shapes are compared right to left; two dimensions are compatible when they
// are equal or one of them is 1, and missing dimensions count as 1.
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aDim, bDim := 1, 1
		if j := len(a) - 1 - i; j >= 0 {
			aDim = a[j]
		}
		if j := len(b) - 1 - i; j >= 0 {
			bDim = b[j]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, errors.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}

// BroadcastStrides returns strides that walk a tensor of the given shape as if
// it had outShape: broadcast dimensions get stride 0.
func BroadcastStrides(shape, outShape Shape) []int {
	strides := shape.ComputeStrides()
	result := make([]int, len(outShape))
	offset := len(outShape) - len(shape)
	for i := range shape {
		if shape[i] != 1 {
			result[offset+i] = strides[i]
		}
	}
	return result
}
