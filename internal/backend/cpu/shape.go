package cpu

import (
	"github.com/born-ml/tensorbook/internal/tensor"
)

// Reshape returns a copy of x with a new shape holding the same number of elements.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if newShape.NumElements() != x.NumElements() {
		panicf("reshape", "cannot reshape %v (%d elements) into %v", x.Shape(), x.NumElements(), newShape)
	}
	if err := newShape.Validate(); err != nil {
		panicf("reshape", "%v", err)
	}
	return x.Clone().WithShape(newShape)
}

// Transpose permutes dimensions. With no axes the dimensions are reversed.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	rank := len(shape)
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		panicf("transpose", "got %d axes for rank %d", len(axes), rank)
	}

	seen := make([]bool, rank)
	outShape := make(tensor.Shape, rank)
	inStrides := x.Strides()
	permStrides := make([]int, rank)
	for i, ax := range axes {
		ax = tensor.NormalizeDim(ax, rank)
		if seen[ax] {
			panicf("transpose", "axis %d repeated in %v", ax, axes)
		}
		seen[ax] = true
		outShape[i] = shape[ax]
		permStrides[i] = inStrides[ax]
	}

	result := cpu.newResult("transpose", outShape, x.DType())
	size := x.DType().Size()
	src, dst := x.Data(), result.Data()
	broadcastIndex(outShape, [][]int{permStrides}, func(i int, off []int) {
		copy(dst[i*size:(i+1)*size], src[off[0]*size:(off[0]+1)*size])
	})
	return result
}

// Narrow keeps length entries along dim starting at start.
func (cpu *CPUBackend) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	shape := x.Shape()
	dim = tensor.NormalizeDim(dim, len(shape))
	if start < 0 || length <= 0 || start+length > shape[dim] {
		panicf("narrow", "range [%d, %d) out of bounds for dimension %d of size %d", start, start+length, dim, shape[dim])
	}
	outer, inner := splitAt(shape, dim)

	outShape := shape.Clone()
	outShape[dim] = length
	result := cpu.newResult("narrow", outShape, x.DType())

	size := x.DType().Size()
	block := length * inner * size
	src, dst := x.Data(), result.Data()
	for o := 0; o < outer; o++ {
		from := (o*shape[dim] + start) * inner * size
		copy(dst[o*block:(o+1)*block], src[from:from+block])
	}
	return result
}

// Diagonal extracts the diagonal of a 2-D tensor at offset; positive offsets
// are above the main diagonal.
func (cpu *CPUBackend) Diagonal(x *tensor.RawTensor, offset int) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panicf("diagonal", "expected 2D tensor, got shape %v", shape)
	}
	rows, cols := shape[0], shape[1]
	rowStart, colStart := 0, offset
	if offset < 0 {
		rowStart, colStart = -offset, 0
	}
	n := min(rows-rowStart, cols-colStart)
	if n <= 0 {
		panicf("diagonal", "offset %d leaves no elements in shape %v", offset, shape)
	}

	result := cpu.newResult("diagonal", tensor.Shape{n}, x.DType())
	size := x.DType().Size()
	src, dst := x.Data(), result.Data()
	for i := 0; i < n; i++ {
		at := (rowStart+i)*cols + colStart + i
		copy(dst[i*size:(i+1)*size], src[at*size:(at+1)*size])
	}
	return result
}

// DiagEmbed builds a square matrix with the 1-D tensor x placed on the
// diagonal at offset and zeros elsewhere.
func (cpu *CPUBackend) DiagEmbed(x *tensor.RawTensor, offset int) *tensor.RawTensor {
	if len(x.Shape()) != 1 {
		panicf("diag_embed", "expected 1D tensor, got shape %v", x.Shape())
	}
	n := x.Shape()[0]
	dim := n + abs(offset)
	rowStart, colStart := 0, offset
	if offset < 0 {
		rowStart, colStart = -offset, 0
	}

	result := cpu.newResult("diag_embed", tensor.Shape{dim, dim}, x.DType())
	size := x.DType().Size()
	src, dst := x.Data(), result.Data()
	for i := 0; i < n; i++ {
		at := (rowStart+i)*dim + colStart + i
		copy(dst[at*size:(at+1)*size], src[i*size:(i+1)*size])
	}
	return result
}

// Cast converts x to dtype.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}
	result := cpu.newResult("cast", x.Shape(), dtype)
	for i := 0; i < x.NumElements(); i++ {
		result.SetFloat64At(i, x.Float64At(i))
	}
	return result
}

// splitAt returns the product of dimensions before dim and after dim.
func splitAt(shape tensor.Shape, dim int) (outer, inner int) {
	outer, inner = 1, 1
	for _, d := range shape[:dim] {
		outer *= d
	}
	for _, d := range shape[dim+1:] {
		inner *= d
	}
	return outer, inner
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
