package cpu

import (
	"math"

	"github.com/gomlx/exceptions"

	"github.com/born-ml/tensorbook/internal/tensor"
)

func panicf(op, format string, args ...any) {
	exceptions.Panicf("%s: "+format, append([]any{op}, args...)...)
}

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

type compareOp int

const (
	cmpGreater compareOp = iota
	cmpLower
	cmpEqual
)

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", opMul, a, b)
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", opDiv, a, b)
}

func (cpu *CPUBackend) binary(name string, op binaryOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panicf(name, "dtype mismatch: %s vs %s", a.DType(), b.DType())
	}
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panicf(name, "%v", err)
	}
	result := cpu.newResult(name, outShape, a.DType())
	as := tensor.BroadcastStrides(a.Shape(), outShape)
	bs := tensor.BroadcastStrides(b.Shape(), outShape)

	switch a.DType() {
	case tensor.Float32:
		binaryTyped(op, result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), outShape, as, bs)
	case tensor.Float64:
		binaryTyped(op, result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), outShape, as, bs)
	case tensor.Int32:
		binaryTyped(op, result.AsInt32(), a.AsInt32(), b.AsInt32(), outShape, as, bs)
	case tensor.Int64:
		binaryTyped(op, result.AsInt64(), a.AsInt64(), b.AsInt64(), outShape, as, bs)
	case tensor.Uint8:
		binaryTyped(op, result.AsUint8(), a.AsUint8(), b.AsUint8(), outShape, as, bs)
	default:
		panicf(name, "unsupported dtype %s", a.DType())
	}
	return result
}

func applyBinary[T number](op binaryOp, x, y T) T {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	default:
		return x / y
	}
}

func binaryTyped[T number](op binaryOp, out, a, b []T, outShape tensor.Shape, as, bs []int) {
	if len(a) == len(out) && len(b) == len(out) {
		// Same shape: flat walk.
		for i := range out {
			out[i] = applyBinary(op, a[i], b[i])
		}
		return
	}
	broadcastIndex(outShape, [][]int{as, bs}, func(i int, off []int) {
		out[i] = applyBinary(op, a[off[0]], b[off[1]])
	})
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("add_scalar", x, func(v float64) float64 { return v + scalar })
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("mul_scalar", x, func(v float64) float64 { return v * scalar })
}

// Pow raises every element to exponent. Only float dtypes are supported.
func (cpu *CPUBackend) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	if !x.DType().IsFloat() {
		panicf("pow", "unsupported dtype %s", x.DType())
	}
	if exponent == 2 {
		return cpu.unary("pow", x, func(v float64) float64 { return v * v })
	}
	return cpu.unary("pow", x, func(v float64) float64 { return math.Pow(v, exponent) })
}

func (cpu *CPUBackend) unary(name string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result := cpu.newResult(name, x.Shape(), x.DType())
	switch x.DType() {
	case tensor.Float32:
		mapTyped(result.AsFloat32(), x.AsFloat32(), f)
	case tensor.Float64:
		mapTyped(result.AsFloat64(), x.AsFloat64(), f)
	case tensor.Int32:
		mapTyped(result.AsInt32(), x.AsInt32(), f)
	case tensor.Int64:
		mapTyped(result.AsInt64(), x.AsInt64(), f)
	case tensor.Uint8:
		mapTyped(result.AsUint8(), x.AsUint8(), f)
	default:
		panicf(name, "unsupported dtype %s", x.DType())
	}
	return result
}

func mapTyped[T number](out, in []T, f func(float64) float64) {
	for i, v := range in {
		out[i] = T(f(float64(v)))
	}
}

// Greater returns a Bool tensor that is true where a > b.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greater", cmpGreater, a, b)
}

// Lower returns a Bool tensor that is true where a < b.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lower", cmpLower, a, b)
}

// Equal returns a Bool tensor that is true where a == b.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("equal", cmpEqual, a, b)
}

func (cpu *CPUBackend) compare(name string, op compareOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panicf(name, "dtype mismatch: %s vs %s", a.DType(), b.DType())
	}
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panicf(name, "%v", err)
	}
	result := cpu.newResult(name, outShape, tensor.Bool)
	out := result.AsBool()
	strides := [][]int{
		tensor.BroadcastStrides(a.Shape(), outShape),
		tensor.BroadcastStrides(b.Shape(), outShape),
	}
	broadcastIndex(outShape, strides, func(i int, off []int) {
		x, y := a.Float64At(off[0]), b.Float64At(off[1])
		switch op {
		case cmpGreater:
			out[i] = x > y
		case cmpLower:
			out[i] = x < y
		default:
			out[i] = x == y
		}
	})
	return result
}

// Where picks x where condition is true and y elsewhere. All three broadcast.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panicf("where", "condition must be bool, got %s", condition.DType())
	}
	if x.DType() != y.DType() {
		panicf("where", "dtype mismatch: %s vs %s", x.DType(), y.DType())
	}
	outShape, _, err := tensor.BroadcastShapes(condition.Shape(), x.Shape())
	if err == nil {
		outShape, _, err = tensor.BroadcastShapes(outShape, y.Shape())
	}
	if err != nil {
		panicf("where", "%v", err)
	}

	result := cpu.newResult("where", outShape, x.DType())
	size := x.DType().Size()
	cond := condition.AsBool()
	src, dst := [2][]byte{x.Data(), y.Data()}, result.Data()
	strides := [][]int{
		tensor.BroadcastStrides(condition.Shape(), outShape),
		tensor.BroadcastStrides(x.Shape(), outShape),
		tensor.BroadcastStrides(y.Shape(), outShape),
	}
	broadcastIndex(outShape, strides, func(i int, off []int) {
		pick, at := 1, off[2]
		if cond[off[0]] {
			pick, at = 0, off[1]
		}
		copy(dst[i*size:(i+1)*size], src[pick][at*size:(at+1)*size])
	})
	return result
}
