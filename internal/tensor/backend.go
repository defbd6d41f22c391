package tensor

// Backend defines the operations every compute backend implements.
//
// Implementations:
//   - cpu: pure Go, every op and dtype
//   - webgpu: WGSL compute shaders for float32 arithmetic and matmul,
//     everything else delegated to the CPU backend
//   - autodiff: a decorator over any Backend that records ops on a tape
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations.
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	Pow(x *RawTensor, exponent float64) *RawTensor

	// MatMul multiplies two 2-D tensors: [M, K] @ [K, N] -> [M, N].
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(x *RawTensor, newShape Shape) *RawTensor
	Transpose(x *RawTensor, axes ...int) *RawTensor
	Narrow(x *RawTensor, dim, start, length int) *RawTensor

	// Comparisons return Bool tensors; inputs broadcast.
	Greater(a, b *RawTensor) *RawTensor
	Lower(a, b *RawTensor) *RawTensor
	Equal(a, b *RawTensor) *RawTensor

	// Where picks x where condition is true and y elsewhere, with broadcasting.
	Where(condition, x, y *RawTensor) *RawTensor

	// Reductions.
	Sum(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	Argmax(x *RawTensor, dim int) *RawTensor                   // Int64 result
	Argsort(x *RawTensor, dim int, descending bool) *RawTensor // Int64 result, stable

	// Diagonals of 2-D tensors.
	Diagonal(x *RawTensor, offset int) *RawTensor
	DiagEmbed(x *RawTensor, offset int) *RawTensor

	// Cast converts to another data type.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
