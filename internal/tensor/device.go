package tensor

// To moves a tensor onto the device of backend b.
//
// The move is idempotent: when t already lives on b's device the result shares
// t's storage, otherwise the data is copied. Gradient state is not carried over.
//
// Example:
//
//	gpu, _ := webgpu.New()
//	onGPU := tensor.To(x, gpu)
//	back := tensor.To(onGPU, cpuBackend)
func To[T DType, B Backend, B2 Backend](t *Tensor[T, B], b B2) *Tensor[T, B2] {
	return New[T, B2](t.raw.OnDevice(b.Device()), b)
}

// As rebinds a tensor to another backend on the same device without copying.
// Used to hand tensors between a backend and a decorator wrapping it.
func As[T DType, B Backend, B2 Backend](t *Tensor[T, B], b B2) *Tensor[T, B2] {
	return &Tensor[T, B2]{raw: t.raw, backend: b, requiresGrad: t.requiresGrad}
}
