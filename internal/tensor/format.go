package tensor

import (
	"fmt"
	"strings"
)

// Format renders the tensor's values: scalars as a single value, 1-D tensors
// as a bracketed row, higher ranks as nested brackets one innermost row per line.
func (t *Tensor[T, B]) Format() string {
	var sb strings.Builder
	shape := t.Shape()
	if len(shape) == 0 {
		sb.WriteString(formatValue(t.raw, 0))
		return sb.String()
	}
	formatDim(&sb, t.raw, shape, t.raw.Strides(), 0, 0)
	return sb.String()
}

func formatDim(sb *strings.Builder, raw *RawTensor, shape Shape, strides []int, dim, offset int) {
	sb.WriteByte('[')
	last := dim == len(shape)-1
	for i := 0; i < shape[dim]; i++ {
		if i > 0 {
			if last {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('\n')
				sb.WriteString(strings.Repeat(" ", dim+1))
			}
		}
		if last {
			sb.WriteString(formatValue(raw, offset+i))
		} else {
			formatDim(sb, raw, shape, strides, dim+1, offset+i*strides[dim])
		}
	}
	sb.WriteByte(']')
}

func formatValue(raw *RawTensor, i int) string {
	switch raw.DType() {
	case Float32, Float64:
		return fmt.Sprintf("%.4f", raw.Float64At(i))
	case Bool:
		return fmt.Sprintf("%t", raw.AsBool()[i])
	default:
		return fmt.Sprintf("%d", int64(raw.Float64At(i)))
	}
}
