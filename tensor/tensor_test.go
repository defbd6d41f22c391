// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorbook/backend/cpu"
	"github.com/born-ml/tensorbook/tensor"
)

func TestPublicAPI(t *testing.T) {
	backend := cpu.New()

	m := tensor.Arange[float32](0, 12, backend).Reshape(3, -1)
	assert.Equal(t, tensor.Shape{3, 4}, m.Shape())
	assert.Equal(t, "[6.0000 22.0000 38.0000]", m.SumDim(1, false).Format())

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	assert.Equal(t, []float32{7, 10, 15, 22}, x.MatMul(x).Data())

	mask := x.GreaterScalar(2)
	assert.Equal(t, 2, tensor.CountTrue(mask))
	assert.Equal(t, []float32{1, 2, 0, 0}, tensor.Where(mask, tensor.Zeros[float32](tensor.Shape{2, 2}, backend), x).Data())
	assert.Equal(t, tensor.CPU, tensor.To(x, backend).Device())
}
