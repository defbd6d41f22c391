package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tensorbook "+version+"\n", out)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "tensors")
	assert.Contains(t, lines[9], "exercises")
}

func TestExercises(t *testing.T) {
	first, err := execute(t, "exercises", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, first, "argsort of first row")

	second, err := execute(t, "exercises", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed, same table")
}

func TestRun_Cells(t *testing.T) {
	out, err := execute(t, "run", "--device", "cpu", "tensors", "matmul")
	require.NoError(t, err)
	assert.Contains(t, out, "Creating tensors")
	assert.Contains(t, out, "A @ I == A: true")
	assert.NotContains(t, out, "Exercises")
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "--device", "cpu", "nope")
	require.Error(t, err)

	_, err = execute(t, "run", "--device", "cpu", "--epochs", "0", "training")
	require.Error(t, err)

	_, err = execute(t, "run", "--device", "tpu")
	require.Error(t, err)
}
