// Package notebook runs the tensor tutorial as a linear sequence of cells.
//
// Each cell prints to the session writer. Cells share a Session, so later
// cells see the random draws of earlier ones, like a notebook kernel.
package notebook

import (
	"context"
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Cell is one step of the notebook.
type Cell struct {
	Name  string
	Title string
	Run   func(s *Session) error
}

// Cells returns every cell in notebook order.
func Cells() []Cell {
	return []Cell{
		{"tensors", "Creating tensors", tensorsCell},
		{"reductions", "Reductions", reductionsCell},
		{"reshape", "Reshaping", reshapeCell},
		{"matmul", "Matrix multiplication", matmulCell},
		{"autograd", "Automatic differentiation", autogradCell},
		{"module", "A custom module", moduleCell},
		{"training", "Training the module", trainingCell},
		{"interop", "Interoperability with gonum", interopCell},
		{"device", "Moving tensors between devices", deviceCell},
		{"exercises", "Exercises", exercisesCell},
	}
}

// Names returns the cell names in notebook order.
func Names() []string {
	cells := Cells()
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the cells with the given names in the order given.
// With no names it returns every cell.
func Lookup(names ...string) ([]Cell, error) {
	all := Cells()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Cell, len(all))
	for _, c := range all {
		byName[c.Name] = c
	}
	cells := make([]Cell, 0, len(names))
	for _, name := range names {
		c, ok := byName[name]
		if !ok {
			return nil, errors.Errorf("notebook: unknown cell %q, want one of %v", name, Names())
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// Run executes the named cells, or all of them, on s. It stops at the first
// failing cell. Panics raised inside a cell are returned as errors.
func Run(ctx context.Context, s *Session, names ...string) error {
	cells, err := Lookup(names...)
	if err != nil {
		return err
	}
	for i, c := range cells {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "notebook: stopped before cell %q", c.Name)
		}
		s.printf("%s\n", header(i, c))
		if err := runCell(c, s); err != nil {
			return errors.Wrapf(err, "notebook: cell %q", c.Name)
		}
		s.printf("\n")
	}
	return nil
}

func runCell(c Cell, s *Session) (err error) {
	exception := exceptions.TryCatch[error](func() {
		err = c.Run(s)
	})
	if exception != nil {
		return exception
	}
	return err
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("%-10s %s", c.Name, c.Title)
}
