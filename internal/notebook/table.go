package notebook

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/tensorbook/internal/exercises"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// RenderExercises runs the ten exercises on the matrix seeded with seed and
// writes the results to w as a table.
func RenderExercises(w io.Writer, seed int64, backend tensor.Backend) {
	results := exercises.RunAll(exercises.Matrix(seed, backend))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "exercise", "result"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, r := range results {
		table.Append([]string{strconv.Itoa(r.Number), r.Name, r.Value})
	}
	table.Render()
}
