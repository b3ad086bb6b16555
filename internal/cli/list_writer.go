package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ListWriter prints compact, column-aligned listings such as `profile list`.
// Headers are upper-cased and columns are separated by three spaces.
type ListWriter struct {
	headers []string
	rows    [][]string
	widths  []int
	out     io.Writer
}

// NewListWriter creates a ListWriter with the given headers.
func NewListWriter(out io.Writer, headers ...string) *ListWriter {
	w := &ListWriter{out: out}
	for _, h := range headers {
		upper := strings.ToUpper(h)
		w.headers = append(w.headers, upper)
		w.widths = append(w.widths, text.StringWidthWithoutEscSequences(upper))
	}
	return w
}

// AppendRow adds a row. Missing cells are blank; extra cells are dropped.
func (w *ListWriter) AppendRow(cells ...string) {
	row := make([]string, len(w.headers))
	copy(row, cells)
	for i, c := range row {
		if n := text.StringWidthWithoutEscSequences(c); n > w.widths[i] {
			w.widths[i] = n
		}
	}
	w.rows = append(w.rows, row)
}

// Render writes the header and all rows.
func (w *ListWriter) Render() {
	w.printRow(w.headers)
	for _, row := range w.rows {
		w.printRow(row)
	}
}

func (w *ListWriter) printRow(row []string) {
	cells := make([]string, len(row))
	for i, c := range row {
		if i == len(row)-1 {
			cells[i] = c
			continue
		}
		cells[i] = text.Pad(c, w.widths[i], ' ')
	}
	fmt.Fprintln(w.out, strings.Join(cells, "   "))
}
