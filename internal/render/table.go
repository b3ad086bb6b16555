package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// columnSeparator joins the cells of a table row.
const columnSeparator = " | "

// TableFormatter renders uniform records as an aligned column table:
//
//	Account | Balance
//	-----------------
//	A-100   | 10.50
//
// Every column is padded to the widest of its header and values.
type TableFormatter struct{}

// Format renders records using headers as the column order.
// Missing cells render as empty strings.
func (TableFormatter) Format(records []*Mapping, headers []string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = displayWidth(h)
		for _, rec := range records {
			if v, ok := rec.Get(h); ok {
				if w := displayWidth(Text(v)); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	headerRow := joinPadded(headers, widths)
	lines := make([]string, 0, len(records)+2)
	lines = append(lines, headerRow, strings.Repeat("-", displayWidth(headerRow)))

	cells := make([]string, len(headers))
	for _, rec := range records {
		for i, h := range headers {
			cells[i] = cellText(rec, h)
		}
		lines = append(lines, joinPadded(cells, widths))
	}
	return strings.Join(lines, "\n")
}

func joinPadded(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = text.Pad(c, widths[i], ' ')
	}
	return strings.Join(padded, columnSeparator)
}

// cellText returns the text of a record field, or "" when the field is missing.
func cellText(rec *Mapping, key string) string {
	v, ok := rec.Get(key)
	if !ok {
		return ""
	}
	return Text(v)
}

// displayWidth is the number of terminal columns s occupies.
func displayWidth(s string) int {
	return text.StringWidthWithoutEscSequences(s)
}
