package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	// wrapWidth is the number of characters per line of a wrapped value.
	wrapWidth = 80
	// separatorExtra is added to the widest header to size the record separator.
	separatorExtra = 50
)

// MultilineFormatter renders records that are too wide for a table as one
// block per record:
//
//	Record 1:
//	---------------------------------------------------------
//	Account : A-100
//	Balance : 10.50
type MultilineFormatter struct{}

// Format renders records with one "header : value" line per header.
// Values longer than 80 characters are hard-wrapped and the continuation
// lines are indented under the value column.
func (MultilineFormatter) Format(records []*Mapping, headers []string) string {
	maxWidth := 0
	for _, h := range headers {
		if w := displayWidth(h); w > maxWidth {
			maxWidth = w
		}
	}
	indent := strings.Repeat(" ", maxWidth+3)

	var lines []string
	for i, rec := range records {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("Record %d:", i+1))
		lines = append(lines, strings.Repeat("-", maxWidth+separatorExtra))

		for _, h := range headers {
			value := cellText(rec, h)
			if utf8.RuneCountInString(value) > wrapWidth {
				chunks := hardWrap(value, wrapWidth)
				for j := range chunks {
					chunks[j] = indent + chunks[j]
				}
				value = "\n" + strings.Join(chunks, "\n")
			}
			lines = append(lines, fmt.Sprintf("%s : %s", text.Pad(h, maxWidth, ' '), value))
		}
	}
	return strings.Join(lines, "\n")
}

// hardWrap splits s into chunks of at most width characters, ignoring word
// boundaries.
func hardWrap(s string, width int) []string {
	runes := []rune(s)
	if len(runes) <= width {
		return []string{s}
	}
	chunks := make([]string, 0, len(runes)/width+1)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
