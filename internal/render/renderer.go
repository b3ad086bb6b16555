package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format selects the output representation.
type Format string

const (
	// FormatText is the human-readable representation (default).
	FormatText Format = "text"
	// FormatJSON is indented JSON for machine consumption.
	FormatJSON Format = "json"
)

// NoResults is printed for empty or absent data in text mode.
const NoResults = "No results found"

// MultilineThreshold is the number of columns above which records are
// rendered as blocks instead of a table.
const MultilineThreshold = 10

const jsonIndent = "    "

// Render converts v to its string representation. It never fails: malformed
// input degrades to a per-item fallback.
func Render(v Value, format Format) string {
	if format == FormatJSON {
		return RenderJSON(v)
	}
	return RenderText(v)
}

// RenderJSON returns v as 4-space indented JSON with field order preserved.
// Binary fields are not redacted.
func RenderJSON(v Value) string {
	if v == nil {
		v = Null
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		// Scalars already fall back to their text; this only guards
		// against values constructed outside this package.
		b, _ := encodeJSON(Text(v))
		return string(b)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// RenderText returns the human-readable representation of v.
func RenderText(v Value) string {
	switch t := v.(type) {
	case Scalar:
		if t.V == nil || t.V == "" {
			return NoResults
		}
		return Text(t)
	case *Mapping:
		if t.Len() == 0 {
			return NoResults
		}
		return renderMapping(t)
	case Sequence:
		if len(t) == 0 {
			return NoResults
		}
		return renderSequence(t)
	default:
		return NoResults
	}
}

// renderMapping prints one "key: value" line per public field.
func renderMapping(m *Mapping) string {
	var lines []string
	m.Each(func(k string, v Value) {
		if isInternal(k) {
			return
		}
		if IsBinary(k, v) {
			lines = append(lines, fmt.Sprintf("%s: %s", k, binaryPlaceholder(v)))
			return
		}
		lines = append(lines, fmt.Sprintf("%s: %s", k, Text(v)))
	})
	return strings.Join(lines, "\n")
}

func renderSequence(seq Sequence) string {
	if allScalars(seq) {
		lines := make([]string, len(seq))
		for i, item := range seq {
			lines[i] = Text(item)
		}
		return strings.Join(lines, "\n")
	}

	records := make([]*Mapping, len(seq))
	for i, item := range seq {
		records[i] = displayRecord(item)
	}

	headers := unionHeaders(records)
	if len(headers) == 0 {
		return NoResults
	}
	if len(headers) > MultilineThreshold {
		return MultilineFormatter{}.Format(records, headers)
	}
	return TableFormatter{}.Format(records, headers)
}

// displayRecord flattens an item into the fields shown for it: internal and
// absent fields are dropped and binary values replaced by a placeholder.
// Items that are not mappings are shown under a single "value" column.
func displayRecord(item Value) *Mapping {
	src, ok := item.(*Mapping)
	if !ok {
		src = NewMapping().Set("value", item)
	}
	out := NewMapping()
	src.Each(func(k string, v Value) {
		if isInternal(k) || IsNull(v) {
			return
		}
		if IsBinary(k, v) {
			out.Set(k, Str(binaryPlaceholder(v)))
			return
		}
		out.Set(k, v)
	})
	return out
}

// unionHeaders returns the sorted union of all field names.
func unionHeaders(records []*Mapping) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		rec.Each(func(k string, _ Value) {
			seen[k] = struct{}{}
		})
	}
	headers := make([]string, 0, len(seen))
	for k := range seen {
		headers = append(headers, k)
	}
	sort.Strings(headers)
	return headers
}

func allScalars(seq Sequence) bool {
	for _, item := range seq {
		if _, ok := item.(Scalar); !ok {
			return false
		}
	}
	return true
}
