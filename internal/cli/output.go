package cli

import (
	"tmoapi/internal/api"
	"tmoapi/internal/render"
)

// OutputFormat represents the supported output formats for CLI commands.
type OutputFormat string

const (
	// OutputFormatText renders key/value lines, tables or record blocks
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON renders indented JSON
	OutputFormatJSON OutputFormat = "json"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatText,
	OutputFormatJSON,
}

// ValidateOutputFormat validates that the given format string is a supported output format.
func ValidateOutputFormat(format string) error {
	_, err := ParseOutputFormat(format)
	return err
}

// ParseOutputFormat maps a format name onto the renderer's format.
func ParseOutputFormat(format string) (render.Format, error) {
	switch OutputFormat(format) {
	case OutputFormatText:
		return render.FormatText, nil
	case OutputFormatJSON:
		return render.FormatJSON, nil
	default:
		return "", api.Validationf("unsupported output format: %q (valid: text, json)", format)
	}
}
