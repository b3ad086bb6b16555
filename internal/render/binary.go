package render

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// base64PrefilterLen is the length a string must exceed before the
	// base64 alphabet check runs at all.
	base64PrefilterLen = 100
	// base64MinLen is the effective classification threshold.
	base64MinLen = 200
	// sequenceItemMinLen is the length the first string of a sequence must
	// exceed for the sequence to count as a list of encoded blobs.
	sequenceItemMinLen = 100
)

// binaryFieldNames are substrings of field names that hold blob content.
var binaryFieldNames = []string{
	"Cert_TemplateFile",
	"TemplateFile",
	"FileContent",
	"BinaryData",
	"ImageData",
	"DocumentData",
	"AttachmentData",
	"FileData",
}

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/=\s]+$`)

// FieldClass is the display classification of a field.
type FieldClass int

const (
	// Plain fields are printed as they are.
	Plain FieldClass = iota
	// Binary fields are replaced by a size placeholder in text output.
	Binary
)

// Classify returns the display classification of a field.
func Classify(name string, v Value) FieldClass {
	if IsBinary(name, v) {
		return Binary
	}
	return Plain
}

// IsBinary reports whether a field looks like blob content that must not be
// printed verbatim. It is a heuristic: very long text made only of base64
// characters is treated as binary.
func IsBinary(name string, v Value) bool {
	lower := strings.ToLower(name)
	for _, n := range binaryFieldNames {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}

	switch t := v.(type) {
	case Scalar:
		s, ok := t.V.(string)
		if !ok || utf8.RuneCountInString(s) <= base64PrefilterLen {
			return false
		}
		return utf8.RuneCountInString(s) > base64MinLen && base64Pattern.MatchString(s)
	case Sequence:
		if len(t) == 0 {
			return false
		}
		first, ok := t[0].(Scalar)
		if !ok {
			return false
		}
		s, ok := first.V.(string)
		return ok && utf8.RuneCountInString(s) > sequenceItemMinLen
	}
	return false
}

// binaryPlaceholder is the text shown instead of a binary value.
func binaryPlaceholder(v Value) string {
	return fmt.Sprintf("[BINARY DATA - %d bytes]", textLen(v))
}
