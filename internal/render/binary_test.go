package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinary(t *testing.T) {
	base64Like := strings.Repeat("QUJD", 62) + "RA==" // 252 chars
	tests := []struct {
		name      string
		fieldName string
		value     Value
		expected  bool
	}{
		{
			name:      "known blob field name",
			fieldName: "Cert_TemplateFile",
			value:     Str("short"),
			expected:  true,
		},
		{
			name:      "blob field name is case insensitive",
			fieldName: "cert_templatefile",
			value:     Null,
			expected:  true,
		},
		{
			name:      "blob field name as substring",
			fieldName: "LoanDocumentDataRaw",
			value:     Num("1"),
			expected:  true,
		},
		{
			name:      "long base64 string",
			fieldName: "Payload",
			value:     Str(base64Like[:250]),
			expected:  true,
		},
		{
			name:      "base64 string with whitespace",
			fieldName: "Payload",
			value:     Str(strings.Repeat("QUJD\n", 50)),
			expected:  true,
		},
		{
			name:      "long string with non base64 character",
			fieldName: "Payload",
			value:     Str(base64Like[:249] + "!"),
			expected:  false,
		},
		{
			name:      "base64 string between pre-filter and threshold",
			fieldName: "Payload",
			value:     Str(base64Like[:150]),
			expected:  false,
		},
		{
			name:      "exactly 200 characters is not enough",
			fieldName: "Payload",
			value:     Str(base64Like[:200]),
			expected:  false,
		},
		{
			name:      "short string regardless of alphabet",
			fieldName: "Payload",
			value:     Str(base64Like[:90]),
			expected:  false,
		},
		{
			name:      "sequence of long strings",
			fieldName: "Attachments",
			value:     Sequence{Str(strings.Repeat("x y ", 26))},
			expected:  true,
		},
		{
			name:      "sequence of short strings",
			fieldName: "Tags",
			value:     Sequence{Str("a"), Str(strings.Repeat("b", 300))},
			expected:  false,
		},
		{
			name:      "sequence whose first item is not text",
			fieldName: "Items",
			value:     Sequence{Num("1"), Str(strings.Repeat("b", 300))},
			expected:  false,
		},
		{
			name:      "empty sequence",
			fieldName: "Items",
			value:     Sequence{},
			expected:  false,
		},
		{
			name:      "number",
			fieldName: "Amount",
			value:     Num("1234.56"),
			expected:  false,
		},
		{
			name:      "mapping",
			fieldName: "Address",
			value:     NewMapping().Set("Street", Str(base64Like)),
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBinary(tt.fieldName, tt.value))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Binary, Classify("FileData", Str("abc")))
	assert.Equal(t, Plain, Classify("Name", Str("abc")))
}

func TestBinaryPlaceholder(t *testing.T) {
	assert.Equal(t, "[BINARY DATA - 5 bytes]", binaryPlaceholder(Str("hello")))
	assert.Equal(t, "[BINARY DATA - 8 bytes]", binaryPlaceholder(Sequence{Str("ab"), Num("1")}))
}
