package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is the normalized shape all response data takes before formatting.
// It is one of Scalar, *Mapping or Sequence.
type Value interface {
	isValue()
}

// Scalar holds a single leaf value. A nil V means the value is absent (JSON null).
type Scalar struct {
	V interface{}
}

// Mapping is an insertion-ordered set of uniquely named fields.
type Mapping struct {
	fields *orderedmap.OrderedMap[string, Value]
}

// Sequence is an ordered list of values.
type Sequence []Value

func (Scalar) isValue()   {}
func (*Mapping) isValue() {}
func (Sequence) isValue() {}

// Renderable is implemented by domain objects that know how to present
// themselves. The renderer never looks inside objects any other way.
type Renderable interface {
	RenderFields() *Mapping
}

// Null is the absent value.
var Null = Scalar{}

// Str wraps a string.
func Str(s string) Scalar { return Scalar{V: s} }

// Num wraps a number using its JSON text so formatting never changes digits.
func Num(n string) Scalar { return Scalar{V: json.Number(n)} }

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{fields: orderedmap.New[string, Value]()}
}

// Set adds or replaces a field. Replacing keeps the original position.
func (m *Mapping) Set(key string, v Value) *Mapping {
	if v == nil {
		v = Null
	}
	m.fields.Set(key, v)
	return m
}

// Get returns the value of a field.
func (m *Mapping) Get(key string) (Value, bool) {
	return m.fields.Get(key)
}

// Len returns the number of fields.
func (m *Mapping) Len() int {
	if m == nil || m.fields == nil {
		return 0
	}
	return m.fields.Len()
}

// Keys returns field names in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, m.Len())
	m.Each(func(k string, _ Value) {
		keys = append(keys, k)
	})
	return keys
}

// Each calls fn for every field in insertion order.
func (m *Mapping) Each(fn func(key string, v Value)) {
	if m.Len() == 0 {
		return
	}
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// IsNull reports whether v is absent.
func IsNull(v Value) bool {
	s, ok := v.(Scalar)
	return v == nil || (ok && s.V == nil)
}

// FromAny converts Go values into a Value. Renderables use their own field
// mapping; Go maps have no order, so their keys are sorted.
func FromAny(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case Renderable:
		return t.RenderFields()
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			m.Set(k, FromAny(t[k]))
		}
		return m
	case []interface{}:
		seq := make(Sequence, len(t))
		for i, item := range t {
			seq[i] = FromAny(item)
		}
		return seq
	case []string:
		seq := make(Sequence, len(t))
		for i, item := range t {
			seq[i] = Str(item)
		}
		return seq
	case float64:
		// encoding/json default decoding; keep the shortest representation.
		return Scalar{V: json.Number(fmt.Sprint(t))}
	default:
		return Scalar{V: t}
	}
}

// UnmarshalJSON is implemented on *Mapping so API payloads keep their field
// order all the way down.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	om := orderedmap.New[string, jsonValue]()
	if err := json.Unmarshal(data, om); err != nil {
		return err
	}
	m.fields = orderedmap.New[string, Value](om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		m.fields.Set(pair.Key, pair.Value.v)
	}
	return nil
}

// MarshalJSON writes fields in insertion order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var err error
	m.Each(func(k string, v Value) {
		if err != nil {
			return
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		var kb, vb []byte
		if kb, err = encodeJSON(k); err != nil {
			return
		}
		if vb, err = encodeJSON(v); err != nil {
			return
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the scalar, falling back to its textual form when the
// underlying type cannot be encoded.
func (s Scalar) MarshalJSON() ([]byte, error) {
	b, err := encodeJSON(s.V)
	if err != nil {
		return encodeJSON(fmt.Sprint(s.V))
	}
	return b, nil
}

// Decode parses a JSON document into a Value, preserving key order.
func Decode(data []byte) (Value, error) {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return nil, err
	}
	return jv.v, nil
}

// jsonValue lets encoding/json and the ordered map decode into the variant.
type jsonValue struct {
	v Value
}

func (j *jsonValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		j.v = Null
		return nil
	}
	switch trimmed[0] {
	case '{':
		m := NewMapping()
		if err := m.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		j.v = m
	case '[':
		var items []jsonValue
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		seq := make(Sequence, len(items))
		for i, item := range items {
			seq[i] = item.v
		}
		j.v = seq
	default:
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var scalar interface{}
		if err := dec.Decode(&scalar); err != nil {
			return err
		}
		j.v = Scalar{V: scalar}
	}
	return nil
}

// encodeJSON marshals without HTML escaping and without the trailing newline.
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Text returns the textual representation used by the text renderer.
// Nested values are rendered as compact JSON.
func Text(v Value) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case Scalar:
		switch s := t.V.(type) {
		case nil:
			return "null"
		case string:
			return s
		case fmt.Stringer:
			return s.String()
		default:
			return fmt.Sprint(s)
		}
	case *Mapping, Sequence:
		b, err := encodeJSON(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}

// textLen is the length of a value's textual representation in characters.
func textLen(v Value) int {
	return utf8.RuneCountInString(Text(v))
}

// isInternal reports whether a field name is private to the producer.
func isInternal(key string) bool {
	return strings.HasPrefix(key, "_")
}
