package beacon

import (
	"iter"
	"strings"
)

// MetaFields is the ordered table of meta fields read from a BEACON header.
// Names are canonical uppercase; the first assignment of a name wins.
// The zero value is an empty table ready for use.
type MetaFields struct {
	names  []string
	values map[string]string
}

// NewMetaFields builds a table from alternating name/value arguments.
// A trailing name without a value is ignored.
//
// Example:
//
//	meta := beacon.NewMetaFields("PREFIX", "http://example.org/", "TARGET", "http://example.com/")
func NewMetaFields(pairs ...string) *MetaFields {
	m := &MetaFields{}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// Set records value under the canonical form of name. It returns false and
// leaves the table unchanged if the name is already present.
func (m *MetaFields) Set(name, value string) bool {
	name = strings.ToUpper(name)
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, exists := m.values[name]; exists {
		return false
	}
	m.values[name] = value
	m.names = append(m.names, name)
	return true
}

// Get returns the value of a field and whether it was present.
func (m *MetaFields) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[strings.ToUpper(name)]
	return v, ok
}

// GetOrDefault returns the value of a field, or def when it is absent.
func (m *MetaFields) GetOrDefault(name, def string) string {
	if v, ok := m.Get(name); ok {
		return v
	}
	return def
}

// Has reports whether the field is present.
func (m *MetaFields) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Len returns the number of fields.
func (m *MetaFields) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns the field names in the order they were first assigned.
func (m *MetaFields) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// All iterates over the fields in insertion order.
func (m *MetaFields) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, name := range m.names {
			if !yield(name, m.values[name]) {
				return
			}
		}
	}
}

// Map returns a copy of the fields as a plain map.
func (m *MetaFields) Map() map[string]string {
	out := make(map[string]string, m.Len())
	for name, value := range m.All() {
		out[name] = value
	}
	return out
}
