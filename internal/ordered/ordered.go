// Package ordered provides a string-keyed map that remembers
// insertion order.
package ordered

import (
	"bytes"
	"encoding/json"
)

// A Map is a string-keyed map whose keys are traversed in the order
// they were first inserted. Setting an existing key replaces its value
// in place. The zero value is an empty map ready to use.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// An Entry is a single key/value pair of a Map.
type Entry[V any] struct {
	Key   string
	Value V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return new(Map[V])
}

// Set stores v under key. A new key is appended after all existing
// keys; an existing key keeps its position.
func (m *Map[V]) Set(key string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys in the map.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the map keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Entries returns the key/value pairs in insertion order.
func (m *Map[V]) Entries() []Entry[V] {
	if m == nil {
		return nil
	}
	entries := make([]Entry[V], 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, Entry[V]{Key: k, Value: m.values[k]})
	}
	return entries
}

// Range calls fn on each entry in insertion order.
func (m *Map[V]) Range(fn func(key string, v V)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// MarshalJSON encodes the map as a JSON object with keys in insertion
// order. HTML characters are not escaped.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encode(&buf, m.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v interface{}) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
