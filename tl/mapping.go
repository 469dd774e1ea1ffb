package tl

import (
	"bytes"
	"reflect"
	"time"
)

// Mapping is a string-keyed mapping that preserves insertion order. It is
// the in-memory form of a tagged mapping: object descriptions, decoded JSON
// objects, and plain dictionary values all flow through it.
type Mapping struct {
	keys []string
	vals map[string]any
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{vals: make(map[string]any)}
}

// Set stores v under key, appending the key on first insertion. Setting an
// existing key replaces its value in place without changing its position.
func (m *Mapping) Set(key string, v any) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (any, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Delete removes key and its value, preserving the order of the rest.
func (m *Mapping) Delete(key string) {
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Pop removes key and returns its previous value.
func (m *Mapping) Pop(key string) (any, bool) {
	v, ok := m.vals[key]
	if ok {
		m.Delete(key)
	}
	return v, ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not mutate it.
func (m *Mapping) Keys() []string { return m.keys }

// Equal reports deep value equality with other. Key order is ignored:
// two mappings holding the same key set with equal values are equal even
// if the keys were inserted in different orders.
func (m *Mapping) Equal(other *Mapping) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for k, v := range m.vals {
		ov, ok := other.vals[k]
		if !ok || !ValueEqual(v, ov) {
			return false
		}
	}
	return true
}

// ValueEqual compares two values of the supported kinds: nil, bool,
// integers, floats, strings, byte slices, timestamps, sequences, and
// nested mappings. Timestamps compare by instant and UTC offset, so a
// round trip through an encoding that preserves the offset but not the
// zone name still compares equal.
func ValueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Mapping:
		bv, ok := b.(*Mapping)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !ValueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytes.Equal(av, bv)
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok || !av.Equal(bv) {
			return false
		}
		_, aoff := av.Zone()
		_, boff := bv.Zone()
		return aoff == boff
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	if ai, ok := asInt64(a); ok {
		bi, bok := asInt64(b)
		return bok && ai == bi
	}
	if af, ok := asFloat64(a); ok {
		bf, bok := asFloat64(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func asInt64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
