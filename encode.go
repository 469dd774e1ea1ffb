package tljson

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/telegram-toys/tljson/tl"
)

// EncodeOptions controls the textual rendering of an encoded object.
type EncodeOptions struct {
	// ASCIIOnly escapes every non-ASCII character as \uXXXX.
	ASCIIOnly bool
	// Indent pretty-prints with that many spaces per level; 0 emits
	// compact output.
	Indent int
}

// Encode serializes obj to JSON text. The object's wrapped description is
// taken through the value transform into an ordered tagged-mapping tree,
// then rendered by the emitter; timestamps and byte sequences render
// through the scalar codec. Fails with ErrNotInitialized before
// Initialize, and with ErrUnknownType if obj or any nested object has a
// type outside the registry.
func (c *Codec) Encode(obj tl.Object, opts EncodeOptions) (string, error) {
	if !c.registry.isInitialized() {
		return "", ErrNotInitialized
	}
	start := time.Now()
	tree, err := c.describeValue(obj)
	if err != nil {
		c.metrics.RecordError("encode")
		return "", err
	}
	e := &emitter{asciiOnly: opts.ASCIIOnly, indent: opts.Indent}
	out, err := e.emit(tree)
	if err != nil {
		c.metrics.RecordError("encode")
		return "", err
	}
	c.metrics.RecordEncode(TypeID(obj), time.Since(start))
	return out, nil
}

// describeValue recursively transforms v into the canonical tagged-mapping
// tree: objects become mappings tagged with their full identifier via the
// wrapped describe, sequences recurse element-wise, numeric widths
// normalize, and leaf kinds pass through for the emitter to render.
func (c *Codec) describeValue(v any) (any, error) {
	switch t := v.(type) {
	case nil, bool, string, int64, float64, time.Time:
		return t, nil
	case []byte:
		return t, nil
	case tl.Object:
		entry, err := c.registry.lookupObject(t)
		if err != nil {
			return nil, err
		}
		m, err := entry.describe(t)
		if err != nil {
			return nil, err
		}
		return c.describeMapping(m)
	case *tl.Mapping:
		return c.describeMapping(t)
	case map[string]any:
		// Plain dictionaries have no inherent order; sort the keys so the
		// encoded text is deterministic.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := tl.NewMapping()
		for _, k := range keys {
			m.Set(k, t[k])
		}
		return c.describeMapping(m)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, nil
		}
		return c.describeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el, err := c.describeValue(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = el
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotSerializable, v)
}

// describeMapping recurses into every value of m except the reserved tag.
func (c *Codec) describeMapping(m *tl.Mapping) (*tl.Mapping, error) {
	out := tl.NewMapping()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		if k == tl.TagKey {
			out.Set(k, v)
			continue
		}
		dv, err := c.describeValue(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out.Set(k, dv)
	}
	return out, nil
}
