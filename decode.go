package tljson

import (
	"fmt"
	"time"

	"github.com/telegram-toys/tljson/tl"
)

// Decode parses JSON text and reconstructs the typed object it describes.
// The top-level value must be a tagged mapping naming a registered type;
// decoding a bare scalar, sequence, or untagged mapping at top level fails
// with ErrNotTLObject. Fails with ErrNotInitialized before Initialize.
func (c *Codec) Decode(text string) (tl.Object, error) {
	if !c.registry.isInitialized() {
		return nil, ErrNotInitialized
	}
	start := time.Now()
	raw, err := parseDocument(text)
	if err != nil {
		c.metrics.RecordError("decode")
		return nil, err
	}
	v, err := c.restore(raw)
	if err != nil {
		c.metrics.RecordError("decode")
		return nil, err
	}
	obj, ok := v.(tl.Object)
	if !ok {
		c.metrics.RecordError("decode")
		return nil, fmt.Errorf("%w: got %T", ErrNotTLObject, v)
	}
	c.metrics.RecordDecode(TypeID(obj), time.Since(start))
	return obj, nil
}

// restore recursively rebuilds typed values from the parsed tree. Scalars
// pass through; sequences recurse element-wise preserving order; mappings
// recurse into every value first, then the reserved tag key decides
// whether the mapping stays a plain dictionary or constructs a registered
// type from its remaining fields.
func (c *Codec) restore(v any) (any, error) {
	switch t := v.(type) {
	case nil, bool, int64, float64, string, []byte, time.Time:
		return t, nil
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			rv, err := c.restore(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = rv
		}
		return out, nil
	case *tl.Mapping:
		return c.restoreMapping(t)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedKind, v)
}

func (c *Codec) restoreMapping(m *tl.Mapping) (any, error) {
	out := tl.NewMapping()
	for _, k := range m.Keys() {
		raw, _ := m.Get(k)
		rv, err := c.restore(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out.Set(k, rv)
	}
	tag, ok := out.Pop(tl.TagKey)
	if !ok {
		return out, nil
	}
	id, ok := tag.(string)
	if !ok {
		return nil, fmt.Errorf("%w: got %T (%v)", ErrBadTagValue, tag, tag)
	}
	entry, err := c.registry.lookup(id)
	if err != nil {
		return nil, err
	}
	obj, err := tl.Construct(entry.goType, out)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConstruct, id, err)
	}
	return obj, nil
}
