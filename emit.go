// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// emit.go — JSON text emitter for the tagged-mapping tree: ordered object
// keys, optional ASCII-only escaping, optional pretty-printing, integer and
// float renderings that survive a round trip, and the scalar-codec fallback
// for timestamps and byte sequences.

package tljson

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/telegram-toys/tljson/tl"
)

// emitter writes a canonical value tree as JSON text.
type emitter struct {
	sb        strings.Builder
	asciiOnly bool
	indent    int
}

func (e *emitter) emit(v any) (string, error) {
	if err := e.value(v, 0); err != nil {
		return "", err
	}
	return e.sb.String(), nil
}

func (e *emitter) value(v any, depth int) error {
	switch t := v.(type) {
	case nil:
		e.sb.WriteString("null")
	case bool:
		if t {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}
	case int64:
		e.sb.WriteString(strconv.FormatInt(t, 10))
	case float64:
		return e.float(t)
	case string:
		e.str(t)
	case []any:
		return e.array(t, depth)
	case *tl.Mapping:
		return e.object(t, depth)
	default:
		return e.fallback(v, depth)
	}
	return nil
}

// float renders f so that the scalar kind survives the round trip: the
// text always carries a decimal point or an exponent, never a bare
// integer literal.
func (e *emitter) float(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: float %v", ErrNotSerializable, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	e.sb.WriteString(s)
	return nil
}

func (e *emitter) array(seq []any, depth int) error {
	if len(seq) == 0 {
		e.sb.WriteString("[]")
		return nil
	}
	e.sb.WriteByte('[')
	for i, el := range seq {
		if i > 0 {
			e.sb.WriteByte(',')
		}
		e.newlineIndent(depth + 1)
		if err := e.value(el, depth+1); err != nil {
			return err
		}
	}
	e.newlineIndent(depth)
	e.sb.WriteByte(']')
	return nil
}

func (e *emitter) object(m *tl.Mapping, depth int) error {
	if m.Len() == 0 {
		e.sb.WriteString("{}")
		return nil
	}
	e.sb.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			e.sb.WriteByte(',')
		}
		e.newlineIndent(depth + 1)
		e.str(k)
		e.sb.WriteByte(':')
		if e.indent > 0 {
			e.sb.WriteByte(' ')
		}
		v, _ := m.Get(k)
		if err := e.value(v, depth+1); err != nil {
			return err
		}
	}
	e.newlineIndent(depth)
	e.sb.WriteByte('}')
	return nil
}

// fallback handles leaves the generic encoder has no native JSON form for.
// Numeric widths normalize first; everything else goes through the scalar
// codec, which rejects unsupported kinds.
func (e *emitter) fallback(v any, depth int) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.value(rv.Int(), depth)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return e.value(int64(rv.Uint()), depth)
	case reflect.Float32, reflect.Float64:
		return e.float(rv.Float())
	}
	m, err := scalarEncode(v)
	if err != nil {
		return err
	}
	return e.object(m, depth)
}

func (e *emitter) newlineIndent(depth int) {
	if e.indent <= 0 {
		return
	}
	e.sb.WriteByte('\n')
	for i := 0; i < depth*e.indent; i++ {
		e.sb.WriteByte(' ')
	}
}

// str writes a JSON string literal. Control characters, quotes, and
// backslashes always escape; with asciiOnly every rune above 0x7F escapes
// as \uXXXX, using surrogate pairs beyond the basic plane.
func (e *emitter) str(s string) {
	e.sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			e.sb.WriteString(`\"`)
		case '\\':
			e.sb.WriteString(`\\`)
		case '\n':
			e.sb.WriteString(`\n`)
		case '\r':
			e.sb.WriteString(`\r`)
		case '\t':
			e.sb.WriteString(`\t`)
		case '\b':
			e.sb.WriteString(`\b`)
		case '\f':
			e.sb.WriteString(`\f`)
		default:
			switch {
			case r < 0x20:
				fmt.Fprintf(&e.sb, `\u%04x`, r)
			case r > 0x7f && e.asciiOnly:
				if r > 0xffff {
					hi, lo := utf16.EncodeRune(r)
					fmt.Fprintf(&e.sb, `\u%04x\u%04x`, hi, lo)
				} else {
					fmt.Fprintf(&e.sb, `\u%04x`, r)
				}
			default:
				e.sb.WriteRune(r)
			}
		}
	}
	e.sb.WriteByte('"')
}
