// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// reflect.go — struct introspection for TL objects: FieldDef derivation from
// `tl` struct tags, embedded struct flattening, snake_case wire names, the
// shallow Describe used by the codec's tagging adapter, and the strict
// keyword Construct that rebuilds an object from a decoded field mapping.

package tl

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldDef describes one wire field of a TL struct.
type FieldDef struct {
	Name  string       // wire name: `tl` tag if set, else snake_case field name
	Index []int        // reflect index path (embedded structs flattened)
	Type  reflect.Type // declared Go field type
}

// objectType is the reflect.Type of the Object interface, used to validate
// candidate types during registration.
var objectType = reflect.TypeOf((*Object)(nil)).Elem()

// Implements reports whether t (a pointer-to-struct type) satisfies Object.
func Implements(t reflect.Type) bool {
	return t.Implements(objectType)
}

// FieldsOf derives the wire field layout of a struct type. Embedded
// anonymous structs are flattened into the outer layout, mirroring how a
// subclass inherits its parent's constructor arguments. Fields tagged
// `tl:"-"` are skipped.
func FieldsOf(t reflect.Type) ([]FieldDef, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("tl: %s is not a struct type", t)
	}
	var defs []FieldDef
	flattenFields(t, nil, &defs)
	return defs, nil
}

func flattenFields(t reflect.Type, prefix []int, defs *[]FieldDef) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			flattenFields(f.Type, idx, defs)
			continue
		}
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("tl")
		if tag == "-" {
			continue
		}
		name := tag
		if name == "" {
			name = ToSnakeCase(f.Name)
		}
		*defs = append(*defs, FieldDef{Name: name, Index: idx, Type: f.Type})
	}
}

// ToSnakeCase converts a CamelCase field name to its snake_case wire name.
// Runs of capitals collapse into one word, so "PeerID" becomes "peer_id"
// and "TTLSeconds" becomes "ttl_seconds".
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(r + 32)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Describe produces the native one-level tagged mapping of obj: the
// reserved tag key holding obj.TLName(), followed by every wire field in
// declaration order. Field values are left in their Go form; nil pointers
// and nil interfaces become explicit nulls. Nested objects stay as Object
// values for the caller to recurse into.
func Describe(obj Object) (*Mapping, error) {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("tl: cannot describe nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("tl: cannot describe non-struct %T", obj)
	}
	defs, err := FieldsOf(rv.Type())
	if err != nil {
		return nil, err
	}
	m := NewMapping()
	m.Set(TagKey, obj.TLName())
	for _, fd := range defs {
		fv := rv.FieldByIndex(fd.Index)
		switch fv.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
			// A nil field is an unset optional and describes as an
			// explicit null, distinct from an empty sequence.
			if fv.IsNil() {
				m.Set(fd.Name, nil)
				continue
			}
		}
		m.Set(fd.Name, fv.Interface())
	}
	return m, nil
}

// Construct builds a new instance of the struct type t from a field-name to
// value mapping. The field set must match exactly: a key with no matching
// wire field, or a wire field with no matching key, is an error. Returns
// the new instance as a pointer satisfying Object.
func Construct(t reflect.Type, fields *Mapping) (Object, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	defs, err := FieldsOf(t)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]FieldDef, len(defs))
	for _, fd := range defs {
		byName[fd.Name] = fd
	}
	for _, k := range fields.Keys() {
		if _, ok := byName[k]; !ok {
			return nil, fmt.Errorf("tl: %s has no field %q", t, k)
		}
	}
	pv := reflect.New(t)
	elem := pv.Elem()
	for _, fd := range defs {
		v, ok := fields.Get(fd.Name)
		if !ok {
			return nil, fmt.Errorf("tl: missing field %q for %s", fd.Name, t)
		}
		if err := assign(elem.FieldByIndex(fd.Index), v); err != nil {
			return nil, fmt.Errorf("tl: field %q of %s: %w", fd.Name, t, err)
		}
	}
	obj, ok := pv.Interface().(Object)
	if !ok {
		return nil, fmt.Errorf("tl: %s does not implement Object", pv.Type())
	}
	return obj, nil
}

// assign stores v into the struct field dst, coercing between the decoded
// JSON kinds and the declared field types: int64 into sized ints, []any
// into typed slices, scalars into optional pointer fields, and nil into
// any nilable or zeroable field.
func assign(dst reflect.Value, v any) error {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(dst.Type()) {
		dst.Set(rv)
		return nil
	}
	switch dst.Kind() {
	case reflect.Ptr:
		p := reflect.New(dst.Type().Elem())
		if err := assign(p.Elem(), v); err != nil {
			return err
		}
		dst.Set(p)
		return nil
	case reflect.Slice:
		seq, ok := v.([]any)
		if !ok {
			return fmt.Errorf("cannot assign %T to %s", v, dst.Type())
		}
		out := reflect.MakeSlice(dst.Type(), len(seq), len(seq))
		for i, el := range seq {
			if err := assign(out.Index(i), el); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		dst.Set(out)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, ok := asInt64(v); ok {
			if dst.OverflowInt(i) {
				return fmt.Errorf("value %d overflows %s", i, dst.Type())
			}
			dst.SetInt(i)
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i, ok := asInt64(v); ok && i >= 0 {
			if dst.OverflowUint(uint64(i)) {
				return fmt.Errorf("value %d overflows %s", i, dst.Type())
			}
			dst.SetUint(uint64(i))
			return nil
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := asFloat64(v); ok {
			dst.SetFloat(f)
			return nil
		}
		if i, ok := asInt64(v); ok {
			dst.SetFloat(float64(i))
			return nil
		}
	}
	return fmt.Errorf("cannot assign %T to %s", v, dst.Type())
}
