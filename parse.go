// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// parse.go — JSON text parser producing the ordered native tree the value
// transform consumes. Objects parse into insertion-ordered mappings; the
// scalar codec's decode hook runs on every object as it completes, so
// nested timestamps and byte sequences resolve before their containers.

package tljson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/telegram-toys/tljson/tl"
)

// parseDocument parses one JSON document. Numbers without a fraction or
// exponent become int64, all others float64.
func parseDocument(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("tljson: parse: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("tljson: parse: trailing data after document")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		return parseNumber(t)
	case string, bool, nil:
		return t, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func parseNumber(n json.Number) (any, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		i, err := n.Int64()
		if err == nil {
			return i, nil
		}
		// Magnitude beyond int64: fall through to float.
	}
	return n.Float64()
}

// parseObject consumes tokens up to the matching '}' and applies the
// scalar-codec decode hook to the completed mapping. Children have been
// hooked already by the time the parent completes, which gives the
// bottom-up ordering the wire format requires.
func parseObject(dec *json.Decoder) (any, error) {
	m, err := parseMapping(dec)
	if err != nil {
		return nil, err
	}
	return scalarDecode(m)
}

func parseMapping(dec *json.Decoder) (*tl.Mapping, error) {
	m := tl.NewMapping()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return m, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, not a string", tok)
		}
		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
}

func parseArray(dec *json.Decoder) ([]any, error) {
	out := []any{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return out, nil
		}
		v, err := parseToken(dec, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}
