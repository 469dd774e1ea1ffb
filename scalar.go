// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// scalar.go — leaf-value encode/decode rules for the two value kinds JSON
// has no native form for: timestamps become {"_isoformat": ...} and byte
// sequences become {"_base64": true, "encoded": ...} with the base64 text
// newline-wrapped every 76 characters.

package tljson

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/telegram-toys/tljson/tl"
)

const (
	isoKey        = "_isoformat"
	base64Key     = "_base64"
	base64Payload = "encoded"
)

// base64LineLength matches the MIME wrapping the original wire format uses.
const base64LineLength = 76

// scalarEncode converts a leaf value the JSON emitter cannot natively
// represent into its one-mapping wire form. It is invoked as a fallback
// only; natively representable kinds never reach it.
func scalarEncode(v any) (*tl.Mapping, error) {
	switch t := v.(type) {
	case time.Time:
		m := tl.NewMapping()
		m.Set(isoKey, isoFormat(t))
		return m, nil
	case []byte:
		m := tl.NewMapping()
		m.Set(base64Key, true)
		m.Set(base64Payload, encodeBase64Wrapped(t))
		return m, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotSerializable, v)
}

// scalarDecode inspects a completed JSON object bottom-up: a mapping with
// an _isoformat key becomes a timestamp, a mapping with a _base64 key
// becomes a byte sequence, and anything else passes through unchanged for
// the value transform to interpret.
func scalarDecode(m *tl.Mapping) (any, error) {
	if raw, ok := m.Get(isoKey); ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s holds %T", ErrUnsupportedKind, isoKey, raw)
		}
		t, err := parseISO(s)
		if err != nil {
			return nil, fmt.Errorf("tljson: invalid %s value %q: %w", isoKey, s, err)
		}
		return t, nil
	}
	if raw, ok := m.Get(base64Key); ok && raw != nil {
		payload, _ := m.Get(base64Payload)
		s, ok := payload.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s holds %T", ErrUnsupportedKind, base64Payload, payload)
		}
		b, err := decodeBase64Wrapped(s)
		if err != nil {
			return nil, fmt.Errorf("tljson: invalid %s value: %w", base64Payload, err)
		}
		return b, nil
	}
	return m, nil
}

// isoFormat renders t as ISO-8601 with an explicit UTC offset. Microsecond
// precision is emitted only when the timestamp carries sub-second detail,
// matching the upstream wire format.
func isoFormat(t time.Time) string {
	if t.Nanosecond() == 0 {
		return t.Format("2006-01-02T15:04:05-07:00")
	}
	return t.Format("2006-01-02T15:04:05.000000-07:00")
}

// parseISO accepts ISO-8601 timestamps with or without an explicit offset;
// offset-less values are taken as UTC.
func parseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05.999999999", s)
}

// encodeBase64Wrapped produces standard base64 broken into 76-character
// lines, each line terminated by a newline. The empty sequence encodes to
// the empty string.
func encodeBase64Wrapped(b []byte) string {
	enc := base64.StdEncoding.EncodeToString(b)
	if enc == "" {
		return ""
	}
	var sb strings.Builder
	for len(enc) > base64LineLength {
		sb.WriteString(enc[:base64LineLength])
		sb.WriteByte('\n')
		enc = enc[base64LineLength:]
	}
	sb.WriteString(enc)
	sb.WriteByte('\n')
	return sb.String()
}

// decodeBase64Wrapped decodes base64 text regardless of line wrapping.
func decodeBase64Wrapped(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
}
