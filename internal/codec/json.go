// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// json.go — JSON record codec wrapping encoding/json; used when archive
// values should stay human-readable in Redis or Postgres, e.g. while
// debugging payloads with redis-cli.

package codec

import "encoding/json"

// JSON is a record codec using standard library encoding/json.
type JSON struct{}

// Marshal serializes v to JSON bytes.
func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes JSON bytes into v.
func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns "json".
func (JSON) Name() string { return "json" }
