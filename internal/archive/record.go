// Package archive provides the dump storage backends: Redis for hot
// recall and PostgreSQL for durable history. Both store the same Record
// envelope; the Redis representation is framed by a pluggable record
// codec, MessagePack by default.
package archive

import "time"

// Record is the stored envelope around one encoded dump.
type Record struct {
	Key      string    `json:"key" msgpack:"key"`
	TypeID   string    `json:"type_id" msgpack:"type_id"`
	Dump     string    `json:"dump" msgpack:"dump"`
	StoredAt time.Time `json:"stored_at" msgpack:"stored_at"`
}
