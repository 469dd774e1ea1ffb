package codec

import "github.com/vmihailenco/msgpack/v5"

// MsgPack is the default record codec using MessagePack encoding. It only
// ever frames archive records; the tagged-mapping wire format stays JSON.
type MsgPack struct{}

// Marshal serializes v to MessagePack bytes.
func (MsgPack) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal deserializes MessagePack bytes into v.
func (MsgPack) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Name returns "msgpack".
func (MsgPack) Name() string { return "msgpack" }

// Default is the default record codec instance.
var Default Codec = MsgPack{}
