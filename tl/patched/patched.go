// Package patched carries constructor overrides that extend the plain
// schema structs with client-side behaviour. An override keeps the short
// name of the constructor it replaces, so its fully-qualified identifier
// is the only thing telling the two apart — which is exactly why the codec
// tags serialized objects with full identifiers.
package patched

import (
	"github.com/telegram-toys/tljson/tl"
	"github.com/telegram-toys/tljson/tl/types"
)

// Message is the client-side message override. Its wire layout is the
// schema Message layout unchanged; the embedded struct is flattened when
// the field set is derived.
type Message struct {
	types.Message
}

func (*Message) TLName() string { return "Message" }

// Catalog returns the override prototypes. These are not reachable through
// the central catalog and must be handed to the codec as a second source.
func Catalog() []tl.Object {
	return []tl.Object{
		(*Message)(nil),
	}
}
