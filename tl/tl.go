// Package tl defines the TL protocol object model consumed by the tljson
// codec: the Object capability, the ordered Mapping every object describes
// itself into, and the reflection helpers that derive field layouts from
// struct tags.
package tl

// TagKey is the reserved mapping key that carries the type tag. In a native
// description it holds the constructor's short name; the codec rewrites it
// to the fully-qualified type identifier before serialization.
const TagKey = "_"

// Object is the base capability of every constructible TL type. Concrete
// types are struct pointers whose TLName returns the constructor's short
// name, e.g. "Message" or "PeerChannel".
type Object interface {
	TLName() string
}
