package tljson

import (
	"fmt"
	"reflect"

	"github.com/telegram-toys/tljson/tl"
)

// CheckRoundTrip drives obj through one encode/decode cycle and reports
// whether the reconstruction is exact: same runtime type and a
// field-for-field equal description. Every failure, including a panic out
// of reflection, is logged together with the object's pretty form and
// converted into a false return; the verifier never propagates an error.
func (c *Codec) CheckRoundTrip(obj tl.Object) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("tljson: round-trip panic", "recovered", r, "object", c.stringify(obj))
			ok = false
		}
	}()

	dump, err := c.Encode(obj, EncodeOptions{ASCIIOnly: false})
	if err != nil {
		c.logger.Error("tljson: round-trip encode failed", "error", err, "object", c.stringify(obj))
		return false
	}
	restored, err := c.Decode(dump)
	if err != nil {
		c.logger.Error("tljson: round-trip decode failed", "error", err, "object", c.stringify(obj))
		return false
	}

	if reflect.TypeOf(restored) != reflect.TypeOf(obj) {
		c.logger.Error("tljson: round-trip type mismatch",
			"was", TypeID(obj), "restored", TypeID(restored))
		return false
	}

	origDesc, err := c.describeValue(obj)
	if err != nil {
		c.logger.Error("tljson: round-trip describe failed", "error", err, "object", c.stringify(obj))
		return false
	}
	restoredDesc, err := c.describeValue(restored)
	if err != nil {
		c.logger.Error("tljson: round-trip describe failed", "error", err, "object", c.stringify(restored))
		return false
	}
	if !tl.ValueEqual(origDesc, restoredDesc) {
		c.logger.Error("tljson: round-trip descriptions differ",
			"source", c.stringify(obj), "restored", c.stringify(restored))
		return false
	}

	c.logger.Info("tljson: round-trip ok", "id", TypeID(obj))
	return true
}

// stringify renders obj as indented JSON for diagnostics; when that itself
// fails the placeholder names the type so the log line stays useful.
func (c *Codec) stringify(obj tl.Object) string {
	s, err := c.Encode(obj, EncodeOptions{Indent: 2})
	if err != nil {
		return fmt.Sprintf("<%s: %v>", TypeID(obj), err)
	}
	return s
}
