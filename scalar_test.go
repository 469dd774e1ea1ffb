package tljson_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telegram-toys/tljson"
	"github.com/telegram-toys/tljson/tl"
	"github.com/telegram-toys/tljson/tl/types"
)

func TestTimestamp_UTCRoundTrip(t *testing.T) {
	c := newCodec(t)
	orig := &types.Photo{
		Date:       time.Date(2025, 12, 1, 1, 2, 3, 0, time.UTC),
		Sizes:      []tl.Object{},
		VideoSizes: []tl.Object{},
	}

	dump, err := c.Encode(orig, tljson.EncodeOptions{})
	require.NoError(t, err)
	assert.Contains(t, dump, `{"_isoformat":"2025-12-01T01:02:03+00:00"}`)

	restored, err := c.Decode(dump)
	require.NoError(t, err)
	got := restored.(*types.Photo)
	assert.True(t, orig.Date.Equal(got.Date))
}

func TestTimestamp_OffsetPreserved(t *testing.T) {
	c := newCodec(t)
	zone := time.FixedZone("", 5*3600+1800) // +05:30
	orig := &types.Photo{
		Date:       time.Date(2025, 12, 1, 6, 32, 3, 0, zone),
		Sizes:      []tl.Object{},
		VideoSizes: []tl.Object{},
	}

	dump, err := c.Encode(orig, tljson.EncodeOptions{})
	require.NoError(t, err)
	assert.Contains(t, dump, "+05:30")

	restored, err := c.Decode(dump)
	require.NoError(t, err)
	got := restored.(*types.Photo)
	require.True(t, orig.Date.Equal(got.Date))
	_, wantOff := orig.Date.Zone()
	_, gotOff := got.Date.Zone()
	assert.Equal(t, wantOff, gotOff)
}

func TestTimestamp_Microseconds(t *testing.T) {
	c := newCodec(t)
	orig := &types.Photo{
		Date:       time.Date(2025, 12, 1, 1, 2, 3, 123456000, time.UTC),
		Sizes:      []tl.Object{},
		VideoSizes: []tl.Object{},
	}

	dump, err := c.Encode(orig, tljson.EncodeOptions{})
	require.NoError(t, err)
	assert.Contains(t, dump, "2025-12-01T01:02:03.123456+00:00")

	restored, err := c.Decode(dump)
	require.NoError(t, err)
	assert.True(t, orig.Date.Equal(restored.(*types.Photo).Date))
}

func bytesRoundTrip(t *testing.T, c *tljson.Codec, payload []byte) []byte {
	t.Helper()
	orig := &types.PhotoStrippedSize{Type: "i", Bytes: payload}
	dump, err := c.Encode(orig, tljson.EncodeOptions{})
	require.NoError(t, err)
	restored, err := c.Decode(dump)
	require.NoError(t, err)
	return restored.(*types.PhotoStrippedSize).Bytes
}

func TestBytes_RoundTrip(t *testing.T) {
	c := newCodec(t)

	t.Run("short", func(t *testing.T) {
		got := bytesRoundTrip(t, c, []byte{0x02, 0x40, 0xd5, 0xff})
		assert.Equal(t, []byte{0x02, 0x40, 0xd5, 0xff}, got)
	})

	t.Run("empty", func(t *testing.T) {
		got := bytesRoundTrip(t, c, []byte{})
		assert.Empty(t, got)
	})

	t.Run("all byte values", func(t *testing.T) {
		payload := make([]byte, 256)
		for i := range payload {
			payload[i] = byte(i)
		}
		got := bytesRoundTrip(t, c, payload)
		assert.Equal(t, payload, got)
	})
}

func TestBytes_Base64LineWrapping(t *testing.T) {
	c := newCodec(t)
	payload := make([]byte, 256)
	for i := range payload {
		payload[i] = byte(i)
	}
	dump, err := c.Encode(&types.PhotoStrippedSize{Type: "i", Bytes: payload}, tljson.EncodeOptions{})
	require.NoError(t, err)

	// The encoded payload is escaped inside a JSON string; every wrapped
	// line must be at most 76 characters.
	start := strings.Index(dump, `"encoded":"`)
	require.GreaterOrEqual(t, start, 0)
	raw := dump[start+len(`"encoded":"`):]
	raw = raw[:strings.Index(raw, `"`)]
	lines := strings.Split(raw, `\n`)
	require.Greater(t, len(lines), 1)
	for i, line := range lines {
		assert.LessOrEqual(t, len(line), 76, fmt.Sprintf("line %d", i))
	}
}
