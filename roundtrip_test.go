package tljson_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telegram-toys/tljson"
	"github.com/telegram-toys/tljson/tl/patched"
	"github.com/telegram-toys/tljson/tl/tltest"
	"github.com/telegram-toys/tljson/tl/types"
)

func TestRoundTrip_SampleMessage(t *testing.T) {
	c := newCodec(t)
	msg := tltest.SampleMessage()

	dump, err := c.Encode(msg, tljson.EncodeOptions{})
	require.NoError(t, err)

	restored, err := c.Decode(dump)
	require.NoError(t, err)
	require.IsType(t, msg, restored)

	dump2, err := c.Encode(restored, tljson.EncodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, dump, dump2)
	assert.True(t, c.CheckRoundTrip(msg))
}

func TestRoundTrip_TagIsFullIdentifier(t *testing.T) {
	c := newCodec(t)
	dump, err := c.Encode(tltest.SampleMessage(), tljson.EncodeOptions{})
	require.NoError(t, err)

	assert.Contains(t, dump, `"_":"github.com/telegram-toys/tljson/tl/patched.Message"`)
	assert.Contains(t, dump, `"_":"github.com/telegram-toys/tljson/tl/types.PeerChannel"`)
	// Bare short names never appear as tag values.
	assert.NotContains(t, dump, `"_":"Message"`)
}

func TestRoundTrip_FieldOrderIsDeclarationOrder(t *testing.T) {
	c := newCodec(t)
	dump, err := c.Encode(&types.PhotoSize{Type: "m", W: 1, H: 2, Size: 3}, tljson.EncodeOptions{})
	require.NoError(t, err)

	// The tag comes first, then the fields in struct declaration order.
	wantOrder := []string{`"_"`, `"type"`, `"w"`, `"h"`, `"size"`}
	last := -1
	for _, k := range wantOrder {
		i := strings.Index(dump, k)
		require.Greater(t, i, last, "key %s out of order in %s", k, dump)
		last = i
	}
}

func TestRoundTrip_NilsBecomeNulls(t *testing.T) {
	c := newCodec(t)
	msg := &types.MessageFwdHeader{Date: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)}

	dump, err := c.Encode(msg, tljson.EncodeOptions{})
	require.NoError(t, err)
	assert.Contains(t, dump, `"from_id":null`)

	restored, err := c.Decode(dump)
	require.NoError(t, err)
	got, ok := restored.(*types.MessageFwdHeader)
	require.True(t, ok)
	assert.Nil(t, got.FromID)
	assert.Nil(t, got.PostAuthor)
	assert.True(t, msg.Date.Equal(got.Date))
}

func TestRoundTrip_EmptySliceStaysEmpty(t *testing.T) {
	c := newCodec(t)
	msg := tltest.SampleMessage()

	dump, err := c.Encode(msg, tljson.EncodeOptions{})
	require.NoError(t, err)
	assert.Contains(t, dump, `"restriction_reason":[]`)

	restored, err := c.Decode(dump)
	require.NoError(t, err)
	got := restored.(interface{ TLName() string })
	assert.Equal(t, "Message", got.TLName())
}

func TestRoundTrip_NestedObjectsKeepTypes(t *testing.T) {
	c := newCodec(t)
	msg := tltest.SampleMessage()

	dump, err := c.Encode(msg, tljson.EncodeOptions{})
	require.NoError(t, err)
	restored, err := c.Decode(dump)
	require.NoError(t, err)

	got, ok := restored.(*patched.Message)
	require.True(t, ok, "got %T", restored)
	assert.IsType(t, &types.PeerChannel{}, got.PeerID)
	require.IsType(t, &types.MessageMediaPhoto{}, got.Media)
	media := got.Media.(*types.MessageMediaPhoto)
	require.IsType(t, &types.Photo{}, media.Photo)
	photo := media.Photo.(*types.Photo)
	require.Len(t, photo.Sizes, 4)
	assert.IsType(t, &types.PhotoSizeProgressive{}, photo.Sizes[3])
	require.NotNil(t, got.Reactions)
	require.NotEmpty(t, got.Reactions.Results)
	first := got.Reactions.Results[0].(*types.ReactionCount)
	assert.IsType(t, &types.ReactionEmoji{}, first.Reaction)
}
