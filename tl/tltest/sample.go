// Package tltest provides shared TL object fixtures for tests and demos.
package tltest

import (
	"time"

	"github.com/telegram-toys/tljson/tl"
	"github.com/telegram-toys/tljson/tl/patched"
	"github.com/telegram-toys/tljson/tl/types"
)

func ptr[T any](v T) *T { return &v }

// SampleMessage builds a channel post exercising every supported value
// kind: nested objects, lists of objects, null optionals, byte payloads,
// offset-carrying timestamps, emoji text, and empty sequences.
func SampleMessage() *patched.Message {
	return &patched.Message{Message: types.Message{
		ID:       1001,
		PeerID:   &types.PeerChannel{ChannelID: 1002},
		Date:     time.Date(2025, 12, 1, 1, 2, 3, 0, time.UTC),
		Message:  "message",
		Post:     true,
		EditHide: true,
		FwdFrom: &types.MessageFwdHeader{
			Date:        time.Date(2025, 12, 1, 0, 1, 2, 0, time.UTC),
			FromID:      &types.PeerChannel{ChannelID: 1003},
			ChannelPost: ptr(int32(1004)),
		},
		Media: &types.MessageMediaPhoto{
			Photo: &types.Photo{
				ID:            1005,
				AccessHash:    1006,
				FileReference: []byte{0x02, 0x40, 0xd5, 0xff},
				Date:          time.Date(2025, 12, 1, 1, 2, 3, 0, time.UTC),
				Sizes: []tl.Object{
					&types.PhotoStrippedSize{
						Type:  "i",
						Bytes: []byte{0x01, 0x15, 0x28, 0x62, 0x38, 0x89},
					},
					&types.PhotoSize{Type: "m", W: 320, H: 100, Size: 1000},
					&types.PhotoSize{Type: "x", W: 800, H: 400, Size: 2000},
					&types.PhotoSizeProgressive{
						Type:  "y",
						W:     1080,
						H:     500,
						Sizes: []int32{10000, 20000, 40000, 50000, 70000},
					},
				},
				DCID:       100,
				VideoSizes: []tl.Object{},
			},
		},
		Entities: []tl.Object{
			// Offsets are not meant to line up with the text; they just
			// show entities on the message.
			&types.MessageEntityTextUrl{Offset: 1, Length: 9, URL: "URL"},
			&types.MessageEntityMention{Offset: 5, Length: 2},
		},
		Views:    ptr(int32(100)),
		Forwards: ptr(int32(10)),
		EditDate: ptr(time.Date(2025, 12, 1, 1, 2, 4, 0, time.UTC)),
		Reactions: &types.MessageReactions{
			Results: []tl.Object{
				&types.ReactionCount{Reaction: &types.ReactionEmoji{Emoticon: "🤔"}, Count: 1},
				&types.ReactionCount{Reaction: &types.ReactionEmoji{Emoticon: "❤"}, Count: 2},
				&types.ReactionCount{Reaction: &types.ReactionEmoji{Emoticon: "👍"}, Count: 3},
				&types.ReactionCount{Reaction: &types.ReactionEmoji{Emoticon: "😢"}, Count: 4},
				&types.ReactionCount{Reaction: &types.ReactionEmoji{Emoticon: "👎"}, Count: 5},
				&types.ReactionCount{Reaction: &types.ReactionEmoji{Emoticon: "🔥"}, Count: 6},
				&types.ReactionCount{Reaction: &types.ReactionEmoji{Emoticon: "🤬"}, Count: 7},
			},
			RecentReactions: []tl.Object{},
			TopReactors:     []tl.Object{},
		},
		RestrictionReason: []tl.Object{},
	}}
}
