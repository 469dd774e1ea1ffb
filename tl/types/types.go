// Package types holds the TL constructor structs of the schema layer this
// library ships with. The set mirrors the message surface of the Telegram
// TL schema: peers, messages, forward headers, photo media, entities, and
// reactions. Wire field names derive from the struct field names via
// snake_case; a `tl` tag overrides the derived name where the schema
// disagrees.
package types

import (
	"time"

	"github.com/telegram-toys/tljson/tl"
)

// PeerUser identifies a user peer.
type PeerUser struct {
	UserID int64
}

func (*PeerUser) TLName() string { return "PeerUser" }

// PeerChat identifies a basic group peer.
type PeerChat struct {
	ChatID int64
}

func (*PeerChat) TLName() string { return "PeerChat" }

// PeerChannel identifies a channel or supergroup peer.
type PeerChannel struct {
	ChannelID int64
}

func (*PeerChannel) TLName() string { return "PeerChannel" }

// Message is a channel or chat message with its full metadata surface.
type Message struct {
	ID                      int32
	PeerID                  tl.Object
	Date                    time.Time
	Message                 string
	Out                     bool
	Mentioned               bool
	MediaUnread             bool
	Silent                  bool
	Post                    bool
	FromScheduled           bool
	Legacy                  bool
	EditHide                bool
	Pinned                  bool
	Noforwards              bool
	InvertMedia             bool
	Offline                 bool
	VideoProcessingPending  bool
	PaidSuggestedPostStars  bool
	PaidSuggestedPostTon    bool
	FromID                  tl.Object
	FromBoostsApplied       *int32
	SavedPeerID             tl.Object
	FwdFrom                 *MessageFwdHeader
	ViaBotID                *int64
	ViaBusinessBotID        *int64
	ReplyTo                 tl.Object
	Media                   tl.Object
	ReplyMarkup             tl.Object
	Entities                []tl.Object
	Views                   *int32
	Forwards                *int32
	Replies                 *MessageReplies
	EditDate                *time.Time
	PostAuthor              *string
	GroupedID               *int64
	Reactions               *MessageReactions
	RestrictionReason       []tl.Object
	TTLPeriod               *int32
	QuickReplyShortcutID    *int32
	Effect                  *int64
	Factcheck               tl.Object
	ReportDeliveryUntilDate *time.Time
	PaidMessageStars        *int64
	SuggestedPost           tl.Object
}

func (*Message) TLName() string { return "Message" }

// MessageFwdHeader carries the provenance of a forwarded message.
type MessageFwdHeader struct {
	Imported       bool
	SavedOut       bool
	FromID         tl.Object
	FromName       *string
	Date           time.Time
	ChannelPost    *int32
	PostAuthor     *string
	SavedFromPeer  tl.Object
	SavedFromMsgID *int32
	SavedFromID    tl.Object
	SavedFromName  *string
	SavedDate      *time.Time
	PsaType        *string
}

func (*MessageFwdHeader) TLName() string { return "MessageFwdHeader" }

// MessageReplies holds the comment thread counters of a post.
type MessageReplies struct {
	Comments       bool
	Replies        int32
	RepliesPts     int32
	RecentRepliers []tl.Object
	ChannelID      *int64
	MaxID          *int32
	ReadMaxID      *int32
}

func (*MessageReplies) TLName() string { return "MessageReplies" }

// MessageMediaPhoto attaches a photo to a message.
type MessageMediaPhoto struct {
	Spoiler    bool
	Photo      tl.Object
	TTLSeconds *int32
}

func (*MessageMediaPhoto) TLName() string { return "MessageMediaPhoto" }

// Photo is a stored photo with its size variants.
type Photo struct {
	ID            int64
	AccessHash    int64
	FileReference []byte
	Date          time.Time
	Sizes         []tl.Object
	DCID          int32 `tl:"dc_id"`
	HasStickers   bool
	VideoSizes    []tl.Object
}

func (*Photo) TLName() string { return "Photo" }

// PhotoSize is a regular downloadable size variant.
type PhotoSize struct {
	Type string
	W    int32
	H    int32
	Size int32
}

func (*PhotoSize) TLName() string { return "PhotoSize" }

// PhotoStrippedSize is an inline low-resolution preview payload.
type PhotoStrippedSize struct {
	Type  string
	Bytes []byte
}

func (*PhotoStrippedSize) TLName() string { return "PhotoStrippedSize" }

// PhotoSizeProgressive is a progressively loadable size variant.
type PhotoSizeProgressive struct {
	Type  string
	W     int32
	H     int32
	Sizes []int32
}

func (*PhotoSizeProgressive) TLName() string { return "PhotoSizeProgressive" }

// MessageEntityMention marks an @mention span in the message text.
type MessageEntityMention struct {
	Offset int32
	Length int32
}

func (*MessageEntityMention) TLName() string { return "MessageEntityMention" }

// MessageEntityTextUrl marks a span linking to a URL.
type MessageEntityTextUrl struct {
	Offset int32
	Length int32
	URL    string
}

func (*MessageEntityTextUrl) TLName() string { return "MessageEntityTextUrl" }

// MessageReactions aggregates the reactions on a message.
type MessageReactions struct {
	Results         []tl.Object
	Min             bool
	CanSeeList      bool
	ReactionsAsTags bool
	RecentReactions []tl.Object
	TopReactors     []tl.Object
}

func (*MessageReactions) TLName() string { return "MessageReactions" }

// ReactionCount is the tally for one reaction kind.
type ReactionCount struct {
	Reaction    tl.Object
	Count       int32
	ChosenOrder *int32
}

func (*ReactionCount) TLName() string { return "ReactionCount" }

// ReactionEmoji is a reaction expressed as a single emoji.
type ReactionEmoji struct {
	Emoticon string
}

func (*ReactionEmoji) TLName() string { return "ReactionEmoji" }

// Catalog returns one prototype per constructor in this package. It is the
// central discovery source handed to the codec; the prototypes are typed
// nil pointers, only their types are consulted.
func Catalog() []tl.Object {
	return []tl.Object{
		(*PeerUser)(nil),
		(*PeerChat)(nil),
		(*PeerChannel)(nil),
		(*Message)(nil),
		(*MessageFwdHeader)(nil),
		(*MessageReplies)(nil),
		(*MessageMediaPhoto)(nil),
		(*Photo)(nil),
		(*PhotoSize)(nil),
		(*PhotoStrippedSize)(nil),
		(*PhotoSizeProgressive)(nil),
		(*MessageEntityMention)(nil),
		(*MessageEntityTextUrl)(nil),
		(*MessageReactions)(nil),
		(*ReactionCount)(nil),
		(*ReactionEmoji)(nil),
	}
}
