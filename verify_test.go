package tljson_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telegram-toys/tljson"
	"github.com/telegram-toys/tljson/tl"
	"github.com/telegram-toys/tljson/tl/tltest"
	"github.com/telegram-toys/tljson/tl/types"
)

// captureLogger records every log line so tests can assert on the
// verifier's diagnostics.
type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) log(level, msg string, kv ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf("%s %s %v", level, msg, kv))
}

func (l *captureLogger) Debug(msg string, kv ...any) { l.log("debug", msg, kv...) }
func (l *captureLogger) Info(msg string, kv ...any)  { l.log("info", msg, kv...) }
func (l *captureLogger) Warn(msg string, kv ...any)  { l.log("warn", msg, kv...) }
func (l *captureLogger) Error(msg string, kv ...any) { l.log("error", msg, kv...) }

func (l *captureLogger) errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, line := range l.lines {
		if len(line) > 5 && line[:5] == "error" {
			out = append(out, line)
		}
	}
	return out
}

func newCapturingCodec(t *testing.T) (*tljson.Codec, *captureLogger) {
	t.Helper()
	log := &captureLogger{}
	c := tljson.New(tljson.Config{Logger: log})
	require.NoError(t, c.Initialize())
	return c, log
}

func TestCheckRoundTrip_SampleMessage(t *testing.T) {
	c, log := newCapturingCodec(t)
	assert.True(t, c.CheckRoundTrip(tltest.SampleMessage()))
	assert.Empty(t, log.errors())
}

func TestCheckRoundTrip_SmallObjects(t *testing.T) {
	c, _ := newCapturingCodec(t)
	for _, obj := range []tl.Object{
		&types.PeerUser{UserID: 1},
		&types.PeerChat{ChatID: 2},
		&types.ReactionEmoji{Emoticon: "👍"},
		&types.PhotoStrippedSize{Type: "i", Bytes: []byte{0x01, 0x02}},
	} {
		assert.True(t, c.CheckRoundTrip(obj), "%T", obj)
	}
}

type unregisteredObject struct {
	X int32
}

func (unregisteredObject) TLName() string { return "unregisteredObject" }

func TestCheckRoundTrip_UnregisteredTypeFailsQuietly(t *testing.T) {
	c, log := newCapturingCodec(t)
	assert.False(t, c.CheckRoundTrip(&unregisteredObject{X: 1}))
	require.NotEmpty(t, log.errors())
	assert.Contains(t, log.errors()[0], "encode failed")
}

func TestCheckRoundTrip_BeforeInitialize(t *testing.T) {
	log := &captureLogger{}
	c := tljson.New(tljson.Config{Logger: log})
	assert.False(t, c.CheckRoundTrip(&types.PeerUser{UserID: 1}))
	assert.NotEmpty(t, log.errors())
}
