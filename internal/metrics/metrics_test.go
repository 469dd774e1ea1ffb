package metrics_test

import (
	"testing"
	"time"

	"github.com/telegram-toys/tljson/internal/metrics"
)

func TestNoopImplementsRecorder(t *testing.T) {
	var r metrics.Recorder = metrics.Noop{}
	r.RecordEncode("types.Message", time.Millisecond)
	r.RecordDecode("types.Message", time.Millisecond)
	r.RecordError("encode")
	r.RecordRegistered(17)
	r.RecordArchive("redis", "put", time.Millisecond)
}
