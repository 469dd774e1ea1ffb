// Package metrics provides the Recorder interface and a noop implementation.
package metrics

import "time"

// Recorder is the interface for recording codec and archive metrics.
type Recorder interface {
	RecordEncode(typeID string, d time.Duration)
	RecordDecode(typeID string, d time.Duration)
	RecordError(op string)
	RecordRegistered(count int64)
	RecordArchive(backend, op string, d time.Duration)
}

// Noop is a Recorder that discards all data.
type Noop struct{}

func (Noop) RecordEncode(typeID string, d time.Duration)       {}
func (Noop) RecordDecode(typeID string, d time.Duration)       {}
func (Noop) RecordError(op string)                             {}
func (Noop) RecordRegistered(count int64)                      {}
func (Noop) RecordArchive(backend, op string, d time.Duration) {}
