package tljson

import (
	"sort"
	"sync"

	"github.com/telegram-toys/tljson/internal/clock"
	"github.com/telegram-toys/tljson/internal/metrics"
	"github.com/telegram-toys/tljson/tl"
	"github.com/telegram-toys/tljson/tl/patched"
	"github.com/telegram-toys/tljson/tl/types"
)

// Re-export types so callers only import this package.
type MetricsRecorder = metrics.Recorder
type Clock = clock.Clock

// ────────────────────────────────────────────────────────────────────────────
// Sources
// ────────────────────────────────────────────────────────────────────────────

// Source is one discovery source of constructible TL types. Sources are
// unioned during Initialize and deduplicated by full type identifier, since
// no single source is guaranteed complete.
type Source struct {
	// Name labels the source in the initialization summary log.
	Name string
	// Objects returns one prototype per constructible type. Prototypes may
	// be typed nil pointers; only their concrete types are consulted.
	Objects func() []tl.Object
}

// DefaultSources returns the discovery sources for the bundled type
// universe: the central constructor catalog plus the client-side overrides
// that are not reachable through it.
func DefaultSources() []Source {
	return []Source{
		{Name: "catalog", Objects: types.Catalog},
		{Name: "patched", Objects: patched.Catalog},
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Config
// ────────────────────────────────────────────────────────────────────────────

// Config contains all Codec configuration.
type Config struct {
	// Sources are the type discovery sources scanned by Initialize.
	// Nil means DefaultSources().
	Sources []Source

	// Optional overrideable components
	Logger  Logger
	Metrics metrics.Recorder
	Clock   clock.Clock
}

func (c *Config) defaults() {
	if c.Sources == nil {
		c.Sources = DefaultSources()
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
	if c.Clock == nil {
		c.Clock = clock.Real{}
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Codec
// ────────────────────────────────────────────────────────────────────────────

// Codec is the main entry-point of the tljson library. A Codec is inert
// until Initialize has scanned the type universe; afterwards Encode and
// Decode are independently re-entrant.
type Codec struct {
	cfg      Config
	registry *typeRegistry
	logger   Logger
	metrics  metrics.Recorder
	initMu   sync.Mutex
	initDone bool
}

// New creates a Codec from the provided Config. The registry stays empty
// until Initialize is called.
func New(cfg Config) *Codec {
	cfg.defaults()
	return &Codec{
		cfg:      cfg,
		registry: newTypeRegistry(),
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

// Initialize scans every configured source exactly once, wrapping each
// discovered type with the tagging adapter and installing it into the
// registry. A second call fails with ErrAlreadyInitialized. Types whose
// native tag disagrees with their type name are logged and skipped;
// initialization itself still succeeds.
func (c *Codec) Initialize() error {
	c.initMu.Lock()
	defer c.initMu.Unlock()
	if c.initDone {
		return ErrAlreadyInitialized
	}
	c.initDone = true

	total := 0
	for _, src := range c.cfg.Sources {
		wrapped := 0
		for _, proto := range src.Objects() {
			added, err := c.registry.wrap(proto)
			if err != nil {
				c.logger.Warn("tljson: skipping type", "source", src.Name, "error", err)
				continue
			}
			if added {
				c.logger.Debug("tljson: wrapped type", "id", TypeID(proto))
				wrapped++
			}
		}
		c.logger.Info("tljson: source scanned", "source", src.Name, "wrapped", wrapped)
		total += wrapped
	}
	c.registry.markInitialized()
	c.metrics.RecordRegistered(int64(total))
	c.logger.Info("tljson: initialized",
		"total_wrapped", total, "rewrapped", c.registry.rewrapCount(), "sources", len(c.cfg.Sources))
	return nil
}

// Initialized reports whether Initialize has completed.
func (c *Codec) Initialized() bool {
	return c.registry.isInitialized()
}

// RegisteredCount returns the number of registered types.
func (c *Codec) RegisteredCount() int {
	return c.registry.count()
}

// DuplicateShortNames groups the registered type identifiers that share a
// trailing short name. The native short tag alone is ambiguous for these
// types; only the full identifier distinguishes them.
func (c *Codec) DuplicateShortNames() (map[string][]string, error) {
	return c.registry.duplicateShortNames()
}

// ReportDuplicateShortNames logs each group of identifiers sharing a short
// name along with a total, mirroring the initialization summary style.
func (c *Codec) ReportDuplicateShortNames() error {
	groups, err := c.DuplicateShortNames()
	if err != nil {
		return err
	}
	shorts := make([]string, 0, len(groups))
	for short := range groups {
		shorts = append(shorts, short)
	}
	sort.Strings(shorts)
	for _, short := range shorts {
		c.logger.Info("tljson: duplicate short name",
			"short", short, "count", len(groups[short]), "ids", groups[short])
	}
	c.logger.Info("tljson: duplicate short names", "total", len(groups))
	return nil
}

// ────────────────────────────────────────────────────────────────────────────
// Package-level default codec
// ────────────────────────────────────────────────────────────────────────────

// std is the package-level default Codec backing the convenience wrappers.
var std = New(Config{})

// Initialize initializes the package-level default Codec.
func Initialize() error { return std.Initialize() }

// Encode serializes obj with the package-level default Codec.
func Encode(obj tl.Object, opts EncodeOptions) (string, error) { return std.Encode(obj, opts) }

// Decode reconstructs an object with the package-level default Codec.
func Decode(text string) (tl.Object, error) { return std.Decode(text) }

// CheckRoundTrip verifies obj with the package-level default Codec.
func CheckRoundTrip(obj tl.Object) bool { return std.CheckRoundTrip(obj) }
