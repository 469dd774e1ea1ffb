package tljson

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/telegram-toys/tljson/tl"
)

// TypeID returns the fully-qualified type identifier of obj: the Go package
// path and type name of its concrete type, e.g.
// "github.com/telegram-toys/tljson/tl/types.Message".
func TypeID(obj tl.Object) string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// ShortName returns the trailing short name of a type identifier.
func ShortName(typeID string) string {
	if i := strings.LastIndex(typeID, "."); i >= 0 {
		return typeID[i+1:]
	}
	return typeID
}

// typeEntry is the compiled registry entry for one constructible type:
// its identifiers, its Go struct type, and the wrapped describe operation
// that emits the full identifier in the reserved tag key.
type typeEntry struct {
	fullName  string
	shortName string
	goType    reflect.Type // struct type, not pointer
	describe  func(tl.Object) (*tl.Mapping, error)
}

// typeRegistry holds all registered type entries. It is populated once by
// Initialize and read-only afterwards; the mutex only guards against
// queries racing a still-running initialization.
type typeRegistry struct {
	mu          sync.RWMutex
	entries     map[string]*typeEntry
	shortIndex  map[string][]string
	initialized bool
	rewrapped   int // re-registrations of an already-known identifier
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{
		entries:    make(map[string]*typeEntry),
		shortIndex: make(map[string][]string),
	}
}

// wrap installs the tagging-adapter entry for the concrete type of proto.
// It returns true when a new entry was installed, false when the type was
// already wrapped (re-wrapping is a no-op) or had to be skipped.
//
// Skips are non-fatal: a type whose TLName disagrees with its Go type name
// would emit a tag the registry cannot resolve, so it is reported through
// the returned error and left unregistered.
func (r *typeRegistry) wrap(proto tl.Object) (bool, error) {
	t := reflect.TypeOf(proto)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false, fmt.Errorf("%w: %s", ErrNotObject, t)
	}
	full := t.PkgPath() + "." + t.Name()

	if proto.TLName() != t.Name() {
		return false, fmt.Errorf("%w: dump=%q, type=%q", ErrTagMismatch, proto.TLName(), t.Name())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[full]; exists {
		r.rewrapped++
		return false, nil
	}

	entry := &typeEntry{
		fullName:  full,
		shortName: t.Name(),
		goType:    t,
	}
	entry.describe = func(obj tl.Object) (*tl.Mapping, error) {
		m, err := tl.Describe(obj)
		if err != nil {
			return nil, err
		}
		tag, _ := m.Get(tl.TagKey)
		if tag != entry.shortName {
			return nil, fmt.Errorf("%w: dump=%v, type=%q", ErrTagMismatch, tag, entry.shortName)
		}
		m.Set(tl.TagKey, entry.fullName)
		return m, nil
	}

	r.entries[full] = entry
	r.shortIndex[entry.shortName] = append(r.shortIndex[entry.shortName], full)
	return true, nil
}

// lookup resolves a full type identifier to its entry.
func (r *typeRegistry) lookup(full string) (*typeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.initialized {
		return nil, ErrNotInitialized
	}
	e, ok := r.entries[full]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, full)
	}
	return e, nil
}

// lookupObject resolves the entry for the concrete type of obj.
func (r *typeRegistry) lookupObject(obj tl.Object) (*typeEntry, error) {
	return r.lookup(TypeID(obj))
}

func (r *typeRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// duplicateShortNames groups registered identifiers whose short names
// collide. Only groups with two or more members are returned; both the
// group list and each group's identifiers are sorted.
func (r *typeRegistry) duplicateShortNames() (map[string][]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.initialized {
		return nil, ErrNotInitialized
	}
	out := make(map[string][]string)
	for short, fulls := range r.shortIndex {
		if len(fulls) < 2 {
			continue
		}
		group := append([]string(nil), fulls...)
		sort.Strings(group)
		out[short] = group
	}
	return out, nil
}

// rewrapCount reports how many registrations hit an already-known
// identifier and were skipped as no-ops.
func (r *typeRegistry) rewrapCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rewrapped
}

func (r *typeRegistry) markInitialized() {
	r.mu.Lock()
	r.initialized = true
	r.mu.Unlock()
}

func (r *typeRegistry) isInitialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.initialized
}
