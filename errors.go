// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// errors.go — sentinel error variables returned by the public tljson API,
// covering initialization order, registry lookups, tag consistency,
// serialization, deserialization, object construction, and the archive.

// Package tljson serializes TL protocol objects to self-describing JSON
// text and reconstructs the exact typed object graph from that text. Every
// typed object renders as a JSON object whose "_" field carries the
// fully-qualified type identifier, so a round trip needs no out-of-band
// schema knowledge beyond the registered type universe.
package tljson

import "errors"

// Initialization state errors
var (
	ErrAlreadyInitialized = errors.New("tljson: already initialized")
	ErrNotInitialized     = errors.New("tljson: not initialized; call Initialize first")
)

// Registry errors
var (
	ErrUnknownType = errors.New("tljson: unknown type identifier")
	ErrTagMismatch = errors.New("tljson: native tag disagrees with type name")
	ErrNotObject   = errors.New("tljson: type does not implement tl.Object")
)

// Serialization errors
var (
	ErrNotSerializable = errors.New("tljson: value is not serializable")
)

// Deserialization errors
var (
	ErrBadTagValue     = errors.New("tljson: reserved tag key must hold a string")
	ErrNotTLObject     = errors.New("tljson: decoded top-level value is not a TL object")
	ErrUnsupportedKind = errors.New("tljson: unsupported value kind")
	ErrConstruct       = errors.New("tljson: object construction failed")
)

// Archive errors
var (
	ErrArchiveMiss = errors.New("tljson: dump not found in archive")
	ErrNoBackend   = errors.New("tljson: archive has no configured backend")
)
