// keycache.go: bounded direct-mapped key cache (spec.md §4.2)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// keyCacheSlots is the table size, spec.md §3's "direct-mapped 2048-entry
// associative cache".
const keyCacheSlots = 2048

// keyCacheMaxLen is the longest key the cache will serve; spec.md §3:
// "Longer keys bypass the cache entirely."
const keyCacheMaxLen = 64

// keyCacheEntry is one slot: a precomputed hash and the cached string
// value. A Go string header already carries a pointer to its backing
// bytes, so "pointer equality of the handle" (spec.md's testable
// property 5) falls out of returning the same string value from the
// same slot without re-deriving it from the input bytes.
type keyCacheEntry struct {
	hash  uint64
	valid bool
	key   string
}

// keyCache is the process-wide decode-only cache. spec.md §5 frames it
// as "disabled under parallel threading" purely as an optimization
// remark for a GIL-based host; Go decoders run on arbitrary goroutines,
// so this cache is protected by a mutex instead of being single-threaded
// by construction, trading a little contention for correctness under
// concurrent Unmarshal calls.
var keyCache = newKeyCacheTable()

type keyCacheTable struct {
	mu      sync.Mutex
	entries [keyCacheSlots]keyCacheEntry
}

func newKeyCacheTable() *keyCacheTable {
	return &keyCacheTable{}
}

// get returns an interned string equal to the bytes in raw, reusing a
// cached allocation when raw matches (by hash and byte content) the
// entry already occupying its slot. Keys longer than keyCacheMaxLen
// bypass the cache and always allocate fresh, per spec.md §3.
func (t *keyCacheTable) get(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	if len(raw) > keyCacheMaxLen {
		return string(raw)
	}

	h := xxhash.Sum64(raw)
	slot := h % keyCacheSlots

	t.mu.Lock()
	defer t.mu.Unlock()

	e := &t.entries[slot]
	if e.valid && e.hash == h && e.key == string(raw) {
		return e.key
	}

	// Miss or collision: allocate a fresh string and evict the slot's
	// previous occupant, spec.md §4.2's "round-robin within a collision
	// class" realized trivially since there is exactly one slot per hash
	// bucket (no chaining), so "round-robin" degenerates to "replace".
	key := string(raw)
	*e = keyCacheEntry{hash: h, valid: true, key: key}
	return key
}

// internKey is the package-level entry point decode.go calls when
// materializing an object key.
func internKey(raw []byte) string {
	return keyCache.get(raw)
}
