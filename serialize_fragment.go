// serialize_fragment.go: Fragment and UUID per-type serializers (spec.md §4.8)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"github.com/agilira/gojson/internal/outbuf"
	"github.com/google/uuid"
)

// serializeFragment splices f verbatim into the output without
// validation, per spec.md §4.8's "Fragment" strategy: an invalid
// Fragment produces invalid output, by design.
func serializeFragment(w *outbuf.Writer, f Fragment) *EncodeError {
	if len(f) == 0 {
		return newEncodeError(ErrInvalidFragment, "fragment must not be empty")
	}
	w.Reserve(len(f))
	w.WriteReservedFragment(f)
	return nil
}

// serializeUUID writes u in canonical hyphenated hex form, spec.md
// §4.8's "UUID" strategy ("format as canonical hyphenated hex into a
// 36-byte inline buffer, write"). google/uuid's own String() already
// produces exactly that layout, so this is a thin adapter rather than a
// reimplementation of UUID-to-hex formatting.
func serializeUUID(w *outbuf.Writer, u uuid.UUID) *EncodeError {
	s := u.String()
	w.Reserve(len(s) + 2)
	w.WriteReservedPunctuation('"')
	w.WriteReservedFragment([]byte(s))
	w.WriteReservedPunctuation('"')
	return nil
}
