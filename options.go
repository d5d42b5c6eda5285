// options.go: serialization/deserialization option bits for gojson
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import "strings"

// Option is a bitmask controlling Marshal/Unmarshal behavior. Zero value
// is compact output with default semantics for every switch below.
type Option uint32

const (
	// OptIndent2 pretty-prints with a 2-space indent instead of compact output.
	OptIndent2 Option = 1 << iota

	// OptNaiveUTC is retained for parity with spec.md's option table but
	// has no observable effect on time.Time: unlike the host runtime
	// spec.md describes, a Go time.Time always carries a Location and so
	// is never "naive". It still affects nothing about Date/ClockTime,
	// which carry no offset at all by construction.
	OptNaiveUTC

	// OptNonStrKeys permits non-string map keys by converting them through
	// the per-type key stringifier (see serialize_container.go).
	OptNonStrKeys

	// OptOmitMicroseconds drops the sub-second component from datetime/time output.
	OptOmitMicroseconds

	// OptSerializeNumpyLike routes fixed-element-type slices/arrays
	// through encodeNumericArray (gojson's analogue of orjson's numpy
	// adapter). Without it they go through the plain slice serializer;
	// the JSON output is the same either way.
	OptSerializeNumpyLike

	// OptSortKeys sorts object keys byte-lexicographically at every nesting level.
	OptSortKeys

	// OptStrictInteger rejects integers outside [-(2^53-1), 2^53-1].
	OptStrictInteger

	// OptUTCZ emits "Z" instead of "+00:00" for UTC offsets.
	OptUTCZ

	// OptPassthroughSubclass disables auto-serialization of named string
	// types (Go's structural equivalent of "subclasses of builtins"),
	// forcing the fallback callable to handle them. Named numeric, bool,
	// slice and map types are not affected and still serialize as their
	// underlying kind.
	OptPassthroughSubclass

	// OptPassthroughDatetime disables auto-serialization of time.Time,
	// forcing the fallback callable to handle it.
	OptPassthroughDatetime

	// OptAppendNewline appends a trailing '\n' to the finished output.
	OptAppendNewline

	// OptPassthroughStruct disables auto-serialization of plain structs
	// (Go's structural equivalent of "dataclasses"), forcing the fallback
	// callable to handle them.
	OptPassthroughStruct

	// OptEnumAsString serializes a value of a named bool, integer, float
	// or string type that has a String() string method via that string
	// instead of its underlying representation; values of other kinds
	// (structs, slices, maps) are not affected. This bit
	// has no equivalent in the distilled spec's option table — see
	// SPEC_FULL.md §7 and DESIGN.md for why it was added.
	OptEnumAsString
)

// has reports whether any bit in mask is set in o. Every call site today
// passes a single-bit mask, for which "any" and "all" coincide.
func (o Option) has(mask Option) bool { return o&mask != 0 }

// String renders the set option names joined by '|', or "none".
func (o Option) String() string {
	if o == 0 {
		return "none"
	}
	names := []struct {
		bit  Option
		name string
	}{
		{OptIndent2, "INDENT_2"},
		{OptNaiveUTC, "NAIVE_UTC"},
		{OptNonStrKeys, "NON_STR_KEYS"},
		{OptOmitMicroseconds, "OMIT_MICROSECONDS"},
		{OptSerializeNumpyLike, "SERIALIZE_NUMPY"},
		{OptSortKeys, "SORT_KEYS"},
		{OptStrictInteger, "STRICT_INTEGER"},
		{OptUTCZ, "UTC_Z"},
		{OptPassthroughSubclass, "PASSTHROUGH_SUBCLASS"},
		{OptPassthroughDatetime, "PASSTHROUGH_DATETIME"},
		{OptAppendNewline, "APPEND_NEWLINE"},
		{OptPassthroughStruct, "PASSTHROUGH_DATACLASS"},
		{OptEnumAsString, "ENUM_AS_STRING"},
	}
	var sb strings.Builder
	first := true
	for _, n := range names {
		if !o.has(n.bit) {
			continue
		}
		if !first {
			sb.WriteByte('|')
		}
		sb.WriteString(n.name)
		first = false
	}
	return sb.String()
}

// validOptionBits is the union of every bit this version understands.
// Kept as a single constant so Marshal/Unmarshal can reject garbage bits
// up front instead of silently ignoring them.
const validOptionBits = OptIndent2 | OptNaiveUTC | OptNonStrKeys |
	OptOmitMicroseconds | OptSerializeNumpyLike | OptSortKeys |
	OptStrictInteger | OptUTCZ | OptPassthroughSubclass |
	OptPassthroughDatetime | OptAppendNewline | OptPassthroughStruct |
	OptEnumAsString

// validate reports an error if o contains bits this version does not
// recognize. Both Marshal and Unmarshal call this before doing any work.
func (o Option) validate() error {
	if o&^validOptionBits != 0 {
		return newEncodeError(ErrInvalidConfig, "unrecognized option bits set").
			withContext("bits", uint32(o&^validOptionBits))
	}
	return nil
}
