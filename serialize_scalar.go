// serialize_scalar.go: scalar per-type serializers (spec.md §4.8)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"encoding/base64"
	"reflect"

	"github.com/agilira/gojson/internal/outbuf"
)

// writeNull, writeTrue, writeFalse write the three JSON singleton
// literals; spec.md §3 treats these as "type-ref registry" hot
// singletons — here they are just constant strings, since Go has no
// refcounted singleton objects to hand out.
func writeNull(w *outbuf.Writer)  { w.Reserve(4); w.WriteString("null") }
func writeTrue(w *outbuf.Writer)  { w.Reserve(4); w.WriteString("true") }
func writeFalse(w *outbuf.Writer) { w.Reserve(5); w.WriteString("false") }

func encodeBool(w *outbuf.Writer, v any) {
	b, ok := v.(bool)
	if !ok {
		b = reflect.ValueOf(v).Bool()
	}
	if b {
		writeTrue(w)
	} else {
		writeFalse(w)
	}
}

// intValueOf extracts a signed integer from any int-kind value, builtin
// or named, without a reflect call on the hot concrete-type path.
func intValueOf(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	default:
		return reflect.ValueOf(v).Int()
	}
}

// uintValueOf extracts an unsigned integer from any uint-kind value.
func uintValueOf(v any) uint64 {
	switch n := v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	default:
		return reflect.ValueOf(v).Uint()
	}
}

// floatValueOf extracts a float64 from any float-kind value.
func floatValueOf(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	default:
		return reflect.ValueOf(v).Float()
	}
}

// encodeInt writes a signed integer, rejecting out-of-range values under
// OptStrictInteger per spec.md §4.8's "Integer" strategy.
func encodeInt(w *outbuf.Writer, v any, opts Option) *EncodeError {
	n := intValueOf(v)
	if opts.has(OptStrictInteger) && (n > maxSafeInteger || n < minSafeInteger) {
		return newEncodeErrorf(ErrIntegerRange, "integer %d exceeds strict range", n).
			withContext("value", n)
	}
	w.Reserve(20)
	var buf [20]byte
	out := appendInt64(buf[:0], n)
	w.WriteReservedFragment(out)
	return nil
}

// encodeUint writes an unsigned integer, rejecting out-of-range values
// under OptStrictInteger.
func encodeUint(w *outbuf.Writer, v any, opts Option) *EncodeError {
	n := uintValueOf(v)
	if opts.has(OptStrictInteger) && n > uint64(maxSafeInteger) {
		return newEncodeErrorf(ErrIntegerRange, "integer %d exceeds strict range", n).
			withContext("value", n)
	}
	w.Reserve(20)
	var buf [20]byte
	out := appendUint64(buf[:0], n)
	w.WriteReservedFragment(out)
	return nil
}

// encodeFloat writes a float64, or "null" for NaN/±Inf per spec.md §6.
func encodeFloat(w *outbuf.Writer, v any) {
	f := floatValueOf(v)
	w.Reserve(32)
	var buf [32]byte
	out := appendFloat(buf[:0], f)
	w.WriteReservedFragment(out)
}

// encodeString writes v (a plain string or a named string-kind type) as
// an escaped JSON string literal.
func encodeString(w *outbuf.Writer, v any) {
	s, ok := v.(string)
	if !ok {
		s = reflect.ValueOf(v).String()
	}
	writeEscapedString(w, s)
}

// encodeBytes writes v ([]byte or a named byte-slice type) standard
// base64-encoded in a JSON string, the idiomatic Go convention
// encoding/json uses for raw byte data (spec.md names no equivalent
// strategy, since orjson has no []byte concept — see DESIGN.md).
func encodeBytes(w *outbuf.Writer, v any) {
	b, ok := v.([]byte)
	if !ok {
		b = reflect.ValueOf(v).Bytes()
	}
	n := base64.StdEncoding.EncodedLen(len(b))
	w.Reserve(n + 2)
	w.WriteReservedPunctuation('"')
	dst := w.ClaimSlice(n)
	base64.StdEncoding.Encode(dst, b)
	w.Advance(n)
	w.WriteReservedPunctuation('"')
}
