// serialize_datetime.go: Date/ClockTime types and the datetime family of
// per-type serializers (spec.md §4.8's Datetime/Date/Time strategies).
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"time"

	"github.com/agilira/gojson/internal/outbuf"
)

// Date is a calendar date with no time-of-day or zone component, the Go
// realization of spec.md's "Date" tag (Python's datetime.date). time.Time
// always carries a time-of-day and a Location, so it cannot stand in for
// a bare date without risking a caller accidentally passing a genuine
// instant where only a calendar date was intended.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date, normalizing the same way time.Date does
// (e.g. Month 13 rolls into the next year).
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ClockTime is a time-of-day with no calendar date, the Go realization of
// spec.md's "Time" tag (Python's datetime.time). HasOffset marks it
// tz-aware; per spec.md §4.8 ("tz-aware times rejected"),
// encoding a tz-aware ClockTime is an error rather than silently dropping
// the offset.
type ClockTime struct {
	Hour         int
	Minute       int
	Second       int
	Nanosecond   int
	HasOffset    bool
	OffsetSecond int // seconds east of UTC; meaningful only when HasOffset
}

// serializeDatetime writes t as a JSON string in RFC-3339-compatible
// form, the Go realization of spec.md §4.8's "fixed-format writer"; the
// offset suffix comes from appendOffset. ClockTime values never carry an
// offset in the output (serializeClockTime rejects tz-aware ones).
func serializeDatetime(w *outbuf.Writer, t time.Time, opts Option) *EncodeError {
	_, offset := t.Zone()

	w.Reserve(40)
	w.WriteReservedPunctuation('"')
	var buf [40]byte
	n := appendDate(buf[:0], t.Year(), int(t.Month()), t.Day())
	buf2 := append(buf[:n], 'T')
	n = len(buf2)
	n = appendClock(buf2[:n], t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), opts)
	out := buf2[:n]
	out = appendOffset(out, offset, opts)
	w.WriteReservedFragment(out)
	w.WriteReservedPunctuation('"')
	return nil
}

// serializeDate writes d as the JSON string "YYYY-MM-DD".
func serializeDate(w *outbuf.Writer, d Date) *EncodeError {
	var buf [10]byte
	n := appendDate(buf[:0], d.Year, int(d.Month), d.Day)
	w.Reserve(n + 2)
	w.WriteReservedPunctuation('"')
	w.WriteReservedFragment(buf[:n])
	w.WriteReservedPunctuation('"')
	return nil
}

// serializeClockTime writes c as the JSON string "HH:MM:SS[.ffffff]",
// rejecting tz-aware values per spec.md §4.8.
func serializeClockTime(w *outbuf.Writer, c ClockTime, opts Option) *EncodeError {
	if c.HasOffset {
		return newEncodeError(ErrTZAwareTime, "tz-aware ClockTime cannot be serialized")
	}
	var buf [15]byte
	n := appendClock(buf[:0], c.Hour, c.Minute, c.Second, c.Nanosecond, opts)
	w.Reserve(n + 2)
	w.WriteReservedPunctuation('"')
	w.WriteReservedFragment(buf[:n])
	w.WriteReservedPunctuation('"')
	return nil
}

// appendDate appends "YYYY-MM-DD" to dst, zero-padding each field, and
// returns the new length (dst itself isn't returned since callers here
// always pass an array-backed slice they continue indexing by length).
func appendDate(dst []byte, year, month, day int) int {
	dst = appendPadded(dst, year, 4)
	dst = append(dst, '-')
	dst = appendPadded(dst, month, 2)
	dst = append(dst, '-')
	dst = appendPadded(dst, day, 2)
	return len(dst)
}

// appendClock appends "HH:MM:SS[.ffffff]" to dst, honoring
// OptOmitMicroseconds, and returns the new length.
func appendClock(dst []byte, hour, minute, second, nanosecond int, opts Option) int {
	dst = appendPadded(dst, hour, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, minute, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, second, 2)
	micros := nanosecond / 1000
	if micros != 0 && !opts.has(OptOmitMicroseconds) {
		dst = append(dst, '.')
		dst = appendPadded(dst, micros, 6)
	}
	return len(dst)
}

// appendOffset appends the timezone suffix: "Z" under OptUTCZ for a zero
// offset, "+HH:MM"/"-HH:MM" otherwise (seconds of the offset are
// dropped). It always appends a suffix: a time.Time always has a
// Location, so there is no naive case and OptNaiveUTC is not consulted.
func appendOffset(dst []byte, offsetSeconds int, opts Option) []byte {
	if offsetSeconds == 0 && opts.has(OptUTCZ) {
		return append(dst, 'Z')
	}
	sign := byte('+')
	abs := offsetSeconds
	if abs < 0 {
		sign = '-'
		abs = -abs
	}
	h := abs / 3600
	m := (abs % 3600) / 60
	dst = append(dst, sign)
	dst = appendPadded(dst, h, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, m, 2)
	return dst
}

// appendPadded appends v as a zero-padded decimal of exactly width digits.
func appendPadded(dst []byte, v, width int) []byte {
	var tmp [8]byte
	for i := width - 1; i >= 0; i-- {
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, tmp[:width]...)
}

// parseRFC3339Hint attempts to parse s as a strict RFC-3339 datetime,
// returning ok=false for anything else. Used only by decode.go's opt-in
// datetime-parsing hint (SPEC_FULL.md §9); default Unmarshal never calls
// this, so plain strings always decode as strings.
func parseRFC3339Hint(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
