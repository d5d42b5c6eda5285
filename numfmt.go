// numfmt.go: integer and float number formatters (spec.md §4.5)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"math"
	"strconv"
)

// twoDigits is the itoap-style lookup table: twoDigits[2*i:2*i+2] holds
// the two ASCII digits of i for i in [0, 100), letting the integer
// writer consume two decimal digits per iteration instead of one.
const twoDigits = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// appendInt64 appends the decimal representation of v to dst, two digits
// at a time, the worst case being 20 bytes ("-9223372036854775808").
func appendInt64(dst []byte, v int64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	return appendUintDigits(dst, u, neg)
}

// appendUint64 appends the decimal representation of v to dst.
func appendUint64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	return appendUintDigits(dst, v, false)
}

// appendUintDigits renders u's decimal digits two at a time into a
// worst-case 20-byte stack buffer, then appends the result (with a
// leading '-' when neg) to dst.
func appendUintDigits(dst []byte, u uint64, neg bool) []byte {
	var tmp [20]byte
	i := len(tmp)
	for u >= 100 {
		q := u / 100
		r := u - q*100
		i -= 2
		tmp[i] = twoDigits[r*2]
		tmp[i+1] = twoDigits[r*2+1]
		u = q
	}
	if u < 10 {
		i--
		tmp[i] = byte('0' + u)
	} else {
		i -= 2
		tmp[i] = twoDigits[u*2]
		tmp[i+1] = twoDigits[u*2+1]
	}
	if neg {
		dst = append(dst, '-')
	}
	return append(dst, tmp[i:]...)
}

// appendFloat appends f's shortest round-trip decimal representation to
// dst, or "null" for NaN/±Inf per spec.md §6's float-format rule. Go's
// strconv.AppendFloat has used a Ryu-derived shortest-digit algorithm
// internally for years; that observable behavior is exactly what
// spec.md's "ryu" reference names, so this module calls straight into it
// rather than vendoring a duplicate implementation (see DESIGN.md). A
// result with neither '.' nor an exponent gets ".0" appended (1.0 is
// written as "1.0", not "1"), so it decodes back as a float64.
func appendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)
	for _, c := range dst[start:] {
		if c == '.' || c == 'e' {
			return dst
		}
	}
	return append(dst, '.', '0')
}

// maxSafeInteger and minSafeInteger bound OptStrictInteger's range,
// spec.md §4.5's "|n| > 2^53 - 1 is rejected in strict mode".
const (
	maxSafeInteger int64 = 1<<53 - 1
	minSafeInteger int64 = -(1<<53 - 1)
)
