// escape.go: JSON string escaping (spec.md §4.4)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"unicode/utf8"

	"github.com/agilira/gojson/internal/outbuf"
)

// escapeTable[b] is non-zero when byte b must never appear unescaped
// inside a JSON string: control characters (<0x20), '"', and '\\'.
// Checked once per byte on the scalar path; the SWAR path in
// escape_swar.go tests the same byte classes per 8-byte word with
// hasLessThan and hasByte instead.
var escapeTable [256]bool

func init() {
	for i := 0; i < 0x20; i++ {
		escapeTable[i] = true
	}
	escapeTable['"'] = true
	escapeTable['\\'] = true
}

// shortEscape maps a byte to its two-character JSON escape, e.g.
// '\n' -> `\n`, or "" when the byte has no short form and must be
// written as a \u00XX sequence instead.
var shortEscape = [256]string{
	'"':  `\"`,
	'\\': `\\`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

const hexDigits = "0123456789abcdef"

// writeEscapedString writes s between double quotes into w, escaping
// control characters, the quote, and the backslash per spec.md §4.4. It
// dispatches to scanPlainRun (scalar or SWAR, chosen once at init by
// escape_swar.go) to find stretches that need no escaping at all — the
// common case for ASCII-heavy JSON payloads.
func writeEscapedString(w *outbuf.Writer, s string) {
	w.Reserve(len(s) + 2)
	w.WriteReservedPunctuation('"')

	i := 0
	for i < len(s) {
		run := scanPlainRun(s[i:])
		if run > 0 {
			w.WriteString(s[i : i+run])
			i += run
			if i >= len(s) {
				break
			}
		}

		b := s[i]
		if esc := shortEscape[b]; esc != "" {
			w.WriteString(esc)
			i++
			continue
		}
		if b < 0x20 {
			writeUnicodeEscape(w, rune(b))
			i++
			continue
		}

		// b >= 0x80: part of a multi-byte rune that scanPlainRun's
		// byte-class test doesn't special-case — UTF-8 bytes are valid
		// JSON string content unescaped, so copy the whole rune verbatim.
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 inside a Go string can only happen via an
			// unsafe conversion from non-UTF-8 bytes; emit U+FFFD rather
			// than propagating a single invalid byte into the output.
			w.WriteString("�")
			i++
			continue
		}
		w.WriteString(s[i : i+size])
		i += size
	}

	w.WriteByte('"')
}

// writeUnicodeEscape writes r (always < 0x20 here; see writeEscapedString)
// as a \u00XX escape.
func writeUnicodeEscape(w *outbuf.Writer, r rune) {
	var buf [6]byte
	buf[0] = '\\'
	buf[1] = 'u'
	buf[2] = '0'
	buf[3] = '0'
	buf[4] = hexDigits[(r>>4)&0xF]
	buf[5] = hexDigits[r&0xF]
	w.WriteBytes(buf[:])
}

// needsEscaping reports whether s contains any byte that
// writeEscapedString would not copy verbatim. No package code calls it;
// only the tests do.
func needsEscaping(s string) bool {
	return scanPlainRun(s) < len(s)
}
