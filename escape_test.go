// escape_test.go
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"testing"

	"github.com/agilira/gojson/internal/outbuf"
)

func writeEscapedToString(s string) string {
	w := outbuf.Get()
	writeEscapedString(w, s)
	return string(w.Finish(false))
}

func TestWriteEscapedStringPlain(t *testing.T) {
	got := writeEscapedToString("hello world")
	want := `"hello world"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteEscapedStringShortEscapes(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a\"b", `"a\"b"`},
		{"a\\b", `"a\\b"`},
		{"a\nb", `"a\nb"`},
		{"a\tb", `"a\tb"`},
		{"a\rb", `"a\rb"`},
	}
	for _, c := range cases {
		got := writeEscapedToString(c.in)
		if got != c.want {
			t.Errorf("writeEscapedString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWriteEscapedStringControlChar(t *testing.T) {
	got := writeEscapedToString("a\x01b")
	want := `"a\u0001b"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteEscapedStringUnicode(t *testing.T) {
	got := writeEscapedToString("héllo 世界")
	want := "\"héllo 世界\""
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNeedsEscaping(t *testing.T) {
	if needsEscaping("plain ascii") {
		t.Error("expected plain ASCII to not need escaping")
	}
	if !needsEscaping("has\nnewline") {
		t.Error("expected string with newline to need escaping")
	}
	if !needsEscaping(`has"quote`) {
		t.Error("expected string with quote to need escaping")
	}
}

func TestScanPlainRunScalarAndSWARAgree(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"abcdefgh",
		"abcdefghi",
		"ab\"cd",
		"12345678901234567890",
		"no-escapes-at-all-long-run-of-plain-ascii-text",
	}
	for _, s := range inputs {
		scalar := scanPlainRunScalar(s)
		swar := scanPlainRunSWAR(s)
		if scalar != swar {
			t.Errorf("scanPlainRunScalar(%q)=%d != scanPlainRunSWAR(%q)=%d", s, scalar, s, swar)
		}
	}
}
