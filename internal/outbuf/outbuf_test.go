// outbuf_test.go: tests for the reservation-API output buffer
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package outbuf

import "testing"

func TestWriterBasicWrites(t *testing.T) {
	w := Get()
	w.WriteString("hello")
	w.WriteByte(' ')
	w.WriteBytes([]byte("world"))

	out := w.Finish(false)
	if string(out) != "hello world" {
		t.Errorf("got %q, want %q", out, "hello world")
	}
}

func TestWriterFinishAppendsNewline(t *testing.T) {
	w := Get()
	w.WriteString("x")
	out := w.Finish(true)
	if string(out) != "x\n" {
		t.Errorf("got %q, want %q", out, "x\n")
	}
}

func TestWriterReserveAndClaimSlice(t *testing.T) {
	w := Get()
	w.Reserve(3)
	dst := w.ClaimSlice(3)
	dst[0], dst[1], dst[2] = 'a', 'b', 'c'
	w.Advance(3)

	out := w.Finish(false)
	if string(out) != "abc" {
		t.Errorf("got %q, want %q", out, "abc")
	}
}

func TestWriterReservedHelpers(t *testing.T) {
	w := Get()
	w.Reserve(1 + 2 + 4)
	w.WriteReservedPunctuation('{')
	w.WriteReservedFragment([]byte("ab"))
	w.WriteReservedIndent(2)

	out := w.Finish(false)
	if string(out) != "{ab    " {
		t.Errorf("got %q, want %q", out, "{ab    ")
	}
}

func TestWriterLen(t *testing.T) {
	w := Get()
	if w.Len() != 0 {
		t.Errorf("fresh writer Len() = %d, want 0", w.Len())
	}
	w.WriteString("abcd")
	if w.Len() != 4 {
		t.Errorf("Len() = %d, want 4", w.Len())
	}
	w.Finish(false)
}

func TestWriterRelease(t *testing.T) {
	w := Get()
	w.WriteString("discarded")
	w.Release()
	// Release should not panic on a second call with a nil buf.
	w.Release()
}

func TestWriterGrowsBeyondInitialCapacity(t *testing.T) {
	w := Get()
	big := make([]byte, 10000)
	for i := range big {
		big[i] = 'z'
	}
	w.WriteBytes(big)
	out := w.Finish(false)
	if len(out) != len(big) {
		t.Errorf("len(out) = %d, want %d", len(out), len(big))
	}
	for _, b := range out {
		if b != 'z' {
			t.Fatal("corrupted output after growth")
		}
	}
}
