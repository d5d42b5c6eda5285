// datetime_test.go
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"testing"
	"time"
)

func TestMarshalDatetimeUTC(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 13, 45, 30, 123456000, time.UTC)
	got := mustMarshal(t, ts, OptUTCZ)
	want := `"2024-03-05T13:45:30.123456Z"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalDatetimeOffset(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2024, time.March, 5, 13, 45, 30, 0, loc)
	got := mustMarshal(t, ts, 0)
	want := `"2024-03-05T13:45:30+01:00"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalDatetimeOmitMicroseconds(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 13, 45, 30, 123456000, time.UTC)
	got := mustMarshal(t, ts, OptUTCZ|OptOmitMicroseconds)
	want := `"2024-03-05T13:45:30Z"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalDate(t *testing.T) {
	d := NewDate(2024, time.December, 25)
	got := mustMarshal(t, d, 0)
	want := `"2024-12-25"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalDateNormalizesOverflow(t *testing.T) {
	d := NewDate(2024, 13, 1)
	got := mustMarshal(t, d, 0)
	want := `"2025-01-01"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalClockTime(t *testing.T) {
	c := ClockTime{Hour: 9, Minute: 5, Second: 1, Nanosecond: 250000000}
	got := mustMarshal(t, c, 0)
	want := `"09:05:01.250000"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalClockTimeOmitMicroseconds(t *testing.T) {
	c := ClockTime{Hour: 9, Minute: 5, Second: 1, Nanosecond: 250000000}
	got := mustMarshal(t, c, OptOmitMicroseconds)
	want := `"09:05:01"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalTZAwareClockTimeErrors(t *testing.T) {
	c := ClockTime{Hour: 9, HasOffset: true, OffsetSecond: 3600}
	_, err := Marshal(c, 0)
	if !IsErrorCode(err, ErrTZAwareTime) {
		t.Errorf("expected ErrTZAwareTime, got %v", err)
	}
}

func TestParseRFC3339HintAcceptsStrictFormat(t *testing.T) {
	_, ok := parseRFC3339Hint("2024-03-05T13:45:30Z")
	if !ok {
		t.Error("expected strict RFC-3339 timestamp to parse")
	}
}

func TestParseRFC3339HintRejectsPlainString(t *testing.T) {
	_, ok := parseRFC3339Hint("not a timestamp")
	if ok {
		t.Error("expected non-timestamp string to be rejected")
	}
}

func TestUnmarshalWithDatetimeHintProducesTime(t *testing.T) {
	v, err := UnmarshalWithDatetimeHint([]byte(`"2024-03-05T13:45:30Z"`), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ts, ok := v.(time.Time)
	if !ok {
		t.Fatalf("expected time.Time, got %T", v)
	}
	if ts.Year() != 2024 || ts.Month() != time.March || ts.Day() != 5 {
		t.Errorf("unexpected date components: %v", ts)
	}
}
