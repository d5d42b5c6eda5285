// marshal_test.go
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agilira/gojson/internal/outbuf"
)

// stringyInt has a String() method but no EnumValue(), so it only takes
// OptEnumAsString's string form when that bit is explicitly requested.
type stringyInt int

func (s stringyInt) String() string { return fmt.Sprintf("stringyInt(%d)", int(s)) }

func mustMarshal(t *testing.T, v any, opt Option) string {
	t.Helper()
	out, err := Marshal(v, opt)
	if err != nil {
		t.Fatalf("Marshal(%v) failed: %v", v, err)
	}
	return string(out)
}

func TestMarshalScalars(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{-7, "-7"},
		{uint(9), "9"},
		{3.5, "3.5"},
		{"hi", `"hi"`},
	}
	for _, c := range cases {
		got := mustMarshal(t, c.v, 0)
		if got != c.want {
			t.Errorf("Marshal(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestMarshalList(t *testing.T) {
	got := mustMarshal(t, []any{1, "a", true, nil}, 0)
	want := `[1,"a",true,null]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalDictSortedKeys(t *testing.T) {
	m := map[string]any{"b": 1, "a": 2, "c": 3}
	got := mustMarshal(t, m, OptSortKeys)
	want := `{"a":2,"b":1,"c":3}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalIndent(t *testing.T) {
	m := map[string]any{"a": []any{1, 2}}
	got := mustMarshal(t, m, OptIndent2)
	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalAppendNewline(t *testing.T) {
	got := mustMarshal(t, 1, OptAppendNewline)
	if got != "1\n" {
		t.Errorf("got %q, want %q", got, "1\n")
	}
}

func TestMarshalStrictIntegerRejectsOutOfRange(t *testing.T) {
	_, err := Marshal(int64(1)<<54, OptStrictInteger)
	if err == nil {
		t.Fatal("expected error for integer exceeding strict range")
	}
	if !IsErrorCode(err, ErrIntegerRange) {
		t.Errorf("expected ErrIntegerRange, got %v", err)
	}
}

func TestMarshalUnsupportedTypeWithoutFallback(t *testing.T) {
	_, err := Marshal(make(chan int), 0)
	if err == nil {
		t.Fatal("expected error for unsupported type")
	}
	if !IsErrorCode(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestMarshalDefaultFallback(t *testing.T) {
	fallback := func(v any) (any, error) {
		return "fallback-value", nil
	}
	out, err := MarshalDefault(make(chan int), 0, fallback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `"fallback-value"` {
		t.Errorf("got %q", out)
	}
}

func TestMarshalDefaultFallbackError(t *testing.T) {
	fallback := func(v any) (any, error) {
		return nil, errors.New("boom")
	}
	_, err := MarshalDefault(make(chan int), 0, fallback)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsErrorCode(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestMarshalNonStringKeys(t *testing.T) {
	m := map[int]string{2: "b", 1: "a"}
	_, err := Marshal(m, 0)
	if err == nil {
		t.Fatal("expected error without OptNonStrKeys")
	}

	got := mustMarshal(t, m, OptNonStrKeys|OptSortKeys)
	want := `{"1":"a","2":"b"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalEnum(t *testing.T) {
	got := mustMarshal(t, simpleEnum(5), 0)
	if got != "5" {
		t.Errorf("got %q, want %q", got, "5")
	}
}

func TestMarshalEnumAsString(t *testing.T) {
	got := mustMarshal(t, stringyInt(7), OptEnumAsString)
	if got != `"stringyInt(7)"` {
		t.Errorf("got %q, want %q", got, `"stringyInt(7)"`)
	}
}

func TestMarshalBytesBase64(t *testing.T) {
	got := mustMarshal(t, []byte("hi"), 0)
	if got != `"aGk="` {
		t.Errorf("got %q, want %q", got, `"aGk="`)
	}
}

func TestMarshalRecursionLimit(t *testing.T) {
	st := &encodeState{opt: 0, fallbackLeft: defaultFallbackBudget}
	var v any = 1
	for i := 0; i < defaultMaxDepth+5; i++ {
		v = []any{v}
	}
	w := outbuf.Get()
	defer w.Release()

	err := st.encodeValue(w, v, 0)
	if err == nil {
		t.Fatal("expected recursion limit error")
	}
	if !IsErrorCode(err, ErrRecursionLimit) {
		t.Errorf("expected ErrRecursionLimit, got %v", err)
	}
}
