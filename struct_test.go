// struct_test.go
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import "testing"

type plainPerson struct {
	Name    string
	Age     int
	private string
}

type taggedPerson struct {
	Name     string `json:"name"`
	Age      int    `json:"age,omitempty"`
	Secret   string `json:"-"`
	Internal string
}

type nestedPerson struct {
	Self *taggedPerson `json:"self"`
}

func TestMarshalStructUntaggedFields(t *testing.T) {
	p := plainPerson{Name: "Ava", Age: 30, private: "hidden"}
	got := mustMarshal(t, p, 0)
	want := `{"Name":"Ava","Age":30}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalStructTagsAndSkip(t *testing.T) {
	p := taggedPerson{Name: "Bo", Age: 0, Secret: "nope", Internal: "kept"}
	got := mustMarshal(t, p, 0)
	want := `{"name":"Bo","Internal":"kept"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalStructOmitEmptyKeepsNonZero(t *testing.T) {
	p := taggedPerson{Name: "Cy", Age: 5, Internal: "x"}
	got := mustMarshal(t, p, 0)
	want := `{"name":"Cy","age":5,"Internal":"x"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalStructPointerField(t *testing.T) {
	inner := &taggedPerson{Name: "Dee"}
	got := mustMarshal(t, nestedPerson{Self: inner}, 0)
	want := `{"self":{"name":"Dee","Internal":""}}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalStructNilPointerField(t *testing.T) {
	got := mustMarshal(t, nestedPerson{Self: nil}, 0)
	want := `{"self":null}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalNumericArray(t *testing.T) {
	got := mustMarshal(t, []int32{1, 2, 3}, 0)
	want := `[1,2,3]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalNumericArraySerializeNumpyLike(t *testing.T) {
	got := mustMarshal(t, [][]float64{{1, 2}, {3, 4}}, OptSerializeNumpyLike)
	want := `[[1.0,2.0],[3.0,4.0]]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
