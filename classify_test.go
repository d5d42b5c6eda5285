// classify_test.go
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

type namedString string
type namedInt int
type simpleEnum int

func (e simpleEnum) EnumValue() any { return int(e) }

type plainStruct struct {
	A int
	B string
}

func TestClassifyHotPath(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want tag
	}{
		{"nil", nil, tagNone},
		{"string", "hello", tagString},
		{"bool", true, tagBool},
		{"int", 42, tagInt},
		{"int64", int64(42), tagInt},
		{"uint", uint(42), tagUint},
		{"float64", 3.14, tagFloat},
		{"list", []any{1, 2}, tagList},
		{"dict", map[string]any{"a": 1}, tagDict},
		{"time", time.Now(), tagDatetime},
		{"date", NewDate(2024, time.January, 1), tagDate},
		{"clocktime", ClockTime{Hour: 1}, tagClockTime},
		{"uuid", uuid.New(), tagUUID},
		{"fragment", Fragment(`{}`), tagFragment},
		{"bytes", []byte("hi"), tagBytes},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := classify(c.v); got != c.want {
				t.Errorf("classify(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestClassifyColdPath(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want tag
	}{
		{"named string", namedString("x"), tagStringNamed},
		{"named int", namedInt(7), tagInt},
		{"enum", simpleEnum(1), tagEnum},
		{"struct", plainStruct{A: 1, B: "x"}, tagStruct},
		{"struct pointer", &plainStruct{A: 1}, tagStruct},
		{"numeric array", []int32{1, 2, 3}, tagArray},
		{"named byte slice", namedBytes("hi"), tagBytes},
		{"string map key", map[string]int{"a": 1}, tagDict},
		{"non-string map key", map[int]string{1: "a"}, tagDict},
		{"channel", make(chan int), tagUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := classify(c.v); got != c.want {
				t.Errorf("classify(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

type namedBytes []byte

func TestClassifyNilStructPointer(t *testing.T) {
	var p *plainStruct
	if got := classify(p); got != tagStruct {
		t.Errorf("classify(nil *struct) = %v, want tagStruct", got)
	}
}
