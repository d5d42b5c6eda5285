// classify.go: maps a Go dynamic value to a serializer strategy tag
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// tag is the closed set of serializer strategies, the Go realization of
// spec.md §3's "Classification table". Field ordering mirrors field.go's
// `kind` constants in the teacher (grouped hot-path-first for the
// classifier's benefit, not for memory layout — tag values are never
// stored in bulk the way Field.T is).
type tag uint8

const (
	tagUnknown tag = iota
	tagString
	tagStringNamed // Go's structural equivalent of spec.md's StrSubclass
	tagInt
	tagUint
	tagBool
	tagNone
	tagFloat
	tagList
	tagDict
	tagDatetime
	tagDate
	tagClockTime
	tagTuple // Go has no tuple; classify never returns this tag
	tagUUID
	tagStruct // spec.md's "Dataclass"
	tagArray  // fixed-element-type slice/array, spec.md's "NumpyArray"
	tagEnum
	tagFragment
	tagBytes // []byte and named byte-slice types, base64-encoded on output
)

// enumValuer is the convention-based interface classify.go uses to
// recognize "enum-shaped" values, in place of Python's universal .value
// attribute (see doc.go).
type enumValuer interface{ EnumValue() any }

// stringer duplicates fmt.Stringer's shape without importing fmt here,
// keeping this file's import list to what the classifier itself needs.
type stringer interface{ String() string }

// classify maps v's dynamic type to exactly one tag, hot singletons
// first via a type switch (compiles to a jump table, no reflection),
// falling back to reflect.TypeOf only for named/composite types — the
// Go analogue of spec.md §4.8's "ten hot singletons compared by pointer,
// then a cold reflect-driven path".
func classify(v any) tag {
	if v == nil {
		return tagNone
	}

	switch v.(type) {
	case []byte:
		return tagBytes
	case string:
		return tagString
	case bool:
		return tagBool
	case int, int8, int16, int32, int64:
		return tagInt
	case uint, uint8, uint16, uint32, uint64:
		return tagUint
	case float32, float64:
		return tagFloat
	case []any:
		return tagList
	case map[string]any:
		return tagDict
	case time.Time:
		return tagDatetime
	case Date:
		return tagDate
	case ClockTime:
		return tagClockTime
	case uuid.UUID:
		return tagUUID
	case Fragment:
		return tagFragment
	}

	return classifyCold(v)
}

// classifyCold handles everything the hot type switch above did not
// recognize by concrete type: named builtins, enum-shaped values,
// structs, slices/arrays of fixed element kind, and anything else
// (tagUnknown, routed to the caller-supplied fallback).
func classifyCold(v any) tag {
	if _, ok := v.(enumValuer); ok {
		return tagEnum
	}

	rt := reflect.TypeOf(v)
	switch rt.Kind() {
	case reflect.String:
		return tagStringNamed
	case reflect.Bool:
		return tagBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return tagInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return tagUint
	case reflect.Float32, reflect.Float64:
		return tagFloat
	case reflect.Struct:
		return tagStruct
	case reflect.Ptr:
		if rt.Elem().Kind() == reflect.Struct {
			return tagStruct
		}
		return tagUnknown
	case reflect.Slice, reflect.Array:
		if rt.Kind() == reflect.Slice && rt.Elem() == typerefs.tByteSlice.Elem() {
			return tagBytes
		}
		if isFixedNumericElem(rt.Elem()) {
			return tagArray
		}
		return tagList
	case reflect.Map:
		return tagDict
	}
	return tagUnknown
}

// isFixedNumericElem reports whether et is a fixed-width numeric kind,
// qualifying a slice/array of it for the OptSerializeNumpyLike strategy
// (SPEC_FULL.md §9, supplemented feature).
func isFixedNumericElem(et reflect.Type) bool {
	switch et.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
