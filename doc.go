// doc.go: package overview for gojson
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// Package gojson is a high-performance JSON codec for Go dynamic values.
//
// It serializes Go values reachable through `any` — including maps,
// slices, structs, time.Time, uuid.UUID, and the Fragment escape hatch —
// into compact or indented JSON text, and deserializes JSON text back
// into the same dynamic shapes (bool, nil, float64, int64/uint64,
// string, []any, map[string]any).
//
// The package is organized around four pieces of shared infrastructure:
// a type classifier that maps a Go dynamic value to one of a closed set
// of serialization strategies (classify.go), a JSON-escaping string
// writer with a CPU-feature-gated accelerated path (escape.go), a
// bounded decode-side key cache (keycache.go), and a float parser that
// uses an Eisel-Lemire-style fast path before falling back to
// strconv.ParseFloat (floatparse.go).
//
// Enum convention: Go has no runtime enum type. A value is treated as
// "enum-shaped" by the classifier when it implements:
//
//	interface{ EnumValue() any }
//
// and is serialized by recursing on the returned value, mirroring how
// the classifier recurses on a Python Enum's .value attribute. Plain
// named-integer types with only a String() method are NOT treated as
// enum-shaped by default (they classify as their underlying integer
// kind); set OptEnumAsString to serialize such a value (a named bool,
// integer, float or string type with a String() method) via its string
// form instead.
package gojson
