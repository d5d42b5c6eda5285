// typeref.go: process-wide type descriptor registry
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

// typerefTable holds reflect.Type singletons for twenty hot concrete
// types. It is built once at package init and never mutated afterward —
// the Go realization of spec.md §3's "type-ref registry": a C extension
// pays for a pointer-equality compare against cached PyObject*
// singletons. classify's hot path uses a Go type switch instead of
// comparing against these values; the only field read today is
// tByteSlice, by classifyCold.
type typerefTable struct {
	tString    reflect.Type
	tBool      reflect.Type
	tInt       reflect.Type
	tInt8      reflect.Type
	tInt16     reflect.Type
	tInt32     reflect.Type
	tInt64     reflect.Type
	tUint      reflect.Type
	tUint8     reflect.Type
	tUint16    reflect.Type
	tUint32    reflect.Type
	tUint64    reflect.Type
	tFloat32   reflect.Type
	tFloat64   reflect.Type
	tSliceAny  reflect.Type
	tMapSA     reflect.Type
	tTime      reflect.Type
	tUUID      reflect.Type
	tFragment  reflect.Type
	tByteSlice reflect.Type
}

// typerefs is initialized once at package load and is read-only
// thereafter, matching spec.md §5's "Type-ref registry: written once at
// module load, read-only thereafter."
var typerefs = buildTyperefs()

func buildTyperefs() typerefTable {
	return typerefTable{
		tString:    reflect.TypeOf(""),
		tBool:      reflect.TypeOf(false),
		tInt:       reflect.TypeOf(int(0)),
		tInt8:      reflect.TypeOf(int8(0)),
		tInt16:     reflect.TypeOf(int16(0)),
		tInt32:     reflect.TypeOf(int32(0)),
		tInt64:     reflect.TypeOf(int64(0)),
		tUint:      reflect.TypeOf(uint(0)),
		tUint8:     reflect.TypeOf(uint8(0)),
		tUint16:    reflect.TypeOf(uint16(0)),
		tUint32:    reflect.TypeOf(uint32(0)),
		tUint64:    reflect.TypeOf(uint64(0)),
		tFloat32:   reflect.TypeOf(float32(0)),
		tFloat64:   reflect.TypeOf(float64(0)),
		tSliceAny:  reflect.TypeOf([]any(nil)),
		tMapSA:     reflect.TypeOf(map[string]any(nil)),
		tTime:      reflect.TypeOf(time.Time{}),
		tUUID:      reflect.TypeOf(uuid.UUID{}),
		tFragment:  reflect.TypeOf(Fragment(nil)),
		tByteSlice: reflect.TypeOf([]byte(nil)),
	}
}
