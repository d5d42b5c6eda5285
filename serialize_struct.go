// serialize_struct.go: Dataclass (struct) and NumpyArray per-type
// serializers (spec.md §4.8, supplemented per SPEC_FULL.md §9)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"reflect"
	"strings"

	"github.com/agilira/gojson/internal/outbuf"
)

// structFieldName resolves the JSON key for a reflect.StructField: a
// `json:"name"` tag wins, "-" skips the field entirely, and an untagged
// field falls back to its Go name. spec.md's "skip `_`-prefixed keys"
// rule has no Go analogue (Go has no private-by-naming-convention dict
// keys for dataclasses); struct tags are the idiomatic Go equivalent of
// "which fields does this type actually want serialized", so that
// convention is used instead (see DESIGN.md).
func structFieldName(f reflect.StructField) (name string, skip bool) {
	if f.PkgPath != "" {
		return "", true // unexported
	}
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return f.Name, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" {
		return "", true
	}
	if parts[0] == "" {
		return f.Name, false
	}
	return parts[0], false
}

// hasOmitEmpty reports whether f's json tag carries the omitempty option.
func hasOmitEmpty(f reflect.StructField) bool {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return false
	}
	for _, opt := range strings.Split(tag, ",")[1:] {
		if opt == "omitempty" {
			return true
		}
	}
	return false
}

// encodeStruct writes v (a struct value or pointer to one) as a JSON
// object, one member per exported field in declaration order, spec.md
// §4.8's "Dataclass" strategy ("iterate __dataclass_fields__ in
// declaration order").
func (st *encodeState) encodeStruct(w *outbuf.Writer, v any, nest int) *EncodeError {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			writeNull(w)
			return nil
		}
		rv = rv.Elem()
	}
	rt := rv.Type()

	w.Reserve(1)
	w.WriteReservedPunctuation('{')
	wrote := false
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name, skip := structFieldName(field)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if hasOmitEmpty(field) && fv.IsZero() {
			continue
		}

		if wrote {
			w.Reserve(1)
			w.WriteReservedPunctuation(',')
		}
		st.writeIndent(w, nest+1)
		encodeString(w, name)
		w.Reserve(1)
		w.WriteReservedPunctuation(':')
		if st.opt.has(OptIndent2) {
			w.Reserve(1)
			w.WriteReservedPunctuation(' ')
		}
		if err := st.encodeValue(w, fv.Interface(), nest+1); err != nil {
			return err
		}
		wrote = true
	}
	if wrote {
		st.writeIndent(w, nest)
	}
	w.Reserve(1)
	w.WriteReservedPunctuation('}')
	return nil
}

// encodeNumericArray writes a fixed-numeric-element slice or array as a
// flat or nested JSON array, row-major, mirroring numpy.rs's
// multi-dimensional flattening (SPEC_FULL.md §9) over Go's `[][]T`-style
// nesting rather than a true ndarray shape.
func (st *encodeState) encodeNumericArray(w *outbuf.Writer, v any, nest int) *EncodeError {
	return st.encodeReflectSlice(w, v, nest)
}

// encodeReflectSlice writes any slice or array value element-by-element
// via reflection, recursing into nested slices/arrays (the row-major
// walk numeric arrays need) or any other element type.
func (st *encodeState) encodeReflectSlice(w *outbuf.Writer, v any, nest int) *EncodeError {
	rv := reflect.ValueOf(v)
	w.Reserve(1)
	w.WriteReservedPunctuation('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			w.Reserve(1)
			w.WriteReservedPunctuation(',')
		}
		st.writeIndent(w, nest+1)
		if err := st.encodeValue(w, rv.Index(i).Interface(), nest+1); err != nil {
			return err
		}
	}
	if rv.Len() > 0 {
		st.writeIndent(w, nest)
	}
	w.Reserve(1)
	w.WriteReservedPunctuation(']')
	return nil
}
