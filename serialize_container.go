// serialize_container.go: List and Dict per-type serializers (spec.md §4.8)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"reflect"
	"sort"

	"github.com/agilira/gojson/internal/outbuf"
)

// encodeList writes items as a JSON array, recursing nest+1 into each
// element per spec.md §4.8's "List" strategy.
func (st *encodeState) encodeList(w *outbuf.Writer, items []any, nest int) *EncodeError {
	w.Reserve(1)
	w.WriteReservedPunctuation('[')
	for i, item := range items {
		if i > 0 {
			w.Reserve(1)
			w.WriteReservedPunctuation(',')
		}
		st.writeIndent(w, nest+1)
		if err := st.encodeValue(w, item, nest+1); err != nil {
			return err
		}
	}
	if len(items) > 0 {
		st.writeIndent(w, nest)
	}
	w.Reserve(1)
	w.WriteReservedPunctuation(']')
	return nil
}

// encodeDict writes m as a JSON object, following the map's iteration
// order unless OptSortKeys requests byte-lexicographic key order, per
// spec.md §5's "Ordering guarantees". Go map iteration is randomized by
// the runtime, so "iteration order" here already differs from spec.md's
// "order yielded by the runtime's dictionary iterator" — documented as
// an unavoidable Go-semantics difference, not a missed requirement (see
// DESIGN.md).
func (st *encodeState) encodeDict(w *outbuf.Writer, m map[string]any, nest int) *EncodeError {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if st.opt.has(OptSortKeys) {
		sort.Strings(keys)
	}

	w.Reserve(1)
	w.WriteReservedPunctuation('{')
	for i, k := range keys {
		if i > 0 {
			w.Reserve(1)
			w.WriteReservedPunctuation(',')
		}
		st.writeIndent(w, nest+1)
		encodeString(w, k)
		w.Reserve(1)
		w.WriteReservedPunctuation(':')
		if st.opt.has(OptIndent2) {
			w.Reserve(1)
			w.WriteReservedPunctuation(' ')
		}
		if err := st.encodeValue(w, m[k], nest+1); err != nil {
			return err
		}
	}
	if len(keys) > 0 {
		st.writeIndent(w, nest)
	}
	w.Reserve(1)
	w.WriteReservedPunctuation('}')
	return nil
}

// writeIndent writes a newline plus depth*2 spaces when OptIndent2 is
// set and the container being closed/continued is non-empty; it is a
// no-op in compact mode.
func (st *encodeState) writeIndent(w *outbuf.Writer, depth int) {
	if !st.opt.has(OptIndent2) {
		return
	}
	w.Reserve(1 + depth*2)
	w.WriteReservedPunctuation('\n')
	w.WriteReservedIndent(depth)
}

// encodeReflectMap writes an arbitrary map (any key/value type) as a
// JSON object via reflection, the path taken whenever v is not the fast
// concrete map[string]any. Non-string keys are only permitted under
// OptNonStrKeys, each converted through stringifyKey, spec.md §4.8's
// "Non-string keys" rule.
func (st *encodeState) encodeReflectMap(w *outbuf.Writer, v any, nest int) *EncodeError {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			writeNull(w)
			return nil
		}
		rv = rv.Elem()
	}

	keyIsString := rv.Type().Key().Kind() == reflect.String
	if !keyIsString && !st.opt.has(OptNonStrKeys) {
		return newEncodeErrorf(ErrNonStringKey, "map key type %s requires NonStrKeys", rv.Type().Key())
	}

	type entry struct {
		key string
		val any
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		var key string
		if keyIsString {
			key = iter.Key().String()
		} else {
			k, err := stringifyKey(st, iter.Key().Interface())
			if err != nil {
				return err
			}
			key = k
		}
		entries = append(entries, entry{key: key, val: iter.Value().Interface()})
	}
	if st.opt.has(OptSortKeys) {
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	}

	w.Reserve(1)
	w.WriteReservedPunctuation('{')
	for i, e := range entries {
		if i > 0 {
			w.Reserve(1)
			w.WriteReservedPunctuation(',')
		}
		st.writeIndent(w, nest+1)
		encodeString(w, e.key)
		w.Reserve(1)
		w.WriteReservedPunctuation(':')
		if st.opt.has(OptIndent2) {
			w.Reserve(1)
			w.WriteReservedPunctuation(' ')
		}
		if err := st.encodeValue(w, e.val, nest+1); err != nil {
			return err
		}
	}
	if len(entries) > 0 {
		st.writeIndent(w, nest)
	}
	w.Reserve(1)
	w.WriteReservedPunctuation('}')
	return nil
}

// stringifyKey converts a non-string map key to its JSON-object-key
// string form, spec.md §4.8's "Non-string keys" rule, consulted only
// when OptNonStrKeys permits non-string keys at all (called from
// encodeReflectMap).
func stringifyKey(st *encodeState, k any) (string, *EncodeError) {
	switch classify(k) {
	case tagString:
		return k.(string), nil
	case tagStringNamed:
		return reflect.ValueOf(k).String(), nil
	case tagBool:
		if b, _ := k.(bool); b {
			return "true", nil
		}
		return "false", nil
	case tagInt:
		var buf [20]byte
		return string(appendInt64(buf[:0], intValueOf(k))), nil
	case tagUint:
		var buf [20]byte
		return string(appendUint64(buf[:0], uintValueOf(k))), nil
	case tagFloat:
		var buf [32]byte
		return string(appendFloat(buf[:0], floatValueOf(k))), nil
	case tagEnum:
		return stringifyKey(st, k.(enumValuer).EnumValue())
	default:
		return "", newEncodeErrorf(ErrNonStringKey, "unsupported map key type %T", k)
	}
}

