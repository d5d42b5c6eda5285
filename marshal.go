// marshal.go: top-level serializer entry point (spec.md §2, §6)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"reflect"
	"time"

	"github.com/agilira/gojson/internal/outbuf"
	"github.com/google/uuid"
)

// defaultMaxDepth bounds container nesting, spec.md §4.7's recursion
// budget generalized to the serializer side as well.
const defaultMaxDepth = 1024

// defaultFallbackBudget bounds how many times the fallback callable may
// recurse into itself before Marshal gives up, spec.md §7's "default
// callable recursion limit".
const defaultFallbackBudget = 1000

// encodeState carries the options and recursion bookkeeping threaded
// through a single top-level Marshal call — never shared across calls,
// per spec.md §5 ("Output buffer: owned by one call; not shared").
type encodeState struct {
	opt         Option
	fallback    func(any) (any, error)
	fallbackLeft int
}

// Marshal serializes v to JSON using opt, with no fallback callable —
// an unsupported type yields ErrUnsupportedType. This is the Go
// realization of spec.md §6's default serialize entry point.
func Marshal(v any, opt Option) ([]byte, error) {
	return MarshalDefault(v, opt, nil)
}

// MarshalDefault serializes v to JSON using opt, consulting fallback for
// any value classify cannot otherwise handle (tagUnknown), or for values
// whose tag is suppressed by an OptPassthrough* bit. fallback may be nil,
// matching Marshal's behavior.
func MarshalDefault(v any, opt Option, fallback func(any) (any, error)) ([]byte, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}

	st := &encodeState{opt: opt, fallback: fallback, fallbackLeft: defaultFallbackBudget}
	w := outbuf.Get()

	if err := st.encodeValue(w, v, 0); err != nil {
		w.Release()
		return nil, err
	}

	return w.Finish(opt.has(OptAppendNewline)), nil
}

// encodeValue dispatches v to its per-type serializer by tag, the Go
// realization of spec.md §4.8's top-level serializer switch. nest tracks
// both the recursion-depth budget and the pretty-print indent level.
func (st *encodeState) encodeValue(w *outbuf.Writer, v any, nest int) *EncodeError {
	if nest > defaultMaxDepth {
		return newEncodeError(ErrRecursionLimit, "max recursion depth exceeded")
	}

	tg := classify(v)

	// OptEnumAsString: a named scalar with a String() method but no
	// EnumValue() method (so classify didn't already route it to
	// tagEnum) serializes via its string form instead of its underlying
	// representation, per doc.go's enum convention note.
	if st.opt.has(OptEnumAsString) {
		switch tg {
		case tagInt, tagUint, tagFloat, tagBool, tagStringNamed:
			if sv, ok := v.(stringer); ok {
				encodeString(w, sv.String())
				return nil
			}
		}
	}

	switch tg {
	case tagNone:
		writeNull(w)
		return nil
	case tagBool:
		encodeBool(w, v)
		return nil
	case tagString:
		encodeString(w, v)
		return nil
	case tagStringNamed:
		if st.opt.has(OptPassthroughSubclass) {
			return st.encodeFallback(w, v, nest)
		}
		encodeString(w, v)
		return nil
	case tagInt:
		return encodeInt(w, v, st.opt)
	case tagUint:
		return encodeUint(w, v, st.opt)
	case tagBytes:
		encodeBytes(w, v)
		return nil
	case tagFloat:
		encodeFloat(w, v)
		return nil
	case tagList:
		if items, ok := v.([]any); ok {
			return st.encodeList(w, items, nest)
		}
		return st.encodeReflectSlice(w, v, nest)
	case tagDict:
		if m, ok := v.(map[string]any); ok {
			return st.encodeDict(w, m, nest)
		}
		return st.encodeReflectMap(w, v, nest)
	case tagDatetime:
		if st.opt.has(OptPassthroughDatetime) {
			return st.encodeFallback(w, v, nest)
		}
		return serializeDatetime(w, v.(time.Time), st.opt)
	case tagDate:
		return serializeDate(w, v.(Date))
	case tagClockTime:
		return serializeClockTime(w, v.(ClockTime), st.opt)
	case tagUUID:
		return serializeUUID(w, v.(uuid.UUID))
	case tagFragment:
		return serializeFragment(w, v.(Fragment))
	case tagEnum:
		return st.encodeEnum(w, v, nest)
	case tagStruct:
		if st.opt.has(OptPassthroughStruct) {
			return st.encodeFallback(w, v, nest)
		}
		return st.encodeStruct(w, v, nest)
	case tagArray:
		if st.opt.has(OptSerializeNumpyLike) {
			return st.encodeNumericArray(w, v, nest)
		}
		return st.encodeReflectSlice(w, v, nest)
	default:
		return st.encodeFallback(w, v, nest)
	}
}

// encodeEnum recurses on v's EnumValue() result, spec.md §4.8's Enum
// strategy ("recurse on .value").
func (st *encodeState) encodeEnum(w *outbuf.Writer, v any, nest int) *EncodeError {
	ev := v.(enumValuer)
	return st.encodeValue(w, ev.EnumValue(), nest)
}

// encodeFallback consults the caller-supplied fallback callable,
// recursing on its result, spec.md §4.8's "falling back to Unknown ->
// user-supplied fallback callable".
func (st *encodeState) encodeFallback(w *outbuf.Writer, v any, nest int) *EncodeError {
	if st.fallback == nil {
		return newEncodeErrorf(ErrUnsupportedType, "unsupported type %T", v).
			withContext("type", typeName(v))
	}
	if st.fallbackLeft <= 0 {
		return newEncodeError(ErrDefaultRecursionLimit, "fallback callable recursion limit exceeded")
	}
	st.fallbackLeft--

	replacement, err := st.fallback(v)
	if err != nil {
		return wrapEncodeError(err, ErrUnsupportedType, "fallback callable failed").
			withContext("type", typeName(v))
	}
	return st.encodeValue(w, replacement, nest)
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
