// unmarshal.go: top-level deserializer entry point (spec.md §2, §7)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

// Unmarshal materializes data into an `any` graph: map[string]any,
// []any, string, float64/int64/uint64, bool, or nil — the Go realization of
// spec.md §4.9's Materializer. opt is validated but, aside from future
// decode-relevant bits, does not currently change decode behavior; it is
// accepted for API symmetry with Marshal and forward compatibility.
func Unmarshal(data []byte, opt Option) (any, error) {
	return unmarshal(data, opt, false)
}

// UnmarshalWithDatetimeHint behaves like Unmarshal but additionally
// recognizes strings shaped like strict RFC-3339 datetimes and
// materializes them as time.Time instead of string — the opt-in decode
// hint SPEC_FULL.md §9 adds beyond spec.md's distilled scope. Default
// Unmarshal never does this, so spec.md's "string in, string out"
// invariant still holds for ordinary callers.
func UnmarshalWithDatetimeHint(data []byte, opt Option) (any, error) {
	return unmarshal(data, opt, true)
}

func unmarshal(data []byte, opt Option, parseDates bool) (any, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, newDecodeError(ErrEmptyInput, "input is empty")
	}

	d := newDecodeState(data, parseDates)
	d.skipWhitespace()
	v, err := d.parseValue()
	if err != nil {
		return nil, err
	}
	d.skipWhitespace()
	if d.pos != len(d.data) {
		return nil, d.errorf(ErrTrailingGarbage, "trailing garbage after top-level value")
	}
	return v, nil
}
