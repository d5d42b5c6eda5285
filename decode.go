// decode.go: recursive-descent tokenizer/driver and materializer
// (spec.md §4.7, §4.9)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import "github.com/agilira/go-errors"

// decodeMaxDepth bounds container nesting during deserialization,
// spec.md §4.7's recursion budget.
const decodeMaxDepth = 1024

// decodeState is the tokenizer/driver's cursor over the input, carrying
// everything a single Unmarshal call needs: position for error
// reporting, remaining recursion budget, and the optional datetime-hint
// switch (SPEC_FULL.md §9).
type decodeState struct {
	data       []byte
	pos        int
	line       int
	col        int
	depth      int
	parseDates bool
}

func newDecodeState(data []byte, parseDates bool) *decodeState {
	return &decodeState{data: data, line: 1, col: 1, parseDates: parseDates}
}

// errorf builds a DecodeError carrying the current byte offset, line,
// and column, per spec.md §7's "every error carries line, column, and a
// 1-based byte offset".
func (d *decodeState) errorf(code errors.ErrorCode, format string, args ...any) *DecodeError {
	return newDecodeErrorf(code, format, args...).atPosition(d.pos, d.line, d.col)
}

// advance consumes n bytes from the cursor, updating line/column
// bookkeeping as it crosses newlines.
func (d *decodeState) advance(n int) {
	for i := 0; i < n; i++ {
		if d.data[d.pos] == '\n' {
			d.line++
			d.col = 1
		} else {
			d.col++
		}
		d.pos++
	}
}

// peek returns the current byte without consuming it, and ok=false at EOF.
func (d *decodeState) peek() (byte, bool) {
	if d.pos >= len(d.data) {
		return 0, false
	}
	return d.data[d.pos], true
}

func (d *decodeState) skipWhitespace() {
	for d.pos < len(d.data) {
		switch d.data[d.pos] {
		case ' ', '\t', '\r', '\n':
			d.advance(1)
		default:
			return
		}
	}
}

// parseValue dispatches on the next byte to the matching grammar
// nonterminal, spec.md §4.9's "each grammar nonterminal directly calls
// the matching materializer callback".
func (d *decodeState) parseValue() (any, error) {
	b, ok := d.peek()
	if !ok {
		return nil, d.errorf(ErrUnexpectedChar, "unexpected end of input")
	}
	switch {
	case b == '{':
		return d.parseObject()
	case b == '[':
		return d.parseArray()
	case b == '"':
		s, err := d.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		if d.parseDates {
			if t, ok := parseRFC3339Hint(s); ok {
				return t, nil
			}
		}
		return s, nil
	case b == 't':
		return true, d.expectLiteral("true")
	case b == 'f':
		return false, d.expectLiteral("false")
	case b == 'n':
		return nil, d.expectLiteral("null")
	case b == '-' || (b >= '0' && b <= '9'):
		return d.parseNumber()
	default:
		return nil, d.errorf(ErrUnexpectedChar, "unexpected character %q", b)
	}
}

// expectLiteral consumes one of the fixed literals "true"/"false"/"null".
func (d *decodeState) expectLiteral(lit string) error {
	if d.pos+len(lit) > len(d.data) || string(d.data[d.pos:d.pos+len(lit)]) != lit {
		return d.errorf(ErrInvalidLiteral, "invalid literal, expected %q", lit)
	}
	d.advance(len(lit))
	return nil
}

// parseObject materializes a JSON object into map[string]any, spec.md
// §4.9's Materializer "map" case, interning keys via the key cache.
func (d *decodeState) parseObject() (any, error) {
	d.advance(1) // '{'
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > decodeMaxDepth {
		return nil, d.errorf(ErrRecursionLimit, "max recursion depth exceeded")
	}

	m := make(map[string]any)
	d.skipWhitespace()
	if b, ok := d.peek(); ok && b == '}' {
		d.advance(1)
		return m, nil
	}

	for {
		d.skipWhitespace()
		b, ok := d.peek()
		if !ok || b != '"' {
			return nil, d.errorf(ErrUnexpectedChar, "expected object key")
		}
		keyRaw, err := d.parseStringKey()
		if err != nil {
			return nil, err
		}

		d.skipWhitespace()
		b, ok = d.peek()
		if !ok || b != ':' {
			return nil, d.errorf(ErrUnexpectedChar, "expected ':' after object key")
		}
		d.advance(1)
		d.skipWhitespace()

		val, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		m[keyRaw] = val

		d.skipWhitespace()
		b, ok = d.peek()
		if !ok {
			return nil, d.errorf(ErrUnterminated, "unterminated object")
		}
		if b == ',' {
			d.advance(1)
			continue
		}
		if b == '}' {
			d.advance(1)
			return m, nil
		}
		return nil, d.errorf(ErrUnexpectedChar, "expected ',' or '}' in object")
	}
}

// parseArray materializes a JSON array into []any, spec.md §4.9's
// Materializer "list" case.
func (d *decodeState) parseArray() (any, error) {
	d.advance(1) // '['
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > decodeMaxDepth {
		return nil, d.errorf(ErrRecursionLimit, "max recursion depth exceeded")
	}

	items := make([]any, 0, 4)
	d.skipWhitespace()
	if b, ok := d.peek(); ok && b == ']' {
		d.advance(1)
		return items, nil
	}

	for {
		d.skipWhitespace()
		val, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, val)

		d.skipWhitespace()
		b, ok := d.peek()
		if !ok {
			return nil, d.errorf(ErrUnterminated, "unterminated array")
		}
		if b == ',' {
			d.advance(1)
			continue
		}
		if b == ']' {
			d.advance(1)
			return items, nil
		}
		return nil, d.errorf(ErrUnexpectedChar, "expected ',' or ']' in array")
	}
}
