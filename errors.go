// errors.go: structured encode/decode errors for gojson
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"fmt"

	"github.com/agilira/go-errors"
)

// Encode error codes — one per spec.md §7 "Encode" taxonomy entry.
const (
	ErrUnsupportedType       errors.ErrorCode = "GOJSON_UNSUPPORTED_TYPE"
	ErrIntegerRange          errors.ErrorCode = "GOJSON_INTEGER_RANGE"
	ErrInvalidUTF8           errors.ErrorCode = "GOJSON_INVALID_UTF8"
	ErrNonStringKey          errors.ErrorCode = "GOJSON_NON_STRING_KEY"
	ErrRecursionLimit        errors.ErrorCode = "GOJSON_RECURSION_LIMIT"
	ErrDefaultRecursionLimit errors.ErrorCode = "GOJSON_DEFAULT_RECURSION_LIMIT"
	ErrTZAwareTime           errors.ErrorCode = "GOJSON_TZ_AWARE_TIME"
	ErrUnsupportedArray      errors.ErrorCode = "GOJSON_UNSUPPORTED_ARRAY"
	ErrInvalidFragment       errors.ErrorCode = "GOJSON_INVALID_FRAGMENT"
	ErrInvalidConfig         errors.ErrorCode = "GOJSON_INVALID_CONFIG"
)

// Decode error codes — one per spec.md §7 "Decode" taxonomy entry.
const (
	ErrEmptyInput        errors.ErrorCode = "GOJSON_EMPTY_INPUT"
	ErrInvalidLiteral    errors.ErrorCode = "GOJSON_INVALID_LITERAL"
	ErrInvalidNumber     errors.ErrorCode = "GOJSON_INVALID_NUMBER"
	ErrNumberRange       errors.ErrorCode = "GOJSON_NUMBER_RANGE"
	ErrUnexpectedChar    errors.ErrorCode = "GOJSON_UNEXPECTED_CHAR"
	ErrUnterminated      errors.ErrorCode = "GOJSON_UNTERMINATED"
	ErrTrailingGarbage   errors.ErrorCode = "GOJSON_TRAILING_GARBAGE"
	ErrInvalidEscape     errors.ErrorCode = "GOJSON_INVALID_ESCAPE"
	ErrUnpairedSurrogate errors.ErrorCode = "GOJSON_UNPAIRED_SURROGATE"
)

// EncodeError is returned by Marshal for every failure described in
// spec.md §7's "Encode" taxonomy. It wraps *errors.Error so callers get
// a stable ErrorCode, an optional Cause (set when the error originated
// inside a fallback callable), and free-form Context (type name,
// offending field, etc.).
type EncodeError struct{ *errors.Error }

// DecodeError is returned by Unmarshal for every failure described in
// spec.md §7's "Decode" taxonomy. Context always carries "offset",
// "line", and "column" once the tokenizer has consumed at least one byte.
type DecodeError struct{ *errors.Error }

func newEncodeError(code errors.ErrorCode, message string) *EncodeError {
	return &EncodeError{errors.New(code, message)}
}

func newEncodeErrorf(code errors.ErrorCode, format string, args ...any) *EncodeError {
	return newEncodeError(code, fmt.Sprintf(format, args...))
}

func wrapEncodeError(cause error, code errors.ErrorCode, message string) *EncodeError {
	return &EncodeError{errors.Wrap(cause, code, message)}
}

func newDecodeError(code errors.ErrorCode, message string) *DecodeError {
	return &DecodeError{errors.New(code, message)}
}

func newDecodeErrorf(code errors.ErrorCode, format string, args ...any) *DecodeError {
	return newDecodeError(code, fmt.Sprintf(format, args...))
}

// withContext attaches a key/value pair and returns the receiver,
// mirroring the teacher's fluent errors.go helpers (NewLoggerError,
// WrapLoggerError) so call sites can chain position info inline.
func (e *EncodeError) withContext(key string, value any) *EncodeError {
	_ = e.Error.WithContext(key, value)
	return e
}

func (e *DecodeError) withContext(key string, value any) *DecodeError {
	_ = e.Error.WithContext(key, value)
	return e
}

// atPosition attaches byte offset, line, and column to a DecodeError, as
// required by spec.md §7 ("Every error carries line, column, and a
// 1-based byte offset"). offset is the tokenizer's 0-based position and
// is stored 1-based.
func (e *DecodeError) atPosition(offset, line, column int) *DecodeError {
	return e.withContext("offset", offset+1).withContext("line", line).withContext("column", column)
}

// IsErrorCode reports whether err is a gojson error (encode or decode)
// carrying the given code, mirroring the teacher's IsLoggerError helper.
func IsErrorCode(err error, code errors.ErrorCode) bool {
	return errors.HasCode(err, code)
}
