// converter.go: JSON re-encoding logic, driving gojson's own codec
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/agilira/gojson"
)

// Converter reads newline-delimited JSON values and re-emits each one
// through gojson's own Marshal/Unmarshal, exercising the codec end to
// end — the tool's equivalent of the teacher's BinaryToJSONConverter,
// minus the binary-log-specific parsing this domain has no use for.
type Converter struct {
	pretty   bool
	sortKeys bool
}

// NewConverter creates a Converter with the given output options.
func NewConverter(pretty, sortKeys bool) *Converter {
	return &Converter{pretty: pretty, sortKeys: sortKeys}
}

// Convert reads one JSON value per line from input and writes its
// reformatted form to output, one per line.
func (c *Converter) Convert(input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var opt gojson.Option
	if c.pretty {
		opt |= gojson.OptIndent2
	}
	if c.sortKeys {
		opt |= gojson.OptSortKeys
	}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		value, err := gojson.UnmarshalWithDatetimeHint(line, 0)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		out, err := gojson.Marshal(value, opt|gojson.OptAppendNewline)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		if _, err := output.Write(out); err != nil {
			return fmt.Errorf("line %d: failed to write output: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
