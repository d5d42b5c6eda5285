// gojson-fmt: CLI tool for validating and reformatting JSON using gojson
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	version = "1.0.0"
	usage   = `gojson-fmt - Validate and reformat JSON using gojson

USAGE:
    gojson-fmt [OPTIONS]

EXAMPLES:
    # Reformat a single file
    gojson-fmt -i data.json -o out.json

    # Stream from stdin to stdout
    cat data.json | gojson-fmt > out.json

    # Batch reformat a directory
    gojson-fmt -i in/ -o out/ -r

OPTIONS:
`
)

// Config carries the CLI's parsed flags, the same role the teacher's
// Config struct plays for iris-export.
type Config struct {
	Input     string
	Output    string
	Recursive bool
	Pretty    bool
	SortKeys  bool
	Verbose   bool
	Version   bool
}

func main() {
	config := parseFlags()

	if config.Version {
		fmt.Printf("gojson-fmt version %s\n", version)
		os.Exit(0)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.Input, "i", "", "Input file or directory (use '-' or empty for stdin)")
	flag.StringVar(&config.Input, "input", "", "Input file or directory (use '-' or empty for stdin)")
	flag.StringVar(&config.Output, "o", "", "Output file or directory (use '-' or empty for stdout)")
	flag.StringVar(&config.Output, "output", "", "Output file or directory (use '-' or empty for stdout)")
	flag.BoolVar(&config.Recursive, "r", false, "Recursively process directories")
	flag.BoolVar(&config.Recursive, "recursive", false, "Recursively process directories")
	flag.BoolVar(&config.Pretty, "p", false, "Pretty-print with a 2-space indent")
	flag.BoolVar(&config.Pretty, "pretty", false, "Pretty-print with a 2-space indent")
	flag.BoolVar(&config.SortKeys, "s", false, "Sort object keys")
	flag.BoolVar(&config.SortKeys, "sort-keys", false, "Sort object keys")
	flag.BoolVar(&config.Verbose, "v", false, "Verbose output")
	flag.BoolVar(&config.Verbose, "verbose", false, "Verbose output")
	flag.BoolVar(&config.Version, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	return config
}

func run(config *Config) error {
	if config.Input == "" || config.Input == "-" {
		if config.Verbose {
			fmt.Fprintf(os.Stderr, "Reading from stdin...\n")
		}
		return convertStream(os.Stdin, os.Stdout, config)
	}

	info, err := os.Stat(config.Input)
	if err != nil {
		return fmt.Errorf("input path not found: %v", err)
	}

	if info.IsDir() {
		if config.Output == "" || config.Output == "-" {
			return fmt.Errorf("directory input requires output directory")
		}
		batchProcessor := NewBatchProcessor(config)
		return batchProcessor.ProcessDirectory(config.Input, config.Output)
	}

	if config.Output == "" || config.Output == "-" {
		input, err := os.Open(config.Input)
		if err != nil {
			return fmt.Errorf("failed to open input file: %v", err)
		}
		defer input.Close()

		if config.Verbose {
			fmt.Fprintf(os.Stderr, "Converting %s to stdout...\n", config.Input)
		}
		return convertStream(input, os.Stdout, config)
	}

	return convertFile(config.Input, config.Output, config)
}

func convertStream(input io.Reader, output io.Writer, config *Config) error {
	converter := NewConverter(config.Pretty, config.SortKeys)
	return converter.Convert(input, output)
}

func convertFile(inputPath, outputPath string, config *Config) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %v", err)
	}
	defer input.Close()

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %v", err)
		}
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer output.Close()

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Converting %s -> %s\n", inputPath, outputPath)
	}

	return convertStream(input, output, config)
}
