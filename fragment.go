// fragment.go: pre-serialized byte splice type
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

// Fragment wraps bytes that are already valid JSON and should be spliced
// verbatim into the output instead of being classified and re-encoded.
// The engine does not validate the contents — an invalid Fragment
// produces invalid output, per spec.md §4.8's "Fragment" strategy.
type Fragment []byte

// RawFragment constructs a Fragment from a byte slice. The caller is
// responsible for the contents being valid JSON; gojson only checks that
// the slice is non-empty (an empty Fragment is rejected at encode time
// with ErrInvalidFragment, since splicing nothing is never what a caller
// wants and silently emitting nothing would produce unparseable output
// wherever the fragment is used as a value).
func RawFragment(b []byte) Fragment {
	return Fragment(b)
}

// RawFragmentString is the string-argument convenience form of RawFragment.
func RawFragmentString(s string) Fragment {
	return Fragment(s)
}
