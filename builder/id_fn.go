// SPDX-License-Identifier: MIT
// Package: iglsynth/builder
//
// id_fn.go - vertex ID schemes.
//
// An IDFn must be pure: the same index always yields the same ID, and distinct
// indices yield distinct IDs. Negative indices never reach an IDFn.

package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal form of idx: 0->"0", 42->"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns spreadsheet-column letters: 0->"A", 25->"Z", 26->"AA", 27->"AB".
func SymbolIDFn(idx int) string {
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// SymbolNumberIDFn returns prefix + decimal index: "s0", "s1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
