// SPDX-License-Identifier: MIT
// Package: wordvariant/table
//
// defaults.go — the built-in substitution data.

package table

import (
	"bytes"
	_ "embed"
)

// defaultData covers the 26 Latin letters followed by the "ph" and "cks"
// clusters. Every candidate is a quoted YAML string so numeric-looking
// entries such as '4' stay text.
//
//go:embed data/default.yaml
var defaultData []byte

// defaultEntries is decoded once at package load time.
var defaultEntries = mustDecode(defaultData)

// Defaults returns a fresh copy of the built-in entries, in table order.
func Defaults() []Entry {
	return cloneEntries(defaultEntries)
}

func mustDecode(data []byte) []Entry {
	entries, err := Decode(bytes.NewReader(data))
	if err != nil {
		panic("table: embedded default data: " + err.Error())
	}

	return entries
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Token: e.Token, Candidates: append([]string(nil), e.Candidates...)}
	}

	return out
}
