// SPDX-License-Identifier: MIT
// Package: wordvariant/table
//
// codec.go — YAML reading and writing of tables.
//
// Document shape (a sequence keeps token order explicit):
//
//	- token: a
//	  candidates: ['4', '@']
//	- token: ph
//	  candidates: [f]
//
// Unquoted scalars decode as their literal text, so `4` and '4' both load as
// the candidate "4".

package table

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML table document. An empty document yields no entries.
//
// Errors:
//   - ErrDecode: malformed YAML or unknown fields.
//   - ErrEmptyToken: an entry has no token (the error names its position).
func Decode(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	for i, e := range entries {
		if e.Token == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyToken)
		}
	}

	return entries, nil
}

// LoadFile decodes the YAML table stored at path.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}

// Encode writes the table, in order, as a YAML document Decode can read.
func (t *Table) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.All()); err != nil {
		return fmt.Errorf("table: encode: %w", err)
	}

	return enc.Close()
}
