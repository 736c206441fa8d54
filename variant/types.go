// SPDX-License-Identifier: MIT
// Package: wordvariant/variant
//
// types.go — Source contract, Generator, options and sentinel errors.

package variant

import (
	"errors"

	"github.com/katalvlaran/wordvariant/table"
)

// ErrWordTooLong indicates a word longer than the configured WithMaxLength.
var ErrWordTooLong = errors.New("variant: word exceeds maximum length")

// Source supplies the ordered substitution entries. *table.Table satisfies it.
//
// All is called once per top-level Generate call; the returned snapshot is
// used for the whole call, including recursion.
type Source interface {
	All() []table.Entry
}

// Static is a fixed Source backed by a slice.
type Static []table.Entry

// All implements Source.
func (s Static) All() []table.Entry { return s }

// Generator produces word variants from a Source.
// It holds no mutable state and is safe for concurrent use when its Source is.
type Generator struct {
	src       Source
	maxLength int // 0 = unbounded
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxLength sets the rune length above which Check rejects a word.
// Zero disables the bound. Panics on negative n.
func WithMaxLength(n int) Option {
	if n < 0 {
		panic("variant: WithMaxLength(n<0)")
	}
	return func(g *Generator) { g.maxLength = n }
}
