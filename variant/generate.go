// SPDX-License-Identifier: MIT
// Package: wordvariant/variant
//
// generate.go — recursive span substitution.
//
// Recursion is on strictly shorter flanks of the current word, so depth is
// bounded by the word's rune length.

package variant

import (
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/katalvlaran/wordvariant/table"
)

// New returns a Generator reading substitutions from src. Panics on nil src.
func New(src Source, opts ...Option) *Generator {
	if src == nil {
		panic("variant: New(nil source)")
	}
	g := &Generator{src: src}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns the distinct variants of word in generation order, the
// original word first. An empty word yields an empty result.
//
// Generate never fails; see Check for bounding input length.
func (g *Generator) Generate(word string) []string {
	if word == "" {
		return []string{}
	}
	r := run{
		entries: g.src.All(),
		memo:    make(map[string][]string),
	}
	out := r.generate([]rune(word))

	return append([]string(nil), out...)
}

// GenerateEach runs Generate for every word. Repeated words share one entry.
func (g *Generator) GenerateEach(words []string) map[string][]string {
	out := make(map[string][]string, len(words))
	for _, w := range lo.Uniq(words) {
		out[w] = g.Generate(w)
	}

	return out
}

// Substitute applies the table fold to span once, without recursion.
func (g *Generator) Substitute(span string) string {
	return substitute(span, g.src.All())
}

// Check reports ErrWordTooLong when word exceeds the WithMaxLength bound.
func (g *Generator) Check(word string) error {
	n := utf8.RuneCountInString(word)
	if g.maxLength > 0 && n > g.maxLength {
		return fmt.Errorf("%w: %d runes, limit %d", ErrWordTooLong, n, g.maxLength)
	}

	return nil
}

// run carries the table snapshot and flank memo of one Generate call.
type run struct {
	entries []table.Entry
	memo    map[string][]string
}

func (r *run) generate(word []rune) []string {
	n := len(word)
	if n == 0 {
		return nil
	}
	key := string(word)
	if cached, ok := r.memo[key]; ok {
		return cached
	}

	variants := []string{key}
	for l := 1; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			leftStart, leftLen := 0, max(i-1, 0)
			rightStart := min(i+l+1, n)
			rightLen := n - rightStart

			leftVariants := r.generate(word[leftStart : leftStart+leftLen])
			rightVariants := r.generate(word[rightStart : rightStart+rightLen])

			replaced := []rune(substitute(string(word[i:i+l]), r.entries))
			wordVariant := splice(word, i, l, replaced)
			variants = append(variants, string(wordVariant))

			for _, lv := range leftVariants {
				variants = append(variants, string(splice(wordVariant, leftStart, leftLen, []rune(lv))))
			}
			for _, rv := range rightVariants {
				variants = append(variants, string(splice(wordVariant, rightStart, rightLen, []rune(rv))))
			}
		}
	}

	out := lo.Uniq(variants)
	r.memo[key] = out

	return out
}
