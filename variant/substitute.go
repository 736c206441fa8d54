// SPDX-License-Identifier: MIT
// Package: wordvariant/variant
//
// substitute.go — the non-recursive span substitution (step 4).

package variant

import (
	"strings"

	"github.com/katalvlaran/wordvariant/table"
)

// substitute folds entries over span: each candidate of each token, in order,
// replaces every occurrence of the token in the text produced so far.
func substitute(span string, entries []table.Entry) string {
	for _, e := range entries {
		if e.Token == "" {
			continue
		}
		for _, c := range e.Candidates {
			span = strings.ReplaceAll(span, e.Token, c)
		}
	}

	return span
}

// splice returns s with s[start : start+length] replaced by rep. Offsets past
// the end of s are clamped to its length.
func splice(s []rune, start, length int, rep []rune) []rune {
	start = min(start, len(s))
	end := min(start+length, len(s))

	out := make([]rune, 0, len(s)-(end-start)+len(rep))
	out = append(out, s[:start]...)
	out = append(out, rep...)

	return append(out, s[end:]...)
}
