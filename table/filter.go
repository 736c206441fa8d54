// SPDX-License-Identifier: MIT
// Package: wordvariant/table
//
// filter.go — allowed-character restriction.
//
// The filter is destructive: candidates dropped under a narrow set do not
// come back when the set is widened or cleared. Reload the data (ReplaceAll)
// to start over.

package table

import (
	"log/slog"

	"github.com/samber/lo"
)

// SetAllowedCharacters restricts candidates to the characters of chars and
// immediately filters the table. An empty string allows nothing.
func (t *Table) SetAllowedCharacters(chars string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.restrictLocked(chars)
	t.filterLocked()
}

// SetAllowedRunes is SetAllowedCharacters for a collection of characters.
func (t *Table) SetAllowedRunes(chars []rune) {
	t.SetAllowedCharacters(string(chars))
}

// ClearAllowedCharacters removes the restriction. Candidates already dropped
// are not restored.
func (t *Table) ClearAllowedCharacters() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.allowed = nil
	t.allowedText = ""
}

// AllowedCharacters returns the configured characters and whether a
// restriction is active.
func (t *Table) AllowedCharacters() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.allowedText, t.allowed != nil
}

// Allows reports whether candidate passes the current restriction.
func (t *Table) Allows(candidate string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.allows(candidate)
}

func (t *Table) restrictLocked(chars string) {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	t.allowed = set
	t.allowedText = chars
}

func (t *Table) allows(candidate string) bool {
	if t.allowed == nil {
		return true
	}

	return lo.EveryBy([]rune(candidate), func(r rune) bool {
		_, ok := t.allowed[r]
		return ok
	})
}

// filterLocked drops disallowed candidates and then empty tokens. Without a
// restriction it only prunes tokens that have no candidates.
func (t *Table) filterLocked() {
	kept := make([]string, 0, len(t.tokens))
	for _, tok := range t.tokens {
		list := lo.Filter(t.entries[tok], func(c string, _ int) bool {
			if t.allows(c) {
				return true
			}
			t.dropped(tok, c)
			return false
		})
		if len(list) == 0 {
			delete(t.entries, tok)
			t.logger().Debug("token removed", slog.String("token", tok))
			continue
		}
		t.entries[tok] = list
		kept = append(kept, tok)
	}
	t.tokens = kept
}

func (t *Table) dropped(token, candidate string) {
	t.logger().Debug("candidate dropped",
		slog.String("token", token),
		slog.String("candidate", candidate),
		slog.String("reason", "character outside allowed set"),
	)
}
