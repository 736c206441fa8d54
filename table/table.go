// SPDX-License-Identifier: MIT
// Package: wordvariant/table
//
// table.go — construction, queries and mutations.
//
// Ordering:
//   - New tokens are appended; Add on an existing token keeps its position.
//   - ReplaceAll adopts the caller's order; duplicate tokens merge into the
//     first occurrence.
//
// Every mutation ends with filterLocked so the invariants in doc.go hold
// whenever the lock is released.

package table

import (
	"log/slog"

	"github.com/samber/lo"
)

// New builds a Table seeded with the built-in default data unless
// WithEntries or WithoutDefaults says otherwise.
//
// Complexity: O(T·C) where T is the token count and C the candidates per token.
func New(opts ...Option) *Table {
	cfg := tableConfig{
		useDefaults: true,
		log:         discard,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{
		entries: make(map[string][]string),
		log:     cfg.log,
	}
	if cfg.allowed != nil {
		t.restrictLocked(*cfg.allowed)
	}

	seed := cfg.entries
	if cfg.useDefaults {
		seed = Defaults()
	}
	t.replaceLocked(seed)

	return t
}

// Get returns a copy of the candidates for token, or an empty slice when the
// token is absent.
func (t *Table) Get(token string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	list, ok := t.entries[token]
	if !ok {
		return []string{}
	}

	return append([]string(nil), list...)
}

// Add merges candidates into token's list. Disallowed candidates are dropped,
// duplicates collapse onto their first occurrence, and a token left without
// candidates is removed.
func (t *Table) Add(token string, candidates ...string) {
	if token == "" {
		t.logger().Debug("ignoring empty token", slog.Int("candidates", len(candidates)))
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.entries == nil {
		t.entries = make(map[string][]string)
	}
	current, exists := t.entries[token]
	list := append([]string(nil), current...)
	for _, c := range candidates {
		if !t.allows(c) {
			t.dropped(token, c)
			continue
		}
		list = append(list, c)
	}
	list = lo.Uniq(list)

	if len(list) == 0 {
		if exists {
			t.removeLocked(token)
		}
		return
	}
	if !exists {
		t.tokens = append(t.tokens, token)
	}
	t.entries[token] = list
}

// Remove deletes token and reports whether it was present.
func (t *Table) Remove(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.entries[token]; !ok {
		return false
	}
	t.removeLocked(token)

	return true
}

// All returns an ordered deep copy of the table.
func (t *Table) All() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return lo.Map(t.tokens, func(tok string, _ int) Entry {
		return Entry{Token: tok, Candidates: append([]string(nil), t.entries[tok]...)}
	})
}

// Map returns the table as a plain map. The map does not carry token order;
// use All when order matters.
func (t *Table) Map() map[string][]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string][]string, len(t.entries))
	for tok, list := range t.entries {
		out[tok] = append([]string(nil), list...)
	}

	return out
}

// Tokens returns the tokens in table order.
func (t *Table) Tokens() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]string(nil), t.tokens...)
}

// Len returns the number of tokens.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.tokens)
}

// ReplaceAll swaps the whole table for entries and re-applies the
// allowed-character filter.
func (t *Table) ReplaceAll(entries []Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.replaceLocked(entries)
}

// Clone returns an independent deep copy sharing only the logger.
func (t *Table) Clone() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()

	clone := &Table{
		tokens:      append([]string(nil), t.tokens...),
		entries:     make(map[string][]string, len(t.entries)),
		allowedText: t.allowedText,
		log:         t.log,
	}
	for tok, list := range t.entries {
		clone.entries[tok] = append([]string(nil), list...)
	}
	if t.allowed != nil {
		clone.allowed = make(map[rune]struct{}, len(t.allowed))
		for r := range t.allowed {
			clone.allowed[r] = struct{}{}
		}
	}

	return clone
}

// replaceLocked rebuilds tokens and entries from entries. Caller holds mu
// (or owns t exclusively).
func (t *Table) replaceLocked(entries []Entry) {
	t.tokens = nil
	t.entries = make(map[string][]string, len(entries))

	for _, e := range entries {
		if e.Token == "" {
			t.logger().Debug("ignoring empty token", slog.Int("candidates", len(e.Candidates)))
			continue
		}
		if _, seen := t.entries[e.Token]; !seen {
			t.tokens = append(t.tokens, e.Token)
		}
		t.entries[e.Token] = append(t.entries[e.Token], e.Candidates...)
	}
	for tok, list := range t.entries {
		t.entries[tok] = lo.Uniq(list)
	}

	t.filterLocked()
}

// logger tolerates the zero Table, which has no logger until New sets one.
func (t *Table) logger() *slog.Logger {
	if t.log == nil {
		return discard
	}

	return t.log
}

func (t *Table) removeLocked(token string) {
	delete(t.entries, token)
	t.tokens = lo.Without(t.tokens, token)
	t.logger().Debug("token removed", slog.String("token", token))
}
