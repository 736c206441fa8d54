// SPDX-License-Identifier: MIT
// Package: wordvariant/table
//
// types.go — Entry, Table, functional options and sentinel errors.

package table

import (
	"errors"
	"log/slog"
	"sync"
)

// Sentinel errors returned by the codec. Table mutations never return errors.
var (
	// ErrEmptyToken indicates a decoded entry without a token.
	ErrEmptyToken = errors.New("table: entry token is empty")

	// ErrDecode indicates the input is not a valid YAML table document.
	ErrDecode = errors.New("table: cannot decode table")
)

var discard = slog.New(slog.DiscardHandler)

// Entry is one token together with its ordered candidates.
type Entry struct {
	// Token is the literal text being substituted, e.g. "a" or "ph".
	Token string `yaml:"token"`

	// Candidates are the replacement strings, in preference order.
	Candidates []string `yaml:"candidates"`
}

// Table is an order-preserving token → candidates mapping with an optional
// allowed-character restriction.
//
// tokens keeps insertion order; entries holds the candidate lists.
// allowed is nil when no restriction is configured.
//
// The zero value is an empty, unrestricted table ready for use; New is only
// needed for the default data or options.
type Table struct {
	mu sync.RWMutex

	tokens  []string
	entries map[string][]string

	allowed     map[rune]struct{}
	allowedText string

	log *slog.Logger
}

// Option configures a Table at construction time.
type Option func(*tableConfig)

type tableConfig struct {
	entries     []Entry
	useDefaults bool
	allowed     *string
	log         *slog.Logger
}

// WithAllowedCharacters restricts every candidate to the characters of chars.
func WithAllowedCharacters(chars string) Option {
	return func(c *tableConfig) { c.allowed = &chars }
}

// WithEntries seeds the table with entries instead of the built-in defaults.
func WithEntries(entries []Entry) Option {
	return func(c *tableConfig) {
		c.entries = entries
		c.useDefaults = false
	}
}

// WithoutDefaults starts from an empty table.
func WithoutDefaults() Option {
	return func(c *tableConfig) {
		c.entries = nil
		c.useDefaults = false
	}
}

// WithLogger sets the logger that receives debug records for dropped
// candidates. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("table: WithLogger(nil)")
	}
	return func(c *tableConfig) { c.log = l }
}
