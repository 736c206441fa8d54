// Package table holds the ordered substitution table used to build
// leetspeak-style word variants.
//
// A Table maps a token (usually one lowercase letter, sometimes a short
// cluster such as "ph" or "cks") to an ordered list of candidate strings that
// visually stand in for it:
//
//	a   → 4  /-\  @  ^  /\  //-\\  /=\
//	ph  → f  |>]-[
//
// Why an ordered table?
//
//	Variant generation folds over the tokens in table order, and later tokens
//	may rewrite text produced by earlier ones. Iteration order is therefore
//	part of the observable contract and the Table never relies on Go map order.
//
// Invariants:
//
//   - No token maps to an empty list; a token whose list empties is removed.
//   - Candidates of one token are unique (first occurrence wins).
//   - When an allowed-character set is configured every candidate consists of
//     allowed characters only. The filter re-runs after every mutation.
//
// Failure model:
//
//	Table operations never fail. Disallowed candidates are dropped silently,
//	unknown tokens read as an empty list and empty tokens are ignored. Dropped
//	candidates can be observed through WithLogger at debug level.
//
// Usage:
//
//	t := table.New(table.WithAllowedCharacters("abcdefghijklmnopqrstuvwxyz0123456789"))
//	t.Add("a", "4", "@")
//	fmt.Println(t.Get("a")) // [4]
//
// Custom tables are read and written as YAML (see Decode, LoadFile, Encode):
//
//	- token: a
//	  candidates: ['4', '@']
//
// Concurrency:
//
//	All methods are safe for concurrent use; a single sync.RWMutex guards the
//	entries and the allowed-character set.
package table
