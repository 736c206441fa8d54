// Package wordvariant generates leetspeak-style visual variants of words:
// alternative spellings that swap letters for look-alike character sequences
// ("a" → "4", "@", "/\"), optionally limited to an allowed character set.
//
// 🚀 What is it for?
//
//	Building fuzzy-match dictionaries where obfuscated spellings of a word must
//	be recognised: profanity filters, username blocklists, search-term
//	expansion.
//
// Under the hood, everything is organized under two packages:
//
//	table/   — ordered token → candidates table, allowed-character filter,
//	           built-in default data and YAML codec
//	variant/ — recursive span-substitution generator over a table snapshot
//
// and a command-line front end:
//
//	cmd/wordvariant — generate | get | dump, configured by WORDVARIANT_* variables
//
// Quick example:
//
//	gen := variant.New(table.New())
//	gen.Generate("leet") // [leet |eet |e3t |ee7 ... |337]
//
// No hidden globals: tables and generators are constructed and passed
// explicitly, and a Table may be shared between goroutines.
//
//	go get github.com/katalvlaran/wordvariant
package wordvariant
