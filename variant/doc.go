// Package variant generates leetspeak-style spellings of a word from an
// ordered substitution table.
//
// 🚀 What does it produce?
//
//	Given "leet" and the default table, Generate returns the original word
//	plus spellings such as "|eet", "l33t", "|3e7" and "1337"-like mixes: every
//	contiguous span is substituted once, and the untouched flanks left and
//	right of the span are expanded recursively.
//
// Algorithm Outline (n = rune length of word):
//
//  1. For every span length l = 1..n and offset i = 0..n-l:
//  2. span  = word[i : i+l]
//     left  = word[0 : max(i-1, 0)]
//     right = word[min(i+l+1, n) : n]
//     The flanks stop one character short of the span on each side.
//  3. Recursively generate the variants of left and right.
//  4. Substitute the span by folding over the table: for each token in table
//     order and each of its candidates in order, replace every occurrence of
//     the token in the running text with the candidate.
//  5. Splice the substituted span into the word (wordVariant) and keep it.
//  6. Keep wordVariant with its left region replaced by every left variant.
//  7. Keep wordVariant with its right region replaced by every right variant.
//  8. Deduplicate, first occurrence wins; the original word comes first.
//
// Behavioural contract:
//
//   - The ±1 gap between span and flanks is part of the output definition.
//   - Steps 6 and 7 splice at offsets measured on the original word. When the
//     substituted span changed length those offsets are clamped to the new
//     string, so a right-flank splice may overlap substituted text.
//   - Step 4 is a fold: a later token can rewrite text produced by an earlier
//     one, and once a token is replaced its later candidates find nothing.
//
// Character model:
//
//	Words are indexed by rune, so no multi-byte character is ever split. For
//	ASCII input rune and byte offsets coincide.
//
// Complexity:
//
//	Combinatorial in word length and table breadth. Flank results are
//	memoised per call, but the result set itself grows quickly: keep inputs to
//	single words and bound them with WithMaxLength + Check.
//
// Usage:
//
//	gen := variant.New(table.New())
//	for _, v := range gen.Generate("leet") {
//		fmt.Println(v)
//	}
package variant
