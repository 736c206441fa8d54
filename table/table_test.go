package table_test

import (
	"testing"

	"github.com/katalvlaran/wordvariant/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultTokens is the documented order of the built-in table.
var defaultTokens = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"ph", "cks",
}

// TestNew_Defaults verifies the built-in data is loaded in order.
func TestNew_Defaults(t *testing.T) {
	tbl := table.New()

	require.Equal(t, defaultTokens, tbl.Tokens())
	assert.Equal(t, 28, tbl.Len())
	assert.Equal(t, []string{"4", `/-\`, "@", "^", `/\`, `//-\\`, `/=\`}, tbl.Get("a"))
	assert.Equal(t, []string{"f", "|>]-["}, tbl.Get("ph"))
	assert.Equal(t, []string{"xx"}, tbl.Get("cks"))
	assert.Contains(t, tbl.Get("b"), "13", "numeric candidates are stored as text")
	assert.Contains(t, tbl.Get("t"), "']'", "quotes survive the data file")
	assert.Contains(t, tbl.Get("t"), `"|"`)
	assert.Contains(t, tbl.Get("y"), "'/")
}

// TestNew_WithoutDefaults starts from an empty table.
func TestNew_WithoutDefaults(t *testing.T) {
	tbl := table.New(table.WithoutDefaults())

	assert.Zero(t, tbl.Len())
	assert.Empty(t, tbl.All())
}

// TestNew_WithEntries seeds the table and still applies the restriction,
// regardless of option order.
func TestNew_WithEntries(t *testing.T) {
	entries := []table.Entry{
		{Token: "t", Candidates: []string{"7", "+"}},
		{Token: "e", Candidates: []string{"3"}},
	}

	tbl := table.New(table.WithAllowedCharacters("+3"), table.WithEntries(entries))
	assert.Equal(t, []string{"t", "e"}, tbl.Tokens())
	assert.Equal(t, []string{"+"}, tbl.Get("t"))

	// caller's slice is not retained
	entries[1].Candidates[0] = "X"
	assert.Equal(t, []string{"3"}, tbl.Get("e"))
}

// TestGet_Unknown returns an empty, non-nil slice.
func TestGet_Unknown(t *testing.T) {
	tbl := table.New()

	got := tbl.Get("A")
	assert.NotNil(t, got)
	assert.Empty(t, got, "token matching is case-sensitive")
	assert.Empty(t, tbl.Get("nope"))
}

// TestGet_ReturnsCopy ensures callers cannot mutate the table through Get.
func TestGet_ReturnsCopy(t *testing.T) {
	tbl := table.New()

	got := tbl.Get("a")
	got[0] = "mutated"
	assert.Equal(t, "4", tbl.Get("a")[0])
}

// TestAdd_Idempotent checks duplicate insertion keeps a single copy.
func TestAdd_Idempotent(t *testing.T) {
	tbl := table.New(table.WithoutDefaults())

	tbl.Add("a", "4")
	tbl.Add("a", "4")
	assert.Equal(t, []string{"4"}, tbl.Get("a"))

	tbl = table.New()
	tbl.Add("a", "4")
	tbl.Add("a", "4")
	assert.Equal(t, 1, countOf(tbl.Get("a"), "4"))
}

// TestAdd_Many accepts several candidates at once and appends new tokens last.
func TestAdd_Many(t *testing.T) {
	tbl := table.New(table.WithoutDefaults())

	tbl.Add("o", "0", "()", "0")
	tbl.Add("a", "4")
	tbl.Add("o", "[]")

	assert.Equal(t, []string{"o", "a"}, tbl.Tokens(), "existing tokens keep their position")
	assert.Equal(t, []string{"0", "()", "[]"}, tbl.Get("o"))
}

// TestAdd_EmptyInputs covers the silent no-op paths.
func TestAdd_EmptyInputs(t *testing.T) {
	tbl := table.New(table.WithoutDefaults())

	tbl.Add("", "4")
	tbl.Add("a")
	assert.Zero(t, tbl.Len(), "empty token and empty candidate list add nothing")

	tbl.Add("e", "")
	assert.Equal(t, []string{""}, tbl.Get("e"), "an empty candidate is a valid deletion substitute")
}

// TestZeroValue checks that a zero Table behaves as an empty one.
func TestZeroValue(t *testing.T) {
	var tbl table.Table

	assert.Equal(t, []string{}, tbl.Get("a"))
	assert.Zero(t, tbl.Len())
	assert.Empty(t, tbl.All())

	tbl.Add("a", "4", "@")
	tbl.Add("b", "8")
	assert.Equal(t, []string{"a", "b"}, tbl.Tokens())
	assert.Equal(t, []string{"4", "@"}, tbl.Get("a"))

	tbl.SetAllowedCharacters("4")
	assert.Equal(t, []string{"a"}, tbl.Tokens(), "b loses its only candidate")
	assert.Equal(t, []string{"4"}, tbl.Get("a"))

	clone := tbl.Clone()
	require.True(t, tbl.Remove("a"))
	assert.Zero(t, tbl.Len())
	assert.Equal(t, []string{"4"}, clone.Get("a"))
}

// TestAdd_Disallowed drops candidates outside the allowed set.
func TestAdd_Disallowed(t *testing.T) {
	tbl := table.New(table.WithAllowedCharacters("leetrs"))
	assert.Zero(t, tbl.Len(), "no default candidate is spelled with l, e, t, r, s only")

	tbl.Add("t", "7")
	assert.Empty(t, tbl.Get("t"), "digit is outside the set")

	tbl.Add("t", "7", "+", "ee", "es")
	assert.Equal(t, []string{"ee", "es"}, tbl.Get("t"))
}

// TestAdd_RemovesTokenLeftEmpty covers Add on a token that ends up empty.
func TestAdd_RemovesTokenLeftEmpty(t *testing.T) {
	tbl := table.New(table.WithoutDefaults(), table.WithAllowedCharacters("4"))

	tbl.Add("a", "@")
	assert.Zero(t, tbl.Len())
	assert.NotContains(t, tbl.Map(), "a")
}

// TestRemove deletes tokens and reports presence.
func TestRemove(t *testing.T) {
	tbl := table.New()

	assert.True(t, tbl.Remove("ph"))
	assert.False(t, tbl.Remove("ph"))
	assert.NotContains(t, tbl.Tokens(), "ph")
	assert.Equal(t, "cks", tbl.Tokens()[tbl.Len()-1])
}

// TestAll_OrderedDeepCopy verifies All returns an independent snapshot.
func TestAll_OrderedDeepCopy(t *testing.T) {
	tbl := table.New()

	all := tbl.All()
	require.Len(t, all, 28)
	for i, e := range all {
		assert.Equal(t, defaultTokens[i], e.Token)
	}

	all[0].Candidates[0] = "mutated"
	assert.Equal(t, "4", tbl.Get("a")[0])
}

// TestMap mirrors All without order.
func TestMap(t *testing.T) {
	tbl := table.New()

	m := tbl.Map()
	assert.Len(t, m, 28)
	assert.Equal(t, tbl.Get("x"), m["x"])
}

// TestReplaceAll overwrites, merges duplicates, dedupes and re-filters.
func TestReplaceAll(t *testing.T) {
	tbl := table.New(table.WithAllowedCharacters("0123456789|"))

	tbl.ReplaceAll([]table.Entry{
		{Token: "z", Candidates: []string{"2", "7_"}},
		{Token: "", Candidates: []string{"1"}},
		{Token: "l", Candidates: []string{"|", "1", "|"}},
		{Token: "q", Candidates: nil},
		{Token: "z", Candidates: []string{"2", "3"}},
		{Token: "w", Candidates: []string{"vv"}},
	})

	require.Equal(t, []string{"z", "l"}, tbl.Tokens())
	assert.Equal(t, []string{"2", "3"}, tbl.Get("z"))
	assert.Equal(t, []string{"|", "1"}, tbl.Get("l"))
}

// TestReplaceAll_Unrestricted still prunes empty candidate lists.
func TestReplaceAll_Unrestricted(t *testing.T) {
	tbl := table.New()

	tbl.ReplaceAll([]table.Entry{
		{Token: "q", Candidates: []string{}},
		{Token: "o", Candidates: []string{"0"}},
	})

	assert.Equal(t, []string{"o"}, tbl.Tokens())
}

// TestClone makes sure clones evolve independently.
func TestClone(t *testing.T) {
	tbl := table.New(table.WithAllowedCharacters("0123456789"))
	clone := tbl.Clone()

	clone.Add("x", "8")
	clone.ClearAllowedCharacters()
	clone.Add("y", "j")

	assert.Empty(t, tbl.Get("x"))
	assert.Empty(t, tbl.Get("y"))
	assert.Equal(t, []string{"8"}, clone.Get("x"))

	chars, restricted := tbl.AllowedCharacters()
	assert.True(t, restricted)
	assert.Equal(t, "0123456789", chars)
	assert.True(t, tbl.Allows("42"))
	assert.False(t, tbl.Allows("4a"))
}

func countOf(list []string, v string) int {
	n := 0
	for _, s := range list {
		if s == v {
			n++
		}
	}

	return n
}
