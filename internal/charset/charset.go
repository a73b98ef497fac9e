// Package charset defines the character classes passwords are composed from
// and the filtering applied to them before sampling.
package charset

// Class identifies a category of candidate characters.
type Class string

const (
	Lower  Class = "lower"
	Upper  Class = "upper"
	Digit  Class = "digit"
	Symbol Class = "symbol"
	Custom Class = "custom"
)

// Builtin candidate tables. Immutable — Candidates always hands out a copy.
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// Ambiguous lists glyphs that are easy to misread when a password is copied
// by hand: zero vs capital O, one vs lowercase L vs capital I, pipe, and the
// quote characters that tend to break shell pasting.
const Ambiguous = "0O1lI|`'\""

// Standard is the evaluation order for the four builtin classes. Validation
// and generation walk classes in this order so output is reproducible for a
// fixed seed.
var Standard = []Class{Lower, Upper, Digit, Symbol}

// Candidates returns a fresh copy of the builtin candidate set for a class.
// Custom has no builtin table and returns nil; its candidates come from user
// input.
func Candidates(c Class) []rune {
	switch c {
	case Lower:
		return []rune(lowerChars)
	case Upper:
		return []rune(upperChars)
	case Digit:
		return []rune(digitChars)
	case Symbol:
		return []rune(symbolChars)
	default:
		return nil
	}
}

// Dedup removes duplicate runes preserving first-seen order.
func Dedup(rs []rune) []rune {
	seen := make(map[rune]bool, len(rs))
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// ExcludeSet builds a lookup set from a string of characters to exclude.
func ExcludeSet(chars string) map[rune]bool {
	set := make(map[rune]bool, len(chars))
	for _, r := range chars {
		set[r] = true
	}
	return set
}

// Filter returns the runes of set not present in excluded, preserving order.
func Filter(set []rune, excluded map[rune]bool) []rune {
	if len(excluded) == 0 {
		return set
	}
	out := make([]rune, 0, len(set))
	for _, r := range set {
		if !excluded[r] {
			out = append(out, r)
		}
	}
	return out
}

// Union merges candidate sets into one deduplicated pool, preserving the
// order sets were given in.
func Union(sets ...[]rune) []rune {
	var merged []rune
	for _, s := range sets {
		merged = append(merged, s...)
	}
	return Dedup(merged)
}

// Contains reports whether r is in set.
func Contains(set []rune, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
