package charset

import "testing"

func TestCandidatesDisjoint(t *testing.T) {
	seen := make(map[rune]Class)
	for _, c := range Standard {
		for _, r := range Candidates(c) {
			if prev, ok := seen[r]; ok {
				t.Errorf("rune %q appears in both %s and %s", r, prev, c)
			}
			seen[r] = c
		}
	}
}

func TestCandidatesReturnsCopy(t *testing.T) {
	a := Candidates(Lower)
	a[0] = 'X'
	b := Candidates(Lower)
	if b[0] != 'a' {
		t.Error("mutating a returned candidate set leaked into the builtin table")
	}
}

func TestCandidatesCustomNil(t *testing.T) {
	if got := Candidates(Custom); got != nil {
		t.Errorf("expected nil candidates for custom class, got %q", string(got))
	}
}

func TestDedupPreservesOrder(t *testing.T) {
	got := Dedup([]rune("abcabcxa"))
	if string(got) != "abcx" {
		t.Errorf("expected abcx, got %q", string(got))
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		set     string
		exclude string
		want    string
	}{
		{"no exclusions", "abc", "", "abc"},
		{"drop middle", "abc", "b", "ac"},
		{"drop all", "ab", "ab", ""},
		{"exclusion not present", "abc", "xyz", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter([]rune(tt.set), ExcludeSet(tt.exclude))
			if string(got) != tt.want {
				t.Errorf("Filter(%q, %q) = %q, want %q", tt.set, tt.exclude, string(got), tt.want)
			}
		})
	}
}

func TestUnionDedups(t *testing.T) {
	got := Union([]rune("abc"), []rune("bcd"), []rune("a"))
	if string(got) != "abcd" {
		t.Errorf("expected abcd, got %q", string(got))
	}
}

func TestAmbiguousGlyphsExistInBuiltins(t *testing.T) {
	// The letter/digit lookalikes must belong to a builtin class, otherwise
	// the exclusion is dead weight. The quoting glyphs only matter for
	// custom classes and are not in any builtin table.
	all := Union(Candidates(Lower), Candidates(Upper), Candidates(Digit), Candidates(Symbol))
	for _, r := range "0O1lI" {
		if !Contains(all, r) {
			t.Errorf("ambiguous glyph %q not found in any builtin class", r)
		}
	}
}
