package generate

import (
	"math"
	"strings"
	"testing"

	"github.com/avezina/passmith/internal/charset"
	"github.com/avezina/passmith/internal/policy"
)

func mustValidate(t *testing.T, req policy.Request) *policy.Policy {
	t.Helper()
	p, err := policy.Validate(req)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	return p
}

func countClass(pw string, class charset.Class) int {
	n := 0
	for _, r := range pw {
		if charset.Contains(charset.Candidates(class), r) {
			n++
		}
	}
	return n
}

func TestAllClassesCovered(t *testing.T) {
	// 12 characters, all four classes required with min 1, three passwords.
	req := policy.DefaultRequest()
	req.Length = 12
	req.Count = 3

	pws, err := New(mustValidate(t, req)).Passwords()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(pws) != 3 {
		t.Fatalf("expected 3 passwords, got %d", len(pws))
	}

	for _, pw := range pws {
		if len([]rune(pw)) != 12 {
			t.Errorf("password %q has length %d, want 12", pw, len([]rune(pw)))
		}
		for _, class := range charset.Standard {
			if countClass(pw, class) < 1 {
				t.Errorf("password %q missing class %s", pw, class)
			}
		}
	}
}

func TestMinimumsHonored(t *testing.T) {
	req := policy.DefaultRequest()
	req.Length = 20
	req.Digits.Min = 5
	req.Symbols.Min = 3
	req.Count = 50

	pws, err := New(mustValidate(t, req)).Passwords()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, pw := range pws {
		if n := countClass(pw, charset.Digit); n < 5 {
			t.Errorf("password %q has %d digits, want >= 5", pw, n)
		}
		if n := countClass(pw, charset.Symbol); n < 3 {
			t.Errorf("password %q has %d symbols, want >= 3", pw, n)
		}
	}
}

func TestExcludedCharactersNeverAppear(t *testing.T) {
	// Digits only, length 8, 0 and 1 excluded.
	req := policy.Request{
		Length:  8,
		Count:   20,
		Digits:  policy.ClassRequest{Enabled: true, Min: 1},
		Exclude: "01",
	}

	pws, err := New(mustValidate(t, req)).Passwords()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, pw := range pws {
		if len(pw) != 8 {
			t.Errorf("password %q has length %d, want 8", pw, len(pw))
		}
		if strings.ContainsAny(pw, "01") {
			t.Errorf("password %q contains an excluded digit", pw)
		}
		for _, r := range pw {
			if r < '2' || r > '9' {
				t.Errorf("password %q contains non-digit %q", pw, r)
			}
		}
	}
}

func TestSeededReproducible(t *testing.T) {
	seed := uint64(12345)
	req := policy.DefaultRequest()
	req.Count = 5
	req.Seed = &seed

	first, err := New(mustValidate(t, req)).Passwords()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := New(mustValidate(t, req)).Passwords()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("seeded run diverged at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestUnseededRunsDiffer(t *testing.T) {
	req := policy.DefaultRequest()
	req.Length = 24

	a, err := New(mustValidate(t, req)).Passwords()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := New(mustValidate(t, req)).Passwords()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// 24 characters over a ~90 rune pool: collision probability is
	// negligible.
	if a[0] == b[0] {
		t.Errorf("two unseeded runs produced identical output %q", a[0])
	}
}

func TestMinimumsFillEntireLength(t *testing.T) {
	// Length fully claimed by minimums: the fill loop must not run, so an
	// empty fill pool is fine.
	req := policy.Request{
		Length: 4,
		Count:  10,
		Upper:  policy.ClassRequest{Enabled: true, Min: 4, NoFill: true},
	}

	pws, err := New(mustValidate(t, req)).Passwords()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, pw := range pws {
		if len(pw) != 4 {
			t.Errorf("password %q has length %d, want 4", pw, len(pw))
		}
		if n := countClass(pw, charset.Upper); n != 4 {
			t.Errorf("password %q has %d uppercase, want 4", pw, n)
		}
	}
}

func TestCoverageNotClusteredAtFront(t *testing.T) {
	// One required digit in a long lowercase password. Without the shuffle
	// the digit would always land at position 0.
	req := policy.Request{
		Length: 32,
		Count:  200,
		Lower:  policy.ClassRequest{Enabled: true},
		Digits: policy.ClassRequest{Enabled: true, Min: 1, NoFill: true},
	}

	pws, err := New(mustValidate(t, req)).Passwords()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	firstIsDigit := 0
	for _, pw := range pws {
		if pw[0] >= '0' && pw[0] <= '9' {
			firstIsDigit++
		}
	}
	// Expected ~200/32 ≈ 6. All 200 would mean no shuffle.
	if firstIsDigit > 100 {
		t.Errorf("required digit clustered at position 0 in %d/200 passwords", firstIsDigit)
	}
}

func TestEstimate(t *testing.T) {
	req := policy.Request{
		Length: 8,
		Count:  1,
		Digits: policy.ClassRequest{Enabled: true, Min: 1},
	}
	got := Estimate(mustValidate(t, req))
	want := 8 * math.Log2(10)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Estimate = %f, want %f", got, want)
	}
}
