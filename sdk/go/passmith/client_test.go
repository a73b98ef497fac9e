package passmith

import (
	"strings"
	"testing"
)

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func requireRejected(t *testing.T, err error) *PolicyError {
	t.Helper()
	if err == nil {
		t.Fatal("expected policy to be rejected, got nil error")
	}
	rejected, ok := err.(*PolicyError)
	if !ok {
		t.Fatalf("expected *PolicyError, got %T: %v", err, err)
	}
	return rejected
}

func TestNewDefault(t *testing.T) {
	c := newTestClient(t)

	secrets, err := c.Generate()
	if err != nil {
		t.Fatalf("Generate() with defaults should succeed: %v", err)
	}
	if len(secrets) != 1 {
		t.Fatalf("expected 1 password, got %d", len(secrets))
	}
	if len(secrets[0]) != 16 {
		t.Errorf("default length = %d, want 16", len(secrets[0]))
	}
}

func TestNewWithProfile(t *testing.T) {
	c := newTestClient(t, WithProfile("pin"))

	secrets, err := c.Generate()
	if err != nil {
		t.Fatalf("Generate() with pin profile: %v", err)
	}
	if len(secrets[0]) != 6 {
		t.Errorf("pin length = %d, want 6", len(secrets[0]))
	}
	for _, r := range secrets[0] {
		if r < '0' || r > '9' {
			t.Errorf("pin profile produced non-digit %q", r)
		}
	}
}

func TestNewBadProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := New(WithProfile("nonexistent-profile-xyz"))
	if err == nil {
		t.Fatal("expected error for nonexistent profile")
	}
}

func TestGenerateOptions(t *testing.T) {
	c := newTestClient(t)

	secrets, err := c.Generate(Length(24), Count(3), Symbols(false), Exclude("aeiouAEIOU"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(secrets) != 3 {
		t.Fatalf("expected 3 passwords, got %d", len(secrets))
	}
	for _, s := range secrets {
		if len(s) != 24 {
			t.Errorf("length = %d, want 24", len(s))
		}
		if strings.ContainsAny(s, "aeiouAEIOU") {
			t.Errorf("password %q contains excluded character", s)
		}
	}
}

func TestGenerateUnsatisfiable(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Generate(Length(2))
	rejected := requireRejected(t, err)
	if rejected.Reason != LengthTooShort {
		t.Errorf("Reason = %q, want %q", rejected.Reason, LengthTooShort)
	}
}

func TestEstimate(t *testing.T) {
	c := newTestClient(t)

	bits, err := c.Estimate(Length(16))
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	// Default pool has 87 characters: 16 * log2(87) ≈ 103 bits.
	if bits < 100 || bits > 110 {
		t.Errorf("Estimate = %.1f bits, expected ~103", bits)
	}
}

func TestPassphrase(t *testing.T) {
	c := newTestClient(t)

	phrase, err := c.Passphrase(4, "-")
	if err != nil {
		t.Fatalf("Passphrase: %v", err)
	}
	if got := len(strings.Split(phrase, "-")); got != 4 {
		t.Errorf("word count = %d, want 4", got)
	}

	if bits := c.PassphraseEntropy(4); bits != 32 {
		t.Errorf("PassphraseEntropy(4) = %.0f, want 32 (256-word list)", bits)
	}
}

func TestProfiles(t *testing.T) {
	c := newTestClient(t)

	names := c.Profiles()
	found := false
	for _, n := range names {
		if n == "default" {
			found = true
		}
	}
	if !found {
		t.Errorf("Profiles() = %v, missing %q", names, "default")
	}
}
