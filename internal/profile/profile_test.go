package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avezina/passmith/internal/charset"
	"github.com/avezina/passmith/internal/policy"
)

func TestBuiltinProfilesValidate(t *testing.T) {
	for name := range builtinProfiles {
		p, err := Load(name)
		if err != nil {
			t.Errorf("failed to load built-in profile %q: %v", name, err)
			continue
		}
		if p.Name != name {
			t.Errorf("profile %q declares name %q", name, p.Name)
		}
		if p.Description == "" {
			t.Errorf("profile %q has no description", name)
		}
		if err := Validate(p); err != nil {
			t.Errorf("built-in profile %q does not validate: %v", name, err)
		}
	}
}

func TestLoadPin(t *testing.T) {
	p, err := Load("pin")
	if err != nil {
		t.Fatalf("failed to load pin profile: %v", err)
	}
	if p.Policy.Length != 6 {
		t.Errorf("expected length 6, got %d", p.Policy.Length)
	}
	if p.Policy.Lower.Enabled || p.Policy.Upper.Enabled || p.Policy.Symbols.Enabled {
		t.Error("pin profile should enable digits only")
	}
	if !p.Policy.Digits.Enabled {
		t.Error("pin profile should enable digits")
	}
}

func TestLoadHexUsesCustomClass(t *testing.T) {
	p, err := Load("hex")
	if err != nil {
		t.Fatalf("failed to load hex profile: %v", err)
	}
	pol, err := policy.Validate(p.Policy)
	if err != nil {
		t.Fatalf("hex profile does not validate: %v", err)
	}
	if len(pol.Pool) != 16 {
		t.Errorf("expected 16 hex candidates, got %d", len(pol.Pool))
	}
	if len(pol.Required) != 1 || pol.Required[0].Class != charset.Custom {
		t.Errorf("expected one required custom class, got %+v", pol.Required)
	}
}

func TestLoadUnknownProfile(t *testing.T) {
	if _, err := Load("nonexistent-profile"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestListIncludesBuiltins(t *testing.T) {
	names := List()
	for _, want := range []string{"default", "strong", "pin"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %q in profile list, got %v", want, names)
		}
	}
}

func TestLoadUserProfile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".passmith", "profiles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `name: work
description: workplace policy
policy:
  length: 14
  symbols:
    enabled: false
    min: 0
`
	if err := os.WriteFile(filepath.Join(dir, "work.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load("work")
	if err != nil {
		t.Fatalf("failed to load user profile: %v", err)
	}
	if p.Policy.Length != 14 {
		t.Errorf("expected length 14, got %d", p.Policy.Length)
	}
	// Sparse file: unset fields keep defaults.
	if !p.Policy.Lower.Enabled || p.Policy.Lower.Min != 1 {
		t.Error("unset lower class should keep defaults")
	}
	if p.Policy.Symbols.Enabled {
		t.Error("symbols should be disabled")
	}

	names := List()
	found := false
	for _, n := range names {
		if n == "work" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected user profile in list, got %v", names)
	}
}

func TestValidateRejectsBadProfile(t *testing.T) {
	p := newProfile()
	if err := Validate(p); err == nil {
		t.Error("expected error for missing name")
	}

	p = newProfile()
	p.Name = "broken"
	p.Policy.Length = 2
	p.Policy.Digits.Min = 5
	if err := Validate(p); err == nil {
		t.Error("expected error for unsatisfiable request")
	}
}

func TestInitProfileTemplateParses(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".passmith", "profiles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "starter.yaml"), []byte(InitProfile("starter")), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load("starter")
	if err != nil {
		t.Fatalf("template does not load: %v", err)
	}
	if err := Validate(p); err != nil {
		t.Errorf("template does not validate: %v", err)
	}
}
