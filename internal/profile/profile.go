// Package profile provides named, reusable generation request bundles:
// built-in presets plus user profiles under ~/.passmith/profiles.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/avezina/passmith/internal/policy"
)

// Profile is a named generation request. The embedded request is merged the
// same way the defaults file is: unset fields keep their built-in defaults.
type Profile struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Policy      policy.Request `yaml:"policy"`
}

// Load loads a profile by name. Checks built-in profiles first, then falls
// back to ~/.passmith/profiles/<name>.yaml.
func Load(name string) (*Profile, error) {
	if data, ok := builtinProfiles[name]; ok {
		p := newProfile()
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse built-in profile %q: %w", name, err)
		}
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("profile %q not found (no built-in, cannot determine home dir)", name)
	}

	path := filepath.Join(home, ".passmith", "profiles", name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile %q not found", name)
	}

	p := newProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %q: %w", name, err)
	}

	return p, nil
}

// newProfile seeds the request with defaults so sparse profile files stay
// valid.
func newProfile() *Profile {
	return &Profile{Policy: policy.DefaultRequest()}
}

// List returns sorted names of all available profiles (built-in + user).
func List() []string {
	seen := make(map[string]bool)
	for name := range builtinProfiles {
		seen[name] = true
	}

	home, err := os.UserHomeDir()
	if err == nil {
		dir := filepath.Join(home, ".passmith", "profiles")
		entries, err := os.ReadDir(dir)
		if err == nil {
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				name := e.Name()
				if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
					seen[name[:len(name)-len(ext)]] = true
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that a profile is well-formed and that its request would
// pass policy validation.
func Validate(p *Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if _, err := policy.Validate(p.Policy); err != nil {
		return fmt.Errorf("profile %q carries an unsatisfiable request: %w", p.Name, err)
	}
	return nil
}
