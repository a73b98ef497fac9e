package policy

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigError marks a defaults file that exists but cannot be used. The CLI
// maps it to its own exit status (EX_CONFIG).
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LoadConfig loads user defaults from a YAML file, merged over the built-in
// defaults. Empty path falls back to ~/.passmith/config.yaml. A missing file
// returns the built-in defaults; a malformed file is an error.
func LoadConfig(path string) (Request, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultRequest(), nil
		}
		path = filepath.Join(home, ".passmith", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRequest(), nil
		}
		return Request{}, &ConfigError{Path: path, Err: err}
	}

	// Start with defaults, YAML overwrites only specified fields.
	req := DefaultRequest()
	if err := yaml.Unmarshal(data, &req); err != nil {
		return Request{}, &ConfigError{Path: path, Err: err}
	}

	// A seed in the defaults file would silently make every run
	// deterministic. Refuse it.
	if req.Seed != nil {
		return Request{}, &ConfigError{Path: path, Err: fmt.Errorf("seed is not allowed in the defaults file")}
	}

	return req, nil
}

// DefaultConfigYAML returns a commented YAML string for init-config.
func DefaultConfigYAML() string {
	return `# passmith defaults
# Generated by: passmith init-config
#
# Every field here can be overridden per run with flags.
# Omitted fields keep their built-in defaults.

# Password length and how many passwords to emit per run.
length: 16
count: 1

# Character classes.
#   enabled: the class's characters are in play
#   min:     characters the class must contribute to every password
#            (0 = pool-only, the class never has to appear)
#   no_fill: the class contributes exactly min characters and is kept
#            out of the general fill pool
lower:
  enabled: true
  min: 1
upper:
  enabled: true
  min: 1
digits:
  enabled: true
  min: 1
symbols:
  enabled: true
  min: 1

# A user-supplied class. Enabled when chars is non-empty.
# custom:
#   chars: "#+-"
#   min: 1

# Characters removed from every class before sampling.
# exclude: "@$"

# Also exclude visually ambiguous glyphs (0 O 1 l I, pipe, quotes).
# no_ambiguous: true

# A seed is deliberately NOT accepted here: it would silently make every
# password deterministic. Use --seed per run for reproducible tests.
`
}
