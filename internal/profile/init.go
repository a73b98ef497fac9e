package profile

import "fmt"

// InitProfile returns a commented YAML starter template for a new profile.
func InitProfile(name string) string {
	return fmt.Sprintf(`name: %s
description: Custom generation profile

# The policy block mirrors the defaults file: unset fields keep their
# built-in defaults. Validate with: passmith profile check %s
policy:
  length: 16
  count: 1
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
  # custom:
  #   chars: "#+-"
  #   min: 1
  # exclude: "@$"
  # no_ambiguous: true
`, name, name)
}
