// Package passmith provides in-process password and passphrase generation
// for Go programs. It validates a composition policy (length, per-class
// minimums, exclusions), then samples from a cryptographically secure source
// with rejection sampling so no character is favored.
//
// Usage:
//
//	pm, err := passmith.New(passmith.WithProfile("strong"))
//	secrets, err := pm.Generate(passmith.Length(24), passmith.Count(3))
//
// Policies that cannot be satisfied return a *PolicyError; they are never
// silently weakened. Deterministic seeding is not part of this API — every
// call draws from the operating system's randomness.
//
// The SDK links directly against internal packages for zero-subprocess
// overhead. External users import github.com/avezina/passmith/sdk/go/passmith.
package passmith
