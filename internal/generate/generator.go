// Package generate produces passwords satisfying a validated policy.
package generate

import (
	"math"

	"github.com/avezina/passmith/internal/policy"
	"github.com/avezina/passmith/internal/random"
)

// Generator draws passwords from an immutable policy. Each password in a
// multi-count run is an independent trial; nothing is shared across draws
// except the policy and the entropy source.
type Generator struct {
	policy *policy.Policy
	src    random.Source
}

// New builds a generator with the entropy source the policy calls for: the
// secure source by default, the seeded deterministic source only when the
// policy explicitly carries a seed.
func New(p *policy.Policy) *Generator {
	src := random.Secure()
	if p.Seed != nil {
		src = random.Seeded(*p.Seed)
	}
	return &Generator{policy: p, src: src}
}

// NewWithSource builds a generator over an explicit source.
func NewWithSource(p *policy.Policy, src random.Source) *Generator {
	return &Generator{policy: p, src: src}
}

// Passwords generates exactly policy.Count passwords. A source failure
// aborts the whole run; partial output is never returned.
func (g *Generator) Passwords() ([]string, error) {
	out := make([]string, 0, g.policy.Count)
	for i := 0; i < g.policy.Count; i++ {
		pw, err := g.password()
		if err != nil {
			return nil, err
		}
		out = append(out, pw)
	}
	return out, nil
}

func (g *Generator) password() (string, error) {
	p := g.policy
	chars := make([]rune, 0, p.Length)

	// Required coverage first, so the random fill below can never violate a
	// class minimum. Draws are with replacement — repeats within a class
	// are allowed.
	for _, spec := range p.Required {
		for k := 0; k < spec.Min; k++ {
			idx, err := g.src.IntN(len(spec.Candidates))
			if err != nil {
				return "", err
			}
			chars = append(chars, spec.Candidates[idx])
		}
	}

	// Fill the remaining positions from the union pool.
	for len(chars) < p.Length {
		idx, err := g.src.IntN(len(p.FillPool))
		if err != nil {
			return "", err
		}
		chars = append(chars, p.FillPool[idx])
	}

	// Without this shuffle the coverage characters would always occupy the
	// leading positions — a detectable, weakening bias.
	if err := random.Shuffle(chars, g.src); err != nil {
		return "", err
	}

	return string(chars), nil
}

// Estimate returns the entropy of one password in bits:
// length × log2(pool size), using the post-exclusion pool.
func Estimate(p *policy.Policy) float64 {
	return float64(p.Length) * math.Log2(float64(len(p.Pool)))
}
