package passmith

import (
	"fmt"
	"math"

	"github.com/avezina/passmith/internal/generate"
	"github.com/avezina/passmith/internal/policy"
	"github.com/avezina/passmith/internal/profile"
	"github.com/avezina/passmith/internal/random"
	"github.com/avezina/passmith/internal/wordlist"
)

// Client holds the base policy that every call starts from. Calls are
// stateless, so a Client is safe for concurrent use.
type Client struct {
	base policy.Request
}

// New creates a Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := clientConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	base, err := policy.LoadConfig(cfg.configPath)
	if err != nil {
		return nil, fmt.Errorf("passmith: failed to load defaults: %w", err)
	}

	if cfg.profileName != "" {
		prof, err := profile.Load(cfg.profileName)
		if err != nil {
			return nil, fmt.Errorf("passmith: failed to load profile %q: %w", cfg.profileName, err)
		}
		base = prof.Policy
	}

	// Embedders always draw from the secure source.
	base.Seed = nil

	return &Client{base: base}, nil
}

// Generate returns passwords satisfying the client's policy plus any
// per-call adjustments. Unsatisfiable policies return a *PolicyError.
func (c *Client) Generate(opts ...GenOption) ([]string, error) {
	pol, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	return generate.New(pol).Passwords()
}

// Estimate returns the entropy in bits of one password under the client's
// policy plus any per-call adjustments, without generating anything.
func (c *Client) Estimate(opts ...GenOption) (float64, error) {
	pol, err := c.resolve(opts)
	if err != nil {
		return 0, err
	}
	return generate.Estimate(pol), nil
}

// Passphrase draws words uniformly from the built-in 256-word list and
// joins them with sep.
func (c *Client) Passphrase(words int, sep string) (string, error) {
	return wordlist.Passphrase(wordlist.Default(), words, sep, random.Secure())
}

// PassphraseEntropy returns the entropy in bits of a passphrase with the
// given word count.
func (c *Client) PassphraseEntropy(words int) float64 {
	return float64(words) * math.Log2(float64(len(wordlist.Default())))
}

// Profiles lists the available profile names, built-in and user.
func (c *Client) Profiles() []string {
	return profile.List()
}

// resolve applies per-call options to a copy of the base request and
// validates the result.
func (c *Client) resolve(opts []GenOption) (*policy.Policy, error) {
	var g genConfig
	for _, o := range opts {
		o(&g)
	}

	req := c.base
	if g.length != nil {
		req.Length = *g.length
	}
	if g.count != nil {
		req.Count = *g.count
	}
	if g.exclude != nil {
		req.Exclude = *g.exclude
	}
	if g.noAmbiguous != nil {
		req.NoAmbiguous = *g.noAmbiguous
	}
	if g.symbols != nil {
		req.Symbols.Enabled = *g.symbols
		if !*g.symbols {
			req.Symbols.Min = 0
		}
	}

	pol, err := policy.Validate(req)
	if err != nil {
		return nil, toPolicyError(err)
	}
	return pol, nil
}
