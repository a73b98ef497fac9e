// Package policy turns raw generation requests into validated, immutable
// generation policies, or rejects them with a precise diagnostic.
package policy

import (
	"fmt"

	"github.com/avezina/passmith/internal/charset"
)

// ClassRequest configures one character class in a raw request.
type ClassRequest struct {
	// Enabled puts the class's characters in play.
	Enabled bool `yaml:"enabled"`
	// Min is the number of characters this class must contribute to every
	// password. Zero means the class is pool-only.
	Min int `yaml:"min"`
	// NoFill keeps the class out of the general fill pool: it contributes
	// exactly Min characters and nothing more.
	NoFill bool `yaml:"no_fill,omitempty"`
}

// CustomRequest configures a user-supplied character class.
type CustomRequest struct {
	// Chars is the candidate set. Empty means the class is disabled.
	Chars  string `yaml:"chars,omitempty"`
	Min    int    `yaml:"min,omitempty"`
	NoFill bool   `yaml:"no_fill,omitempty"`
}

// Request is the raw, possibly contradictory user input to validation.
// It is YAML-serializable so profiles and the defaults file can carry one.
type Request struct {
	Length      int           `yaml:"length"`
	Count       int           `yaml:"count"`
	Lower       ClassRequest  `yaml:"lower"`
	Upper       ClassRequest  `yaml:"upper"`
	Digits      ClassRequest  `yaml:"digits"`
	Symbols     ClassRequest  `yaml:"symbols"`
	Custom      CustomRequest `yaml:"custom,omitempty"`
	Exclude     string        `yaml:"exclude,omitempty"`
	NoAmbiguous bool          `yaml:"no_ambiguous,omitempty"`
	// Seed switches generation to a deterministic, NON-SECURE source.
	// Reproducible testing only — never set it for real secrets.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// DefaultRequest returns the built-in defaults: 16 characters, all four
// standard classes enabled with a minimum of one each, one password.
func DefaultRequest() Request {
	one := ClassRequest{Enabled: true, Min: 1}
	return Request{
		Length:  16,
		Count:   1,
		Lower:   one,
		Upper:   one,
		Digits:  one,
		Symbols: one,
	}
}

// ClassSpec is one required class inside a validated policy.
type ClassSpec struct {
	Class      charset.Class
	Candidates []rune
	Min        int
}

// Policy is a validated, read-only generation specification. Construct it
// only through Validate.
type Policy struct {
	Length int
	Count  int
	// Required holds classes with Min > 0 in stable evaluation order.
	Required []ClassSpec
	// FillPool is the post-exclusion union of fill-eligible classes.
	FillPool []rune
	// Pool is the post-exclusion union of all enabled classes. Entropy
	// estimates use its size.
	Pool []rune
	Seed *uint64
}

// MinSum is the total number of characters the required classes claim.
func (p *Policy) MinSum() int {
	sum := 0
	for _, spec := range p.Required {
		sum += spec.Min
	}
	return sum
}

// ErrorKind discriminates validation failures so the CLI can map each to a
// distinct exit status.
type ErrorKind string

const (
	KindNoClasses      ErrorKind = "no_classes_enabled"
	KindEmptyPool      ErrorKind = "empty_pool"
	KindLengthTooShort ErrorKind = "length_too_short"
	KindInvalidCount   ErrorKind = "invalid_count"
	KindInvalidMin     ErrorKind = "invalid_min"
)

// ValidationError reports a request that cannot produce a usable policy.
// Kind is machine-readable; the remaining fields carry enough detail for a
// precise user-facing message.
type ValidationError struct {
	Kind   ErrorKind
	Class  charset.Class // set when a single class is at fault
	Length int
	MinSum int
	Count  int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindNoClasses:
		return "no character classes enabled"
	case KindEmptyPool:
		if e.Class != "" {
			return fmt.Sprintf("required class %q has no candidates left after exclusions", e.Class)
		}
		if e.Length > e.MinSum {
			return fmt.Sprintf("no fill characters available: minimums cover %d of %d positions and no class is fill-eligible", e.MinSum, e.Length)
		}
		return "no usable characters after exclusions"
	case KindLengthTooShort:
		if e.MinSum > 0 {
			return fmt.Sprintf("length %d cannot satisfy class minimums totalling %d", e.Length, e.MinSum)
		}
		return fmt.Sprintf("length must be at least 1, got %d", e.Length)
	case KindInvalidCount:
		return fmt.Sprintf("count must be at least 1, got %d", e.Count)
	case KindInvalidMin:
		return fmt.Sprintf("minimum for class %q must not be negative", e.Class)
	default:
		return string(e.Kind)
	}
}
