// Package random provides uniform index sampling for password generation.
//
// Two sources share one interface: a cryptographically secure source (the
// default) and a seeded deterministic source for reproducible tests. A
// generation run picks its source once and never mixes them.
package random

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	mathrand "math/rand/v2"
)

// Source yields uniformly distributed indexes. Implementations must be
// bias-free: every value in [0, n) equally likely, not approximately so.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) (int, error)
}

// EntropyError reports that the secure source could not supply randomness.
// It is fatal for the invocation — never substitute a weaker source.
type EntropyError struct {
	Err error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("entropy source failure: %v", e.Err)
}

func (e *EntropyError) Unwrap() error { return e.Err }

// Secure returns a Source backed by crypto/rand. Safe for concurrent use;
// each draw is self-contained.
func Secure() Source {
	return secureSource{}
}

type secureSource struct{}

func (secureSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: bound must be positive, got %d", n)
	}
	if n == 1 {
		return 0, nil
	}

	bound := uint64(n)
	// zone is the largest multiple of bound representable in a uint64.
	// Draws at or above it are rejected, otherwise the final modulo would
	// skew selection toward small indexes (the classic RAND_MAX mod n bias).
	zone := math.MaxUint64 - math.MaxUint64%bound

	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, &EntropyError{Err: err}
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < zone {
			return int(v % bound), nil
		}
	}
}

// Seeded returns a deterministic Source for reproducible output. It is NOT
// suitable for real secrets; generation only selects it when the policy
// explicitly carries a seed.
func Seeded(seed uint64) Source {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], seed)
	key := sha256.Sum256(raw[:])
	return &seededSource{rng: mathrand.New(mathrand.NewChaCha8(key))}
}

type seededSource struct {
	rng *mathrand.Rand
}

func (s *seededSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: bound must be positive, got %d", n)
	}
	return s.rng.IntN(n), nil
}

// Shuffle permutes rs in place with a Fisher–Yates walk over src, so that
// characters drawn for class coverage do not stay clustered at the front.
func Shuffle(rs []rune, src Source) error {
	for i := len(rs) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		rs[i], rs[j] = rs[j], rs[i]
	}
	return nil
}
