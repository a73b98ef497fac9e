// Package report renders entropy estimates and brute-force guess times for
// informational display. Output goes to stderr so it never mixes with the
// generated secrets on stdout.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	minute  = 60.0
	hour    = minute * 60
	day     = hour * 24
	year    = day * 365.25
	century = year * 100
)

// Report describes one generation run for entropy display.
type Report struct {
	// Unit names the sampled element: "character" or "word".
	Unit string
	// PoolSize is the number of candidates per draw (post-exclusion).
	PoolSize int
	// Elements is the number of draws per password or passphrase.
	Elements int
}

// BitsPerElement is log2 of the pool size.
func (r Report) BitsPerElement() float64 {
	return math.Log2(float64(r.PoolSize))
}

// TotalBits is the entropy of one generated secret.
func (r Report) TotalBits() float64 {
	return r.BitsPerElement() * float64(r.Elements)
}

// Write renders the report: entropy per element, total entropy, and expected
// crack times at three attacker speeds, followed by a terminal-width rule.
// Times assume the attacker finds the secret after half the keyspace, so
// each line is 2^(bits-1) guesses divided by the guess rate.
func (r Report) Write(w io.Writer) {
	total := r.TotalBits()

	fmt.Fprintf(w, "entropy per %s:          %.1f bits\n", r.Unit, r.BitsPerElement())
	fmt.Fprintf(w, "total entropy:              %.0f bits\n", total)
	fmt.Fprintf(w, "guess times:\n")
	fmt.Fprintf(w, "  1 billion / second:       %s\n", FormatDuration(math.Exp2(total-31)))
	fmt.Fprintf(w, "  1 quadrillion / second:   %s\n", FormatDuration(math.Exp2(total-51)))
	fmt.Fprintf(w, "  1 sextillion / second:    %s\n", FormatDuration(math.Exp2(total-71)))
	fmt.Fprintln(w, strings.Repeat("-", termWidth()))
}

// FormatDuration renders a duration in seconds with the largest unit that
// keeps the value readable, up to centuries.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		return formatUnit(seconds, "seconds")
	case seconds < hour:
		return formatUnit(seconds/minute, "minutes")
	case seconds < day:
		return formatUnit(seconds/hour, "hours")
	case seconds < year:
		return formatUnit(seconds/day, "days")
	case seconds < century:
		return formatUnit(seconds/year, "years")
	default:
		return formatUnit(seconds/century, "centuries")
	}
}

func formatUnit(x float64, unit string) string {
	if x < 1e6 {
		return fmt.Sprintf("%.0f %s", x, unit)
	}
	return fmt.Sprintf("%.0e %s", x, unit)
}

func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
