// Package cli wires the passmith command tree and maps error kinds to
// sysexits-style status codes.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avezina/passmith/internal/policy"
	"github.com/avezina/passmith/internal/random"
)

// Exit codes follow sysexits(3) so callers can tell user error from
// environment failure apart without parsing stderr.
const (
	exitUsage   = 64 // EX_USAGE — invalid request (length, count, classes)
	exitData    = 65 // EX_DATAERR — exclusions left nothing to sample
	exitIOErr   = 74 // EX_IOERR — entropy source failure
	exitConfig  = 78 // EX_CONFIG — defaults file unusable
	exitGeneric = 1
)

var rootCmd = &cobra.Command{
	Use:   "passmith",
	Short: "Policy-driven password and passphrase generator",
	Long: "Generates passwords that satisfy a declarative composition policy —\n" +
		"length, per-class minimums, exclusions — from a cryptographically\n" +
		"secure source. Policies that cannot be satisfied fail, they are\n" +
		"never silently weakened.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "passmith: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to its exit status by kind.
func exitCode(err error) int {
	var verr *policy.ValidationError
	if errors.As(err, &verr) {
		if verr.Kind == policy.KindEmptyPool {
			return exitData
		}
		return exitUsage
	}
	var eerr *random.EntropyError
	if errors.As(err, &eerr) {
		return exitIOErr
	}
	var cerr *policy.ConfigError
	if errors.As(err, &cerr) {
		return exitConfig
	}
	return exitGeneric
}
