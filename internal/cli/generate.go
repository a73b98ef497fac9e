package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avezina/passmith/internal/generate"
	"github.com/avezina/passmith/internal/policy"
	"github.com/avezina/passmith/internal/profile"
	"github.com/avezina/passmith/internal/report"
)

var (
	genLength      int
	genCount       int
	genLower       bool
	genUpper       bool
	genDigits      bool
	genSymbols     bool
	genMinLower    int
	genMinUpper    int
	genMinDigits   int
	genMinSymbols  int
	genNoFill      []string
	genCustom      string
	genMinCustom   int
	genExclude     string
	genNoAmbiguous bool
	genSeed        uint64
	genReport      bool
	genProfile     string
	genConfig      string
	genFormat      string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	f := generateCmd.Flags()
	f.IntVarP(&genLength, "length", "l", 16, "Password length")
	f.IntVarP(&genCount, "count", "n", 1, "Number of passwords to generate")
	f.BoolVar(&genLower, "lower", true, "Include lowercase letters")
	f.BoolVar(&genUpper, "upper", true, "Include uppercase letters")
	f.BoolVar(&genDigits, "digits", true, "Include digits")
	f.BoolVar(&genSymbols, "symbols", true, "Include symbols")
	f.IntVar(&genMinLower, "min-lower", 1, "Minimum lowercase letters per password")
	f.IntVar(&genMinUpper, "min-upper", 1, "Minimum uppercase letters per password")
	f.IntVar(&genMinDigits, "min-digits", 1, "Minimum digits per password")
	f.IntVar(&genMinSymbols, "min-symbols", 1, "Minimum symbols per password")
	f.StringSliceVar(&genNoFill, "no-fill", nil, "Classes that contribute only their minimum (lower|upper|digits|symbols|custom)")
	f.StringVar(&genCustom, "custom", "", "Characters of an additional custom class")
	f.IntVar(&genMinCustom, "min-custom", 0, "Minimum custom-class characters per password")
	f.StringVarP(&genExclude, "exclude", "x", "", "Characters to exclude from every class")
	f.BoolVar(&genNoAmbiguous, "no-ambiguous", false, "Exclude visually ambiguous glyphs (0 O 1 l I, pipe, quotes)")
	f.Uint64Var(&genSeed, "seed", 0, "Deterministic seed — NON-SECURE, for reproducible tests only")
	f.BoolVarP(&genReport, "report", "r", false, "Print an entropy report to stderr")
	f.StringVarP(&genProfile, "profile", "p", "", "Named profile to start from")
	f.StringVar(&genConfig, "config", "", "Path to defaults file (default: ~/.passmith/config.yaml)")
	f.StringVarP(&genFormat, "format", "f", "text", "Output format (text|json)")
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate passwords satisfying a composition policy",
	Long: "Builds a generation policy from defaults, an optional profile, and\n" +
		"flags, validates it, and prints one password per line to stdout.\n\n" +
		"Flags override the profile, which overrides ~/.passmith/config.yaml,\n" +
		"which overrides the built-in defaults.",
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	pol, err := policy.Validate(req)
	if err != nil {
		return err
	}

	passwords, err := generate.New(pol).Passwords()
	if err != nil {
		return err
	}

	if pol.Seed != nil {
		warnSeeded()
	}
	if genReport {
		report.Report{Unit: "character", PoolSize: len(pol.Pool), Elements: pol.Length}.Write(os.Stderr)
	}

	return writeSecrets("passwords", passwords, generate.Estimate(pol), len(pol.Pool), genFormat)
}

// buildRequest resolves the precedence chain: built-in defaults, defaults
// file, profile, then explicitly set flags.
func buildRequest(cmd *cobra.Command) (policy.Request, error) {
	req, err := policy.LoadConfig(genConfig)
	if err != nil {
		return policy.Request{}, err
	}

	if genProfile != "" {
		prof, err := profile.Load(genProfile)
		if err != nil {
			return policy.Request{}, err
		}
		req = prof.Policy
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		req.Length = genLength
	}
	if flags.Changed("count") {
		req.Count = genCount
	}
	applyClassFlags(flags, "lower", genLower, "min-lower", genMinLower, &req.Lower)
	applyClassFlags(flags, "upper", genUpper, "min-upper", genMinUpper, &req.Upper)
	applyClassFlags(flags, "digits", genDigits, "min-digits", genMinDigits, &req.Digits)
	applyClassFlags(flags, "symbols", genSymbols, "min-symbols", genMinSymbols, &req.Symbols)
	if flags.Changed("custom") {
		req.Custom.Chars = genCustom
	}
	if flags.Changed("min-custom") {
		req.Custom.Min = genMinCustom
	}
	if flags.Changed("exclude") {
		req.Exclude = genExclude
	}
	if flags.Changed("no-ambiguous") {
		req.NoAmbiguous = genNoAmbiguous
	}
	if flags.Changed("seed") {
		seed := genSeed
		req.Seed = &seed
	}

	for _, name := range genNoFill {
		switch name {
		case "lower":
			req.Lower.NoFill = true
		case "upper":
			req.Upper.NoFill = true
		case "digits":
			req.Digits.NoFill = true
		case "symbols":
			req.Symbols.NoFill = true
		case "custom":
			req.Custom.NoFill = true
		default:
			return policy.Request{}, fmt.Errorf("unknown class %q in --no-fill", name)
		}
	}

	return req, nil
}

func applyClassFlags(flags interface{ Changed(string) bool }, enabledFlag string, enabled bool, minFlag string, min int, cr *policy.ClassRequest) {
	if flags.Changed(enabledFlag) {
		cr.Enabled = enabled
		if !enabled {
			cr.Min = 0
		}
	}
	if flags.Changed(minFlag) {
		cr.Min = min
	}
}

// writeSecrets prints generated secrets to stdout, one per line in text
// mode, or as a single JSON document.
func writeSecrets(key string, secrets []string, entropyBits float64, poolSize int, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(map[string]any{
			key:            secrets,
			"entropy_bits": entropyBits,
			"pool_size":    poolSize,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		for _, s := range secrets {
			fmt.Println(s)
		}
	}
	return nil
}
