package cli

import (
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/avezina/passmith/internal/policy"
	"github.com/avezina/passmith/internal/random"
	"github.com/avezina/passmith/internal/report"
	"github.com/avezina/passmith/internal/wordlist"
)

var (
	ppWords  int
	ppSep    string
	ppFile   string
	ppCount  int
	ppSeed   uint64
	ppReport bool
	ppFormat string
)

func init() {
	rootCmd.AddCommand(passphraseCmd)
	f := passphraseCmd.Flags()
	f.IntVarP(&ppWords, "words", "w", wordlist.DefaultWords, "Number of words per passphrase")
	f.StringVarP(&ppSep, "sep", "s", wordlist.DefaultSeparator, "Word separator")
	f.StringVar(&ppFile, "wordlist", "", "Path to a custom word list (one word per line)")
	f.IntVarP(&ppCount, "count", "n", 1, "Number of passphrases to generate")
	f.Uint64Var(&ppSeed, "seed", 0, "Deterministic seed — NON-SECURE, for reproducible tests only")
	f.BoolVarP(&ppReport, "report", "r", false, "Print an entropy report to stderr")
	f.StringVarP(&ppFormat, "format", "f", "text", "Output format (text|json)")
}

var passphraseCmd = &cobra.Command{
	Use:     "passphrase",
	Aliases: []string{"pp"},
	Short:   "Generate word-based passphrases",
	Long: "Draws words uniformly from a word list and joins them with a\n" +
		"separator. The built-in list has 256 words, 8 bits of entropy each;\n" +
		"supply --wordlist for a larger list.",
	RunE: runPassphrase,
}

func runPassphrase(cmd *cobra.Command, args []string) error {
	if ppCount < 1 {
		return &policy.ValidationError{Kind: policy.KindInvalidCount, Count: ppCount}
	}

	words := wordlist.Default()
	if ppFile != "" {
		var err error
		words, err = wordlist.Load(ppFile)
		if err != nil {
			return err
		}
	}

	src := random.Secure()
	if cmd.Flags().Changed("seed") {
		warnSeeded()
		src = random.Seeded(ppSeed)
	}

	phrases := make([]string, 0, ppCount)
	for i := 0; i < ppCount; i++ {
		phrase, err := wordlist.Passphrase(words, ppWords, ppSep, src)
		if err != nil {
			return err
		}
		phrases = append(phrases, phrase)
	}

	if ppReport {
		report.Report{Unit: "word", PoolSize: len(words), Elements: ppWords}.Write(os.Stderr)
	}

	entropy := float64(ppWords) * math.Log2(float64(len(words)))
	return writeSecrets("passphrases", phrases, entropy, len(words), ppFormat)
}

func warnSeeded() {
	os.Stderr.WriteString("WARNING: seeded output is deterministic and not suitable for real secrets\n")
}
