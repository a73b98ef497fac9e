// Package wordlist provides word-based passphrase generation: tokens drawn
// from a word list instead of single characters.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/avezina/passmith/internal/random"
)

// 256 words — exactly 8 bits of entropy per word.
//
//go:embed words.txt
var embedded string

// DefaultSeparator joins passphrase words unless the caller overrides it.
const DefaultSeparator = "-"

// DefaultWords is the default passphrase word count.
const DefaultWords = 6

// Default returns the built-in word list.
func Default() []string {
	return strings.Fields(embedded)
}

// Load reads a word list from a file, one word per line. Blank lines and
// surrounding whitespace are dropped; duplicates are removed so the entropy
// estimate stays honest.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	defer f.Close()

	seen := make(map[string]bool)
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s is empty", path)
	}
	return words, nil
}

// Passphrase draws count words from the list independently and uniformly and
// joins them with sep. Repeats are allowed; each word is a fresh draw.
func Passphrase(words []string, count int, sep string, src random.Source) (string, error) {
	if count < 1 {
		return "", fmt.Errorf("word count must be at least 1, got %d", count)
	}
	if len(words) == 0 {
		return "", fmt.Errorf("empty word list")
	}

	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		idx, err := src.IntN(len(words))
		if err != nil {
			return "", err
		}
		parts = append(parts, words[idx])
	}
	return strings.Join(parts, sep), nil
}
