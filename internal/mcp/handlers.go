package mcp

import (
	"context"
	"errors"
	"math"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/avezina/passmith/internal/generate"
	"github.com/avezina/passmith/internal/policy"
	"github.com/avezina/passmith/internal/profile"
	"github.com/avezina/passmith/internal/random"
	"github.com/avezina/passmith/internal/report"
	"github.com/avezina/passmith/internal/wordlist"
)

// --- Input/Output types ---

// GenerateInput defines parameters for the passmith_generate tool. Unset
// fields keep the server's loaded defaults. There is deliberately no seed
// parameter: the deterministic path is for local testing only.
type GenerateInput struct {
	Profile     string `json:"profile,omitempty" jsonschema:"named profile to start from"`
	Length      int    `json:"length,omitempty" jsonschema:"password length"`
	Count       int    `json:"count,omitempty" jsonschema:"number of passwords"`
	Lower       *bool  `json:"lower,omitempty" jsonschema:"include lowercase letters"`
	Upper       *bool  `json:"upper,omitempty" jsonschema:"include uppercase letters"`
	Digits      *bool  `json:"digits,omitempty" jsonschema:"include digits"`
	Symbols     *bool  `json:"symbols,omitempty" jsonschema:"include symbols"`
	Exclude     string `json:"exclude,omitempty" jsonschema:"characters to exclude from every class"`
	NoAmbiguous bool   `json:"no_ambiguous,omitempty" jsonschema:"exclude visually ambiguous glyphs"`
}

// GenerateOutput contains the generated passwords or rejection details.
type GenerateOutput struct {
	Passwords   []string `json:"passwords,omitempty"`
	EntropyBits float64  `json:"entropy_bits,omitempty"`
	PoolSize    int      `json:"pool_size,omitempty"`
	Error       string   `json:"error,omitempty"`
	ErrorKind   string   `json:"error_kind,omitempty"`
}

// PassphraseInput defines parameters for the passmith_passphrase tool.
type PassphraseInput struct {
	Words     int    `json:"words,omitempty" jsonschema:"number of words (default 6)"`
	Separator string `json:"separator,omitempty" jsonschema:"word separator (default -)"`
	Count     int    `json:"count,omitempty" jsonschema:"number of passphrases"`
}

// PassphraseOutput contains the generated passphrases.
type PassphraseOutput struct {
	Passphrases []string `json:"passphrases,omitempty"`
	EntropyBits float64  `json:"entropy_bits,omitempty"`
	ListSize    int      `json:"list_size,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// EstimateInput mirrors GenerateInput without producing secrets.
type EstimateInput struct {
	Profile     string `json:"profile,omitempty" jsonschema:"named profile to start from"`
	Length      int    `json:"length,omitempty" jsonschema:"password length"`
	Lower       *bool  `json:"lower,omitempty" jsonschema:"include lowercase letters"`
	Upper       *bool  `json:"upper,omitempty" jsonschema:"include uppercase letters"`
	Digits      *bool  `json:"digits,omitempty" jsonschema:"include digits"`
	Symbols     *bool  `json:"symbols,omitempty" jsonschema:"include symbols"`
	Exclude     string `json:"exclude,omitempty" jsonschema:"characters to exclude from every class"`
	NoAmbiguous bool   `json:"no_ambiguous,omitempty" jsonschema:"exclude visually ambiguous glyphs"`
}

// EstimateOutput contains the entropy estimate and guess times.
type EstimateOutput struct {
	EntropyBits   float64 `json:"entropy_bits,omitempty"`
	PoolSize      int     `json:"pool_size,omitempty"`
	GuessTime1e9  string  `json:"guess_time_1e9_per_sec,omitempty"`
	GuessTime1e15 string  `json:"guess_time_1e15_per_sec,omitempty"`
	GuessTime1e21 string  `json:"guess_time_1e21_per_sec,omitempty"`
	Error         string  `json:"error,omitempty"`
	ErrorKind     string  `json:"error_kind,omitempty"`
}

// ProfilesInput is empty — no parameters needed.
type ProfilesInput struct{}

// ProfilesOutput lists available profiles.
type ProfilesOutput struct {
	Profiles []ProfileItem `json:"profiles"`
}

// ProfileItem describes a single profile.
type ProfileItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Length      int    `json:"length"`
}

// --- Handlers ---

// applyOverrides merges tool-call fields onto a base request.
func applyOverrides(base policy.Request, profileName string, length, count int, lower, upper, digits, symbols *bool, exclude string, noAmbiguous bool) (policy.Request, error) {
	req := base
	if profileName != "" {
		prof, err := profile.Load(profileName)
		if err != nil {
			return policy.Request{}, err
		}
		req = prof.Policy
	}
	if length > 0 {
		req.Length = length
	}
	if count > 0 {
		req.Count = count
	}
	setClass := func(cr *policy.ClassRequest, enabled *bool) {
		if enabled == nil {
			return
		}
		cr.Enabled = *enabled
		if !*enabled {
			cr.Min = 0
		} else if cr.Min == 0 {
			cr.Min = 1
		}
	}
	setClass(&req.Lower, lower)
	setClass(&req.Upper, upper)
	setClass(&req.Digits, digits)
	setClass(&req.Symbols, symbols)
	if exclude != "" {
		req.Exclude = exclude
	}
	if noAmbiguous {
		req.NoAmbiguous = true
	}
	req.Seed = nil // never deterministic over MCP
	return req, nil
}

func (s *Server) handleGenerate(ctx context.Context, req *mcpsdk.CallToolRequest, input GenerateInput) (*mcpsdk.CallToolResult, GenerateOutput, error) {
	raw, err := applyOverrides(s.base, input.Profile, input.Length, input.Count,
		input.Lower, input.Upper, input.Digits, input.Symbols, input.Exclude, input.NoAmbiguous)
	if err != nil {
		return &mcpsdk.CallToolResult{IsError: true}, GenerateOutput{Error: err.Error()}, nil
	}

	pol, err := policy.Validate(raw)
	if err != nil {
		out := GenerateOutput{Error: err.Error()}
		var verr *policy.ValidationError
		if errors.As(err, &verr) {
			out.ErrorKind = string(verr.Kind)
		}
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}

	passwords, err := generate.New(pol).Passwords()
	if err != nil {
		// Entropy failure is fatal for the call, never papered over.
		return nil, GenerateOutput{}, err
	}

	return nil, GenerateOutput{
		Passwords:   passwords,
		EntropyBits: generate.Estimate(pol),
		PoolSize:    len(pol.Pool),
	}, nil
}

func (s *Server) handlePassphrase(ctx context.Context, req *mcpsdk.CallToolRequest, input PassphraseInput) (*mcpsdk.CallToolResult, PassphraseOutput, error) {
	words := wordlist.Default()
	count := input.Count
	if count < 1 {
		count = 1
	}
	wordCount := input.Words
	if wordCount < 1 {
		wordCount = wordlist.DefaultWords
	}
	sep := input.Separator
	if sep == "" {
		sep = wordlist.DefaultSeparator
	}

	src := random.Secure()
	phrases := make([]string, 0, count)
	for i := 0; i < count; i++ {
		phrase, err := wordlist.Passphrase(words, wordCount, sep, src)
		if err != nil {
			var eerr *random.EntropyError
			if errors.As(err, &eerr) {
				return nil, PassphraseOutput{}, err
			}
			return &mcpsdk.CallToolResult{IsError: true}, PassphraseOutput{Error: err.Error()}, nil
		}
		phrases = append(phrases, phrase)
	}

	return nil, PassphraseOutput{
		Passphrases: phrases,
		EntropyBits: float64(wordCount) * math.Log2(float64(len(words))),
		ListSize:    len(words),
	}, nil
}

func (s *Server) handleEstimate(ctx context.Context, req *mcpsdk.CallToolRequest, input EstimateInput) (*mcpsdk.CallToolResult, EstimateOutput, error) {
	raw, err := applyOverrides(s.base, input.Profile, input.Length, 0,
		input.Lower, input.Upper, input.Digits, input.Symbols, input.Exclude, input.NoAmbiguous)
	if err != nil {
		return &mcpsdk.CallToolResult{IsError: true}, EstimateOutput{Error: err.Error()}, nil
	}

	pol, err := policy.Validate(raw)
	if err != nil {
		out := EstimateOutput{Error: err.Error()}
		var verr *policy.ValidationError
		if errors.As(err, &verr) {
			out.ErrorKind = string(verr.Kind)
		}
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}

	bits := generate.Estimate(pol)
	return nil, EstimateOutput{
		EntropyBits:   bits,
		PoolSize:      len(pol.Pool),
		GuessTime1e9:  report.FormatDuration(math.Exp2(bits - 31)),
		GuessTime1e15: report.FormatDuration(math.Exp2(bits - 51)),
		GuessTime1e21: report.FormatDuration(math.Exp2(bits - 71)),
	}, nil
}

func (s *Server) handleProfiles(ctx context.Context, req *mcpsdk.CallToolRequest, input ProfilesInput) (*mcpsdk.CallToolResult, ProfilesOutput, error) {
	names := profile.List()
	items := make([]ProfileItem, 0, len(names))
	for _, name := range names {
		p, err := profile.Load(name)
		if err != nil {
			continue
		}
		items = append(items, ProfileItem{
			Name:        name,
			Description: p.Description,
			Length:      p.Policy.Length,
		})
	}
	return nil, ProfilesOutput{Profiles: items}, nil
}
