package policy

import "github.com/avezina/passmith/internal/charset"

// classInput pairs a class with its raw request fields for uniform handling.
type classInput struct {
	class      charset.Class
	candidates []rune
	enabled    bool
	min        int
	noFill     bool
}

func classInputs(req Request) []classInput {
	return []classInput{
		{charset.Lower, charset.Candidates(charset.Lower), req.Lower.Enabled, req.Lower.Min, req.Lower.NoFill},
		{charset.Upper, charset.Candidates(charset.Upper), req.Upper.Enabled, req.Upper.Min, req.Upper.NoFill},
		{charset.Digit, charset.Candidates(charset.Digit), req.Digits.Enabled, req.Digits.Min, req.Digits.NoFill},
		{charset.Symbol, charset.Candidates(charset.Symbol), req.Symbols.Enabled, req.Symbols.Min, req.Symbols.NoFill},
		{charset.Custom, charset.Dedup([]rune(req.Custom.Chars)), req.Custom.Chars != "", req.Custom.Min, req.Custom.NoFill},
	}
}

// Validate normalizes a raw request into an immutable Policy. It fails
// closed: any request that cannot be satisfied exactly is rejected, never
// silently weakened.
func Validate(req Request) (*Policy, error) {
	if req.Count < 1 {
		return nil, &ValidationError{Kind: KindInvalidCount, Count: req.Count}
	}
	if req.Length < 1 {
		return nil, &ValidationError{Kind: KindLengthTooShort, Length: req.Length}
	}

	excluded := charset.ExcludeSet(req.Exclude)
	if req.NoAmbiguous {
		for r := range charset.ExcludeSet(charset.Ambiguous) {
			excluded[r] = true
		}
	}

	anyEnabled := false
	var required []ClassSpec
	var fillSets, poolSets [][]rune
	minSum := 0

	for _, in := range classInputs(req) {
		if !in.enabled {
			continue
		}
		anyEnabled = true
		if in.min < 0 {
			return nil, &ValidationError{Kind: KindInvalidMin, Class: in.class}
		}

		candidates := charset.Filter(in.candidates, excluded)
		if len(candidates) == 0 {
			// A required class emptied by exclusions is an error, not a
			// silent demotion. Pool-only classes are simply dropped.
			if in.min > 0 {
				return nil, &ValidationError{Kind: KindEmptyPool, Class: in.class}
			}
			continue
		}

		if in.min > 0 {
			required = append(required, ClassSpec{Class: in.class, Candidates: candidates, Min: in.min})
			minSum += in.min
		}
		if !in.noFill {
			fillSets = append(fillSets, candidates)
		}
		poolSets = append(poolSets, candidates)
	}

	if !anyEnabled {
		return nil, &ValidationError{Kind: KindNoClasses}
	}

	pool := charset.Union(poolSets...)
	if len(pool) == 0 {
		return nil, &ValidationError{Kind: KindEmptyPool, Length: req.Length, MinSum: minSum}
	}
	if minSum > req.Length {
		return nil, &ValidationError{Kind: KindLengthTooShort, Length: req.Length, MinSum: minSum}
	}

	fillPool := charset.Union(fillSets...)
	if req.Length > minSum && len(fillPool) == 0 {
		// Positions remain beyond the minimums but every enabled class is
		// locked out of general fill.
		return nil, &ValidationError{Kind: KindEmptyPool, Length: req.Length, MinSum: minSum}
	}

	return &Policy{
		Length:   req.Length,
		Count:    req.Count,
		Required: required,
		FillPool: fillPool,
		Pool:     pool,
		Seed:     req.Seed,
	}, nil
}
