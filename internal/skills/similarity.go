// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package skills

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Kind identifies which comparison rule produced a Match.
// Lower values are higher-priority rules.
type Kind int

const (
	KindExact Kind = iota + 1
	KindSynonym
	KindSubstring
	KindPrefix
	KindSequence
)

// String returns the wire name of the rule.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindSynonym:
		return "synonym"
	case KindSubstring:
		return "substring"
	case KindPrefix:
		return "prefix"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Match is the outcome of comparing two skill labels.
type Match struct {
	Score float64
	Kind  Kind
}

// Scoring holds the tunable constants of the similarity rules.
type Scoring struct {
	// SubstringScore is returned when one label contains the other.
	// Default: 0.8.
	SubstringScore float64 `json:"substring_score"`

	// SubstringMinLength is the minimum rune length of the contained label.
	// Default: 3.
	SubstringMinLength int `json:"substring_min_length"`

	// PrefixScore is returned when the labels share a long enough prefix.
	// Default: 0.75.
	PrefixScore float64 `json:"prefix_score"`

	// PrefixMinLength is the minimum shared prefix in runes.
	// Default: 5.
	PrefixMinLength int `json:"prefix_min_length"`

	// RelatedThreshold is the similarity above which a pair counts as a
	// transferable skill.
	// Default: 0.8.
	RelatedThreshold float64 `json:"related_threshold"`

	// PartialCredit is the weight a transferable skill contributes to a
	// match percentage relative to an exact match.
	// Default: 0.5.
	PartialCredit float64 `json:"partial_credit"`
}

// DefaultScoring returns the standard similarity constants.
func DefaultScoring() Scoring {
	return Scoring{
		SubstringScore:     0.8,
		SubstringMinLength: 3,
		PrefixScore:        0.75,
		PrefixMinLength:    5,
		RelatedThreshold:   0.8,
		PartialCredit:      0.5,
	}
}

// Validate checks the constants for out-of-range values.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (s Scoring) Validate() error {
	if s.SubstringScore < 0 || s.SubstringScore > 1 {
		return fmt.Errorf("scoring.substring_score must be in [0, 1], got %f", s.SubstringScore)
	}
	if s.PrefixScore < 0 || s.PrefixScore > 1 {
		return fmt.Errorf("scoring.prefix_score must be in [0, 1], got %f", s.PrefixScore)
	}
	if s.SubstringMinLength < 1 {
		return fmt.Errorf("scoring.substring_min_length must be positive, got %d", s.SubstringMinLength)
	}
	if s.PrefixMinLength < 1 {
		return fmt.Errorf("scoring.prefix_min_length must be positive, got %d", s.PrefixMinLength)
	}
	if s.RelatedThreshold <= 0 || s.RelatedThreshold > 1 {
		return fmt.Errorf("scoring.related_threshold must be in (0, 1], got %f", s.RelatedThreshold)
	}
	if s.PartialCredit < 0 || s.PartialCredit > 1 {
		return fmt.Errorf("scoring.partial_credit must be in [0, 1], got %f", s.PartialCredit)
	}
	return nil
}

// Compare scores two labels. It is a pure function of the normalized labels
// and is symmetric in its arguments.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (s Scoring) Compare(a, b string) Match {
	a, b = Normalize(a), Normalize(b)
	if a == b {
		return Match{Score: 1.0, Kind: KindExact}
	}
	if Synonymous(a, b) {
		return Match{Score: 1.0, Kind: KindSynonym}
	}

	short, long := a, b
	if runeLen(short) > runeLen(long) {
		short, long = long, short
	}
	if runeLen(short) >= s.SubstringMinLength && strings.Contains(long, short) {
		return Match{Score: s.SubstringScore, Kind: KindSubstring}
	}
	if commonPrefixLen(a, b) >= s.PrefixMinLength {
		return Match{Score: s.PrefixScore, Kind: KindPrefix}
	}
	return Match{Score: sequenceRatio(a, b), Kind: KindSequence}
}

// Related reports whether m is close enough to grant partial credit.
// Rule-based matches qualify at the threshold; the sequence ratio must
// exceed it.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (s Scoring) Related(m Match) bool {
	if m.Kind == KindSequence {
		return m.Score > s.RelatedThreshold
	}
	return m.Score >= s.RelatedThreshold
}

// Similarity compares two labels with the default constants.
func Similarity(a, b string) float64 {
	return DefaultScoring().Compare(a, b).Score
}

// sequenceRatio returns the sequence-matcher ratio 2*M/T of the two labels,
// computed on a fixed argument order so the result does not depend on which
// label came first.
func sequenceRatio(a, b string) float64 {
	if a > b {
		a, b = b, a
	}
	if a == "" && b == "" {
		return 1.0
	}
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func commonPrefixLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return n
}

func runeLen(s string) int {
	return len([]rune(s))
}

// Matcher memoizes Compare results for the lifetime of one request.
// It is not safe for concurrent use.
type Matcher struct {
	scoring Scoring
	memo    map[pairKey]Match
}

type pairKey struct{ a, b string }

// NewMatcher creates a request-scoped Matcher.
//
//nolint:gocritic // Scoring is a small value type
func NewMatcher(scoring Scoring) *Matcher {
	return &Matcher{scoring: scoring, memo: make(map[pairKey]Match)}
}

// Scoring returns the constants the Matcher was built with.
func (m *Matcher) Scoring() Scoring {
	return m.scoring
}

// Compare returns the cached comparison of a and b, computing it on first use.
func (m *Matcher) Compare(a, b string) Match {
	na, nb := Normalize(a), Normalize(b)
	if na > nb {
		na, nb = nb, na
	}
	key := pairKey{na, nb}
	if hit, ok := m.memo[key]; ok {
		return hit
	}
	res := m.scoring.Compare(na, nb)
	m.memo[key] = res
	return res
}

// Similarity returns the cached similarity score of a and b.
func (m *Matcher) Similarity(a, b string) float64 {
	return m.Compare(a, b).Score
}

// Size returns the number of memoized pairs.
func (m *Matcher) Size() int {
	return len(m.memo)
}
