// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/careerpath/internal/skills"
)

// Time estimates by missing-skill count.
const (
	EstimateShort  = "3-6 months"
	EstimateMedium = "6-12 months"
	EstimateLong   = "1+ years"
)

// DifficultyFor classifies a match percentage:
// below 50 is High, 50 to 74 is Medium, 75 and above is Low.
func DifficultyFor(matchPercentage float64) Difficulty {
	switch {
	case matchPercentage < 50:
		return DifficultyHigh
	case matchPercentage < 75:
		return DifficultyMedium
	default:
		return DifficultyLow
	}
}

// TimeEstimateFor maps a missing-skill count to a rough learning time.
func TimeEstimateFor(missing int) string {
	switch {
	case missing <= 3:
		return EstimateShort
	case missing <= 7:
		return EstimateMedium
	default:
		return EstimateLong
	}
}

// Explainer builds the Explanation for a finished ranking. It is pure and
// deterministic.
type Explainer struct {
	cfg ExplanationConfig
}

// NewExplainer creates an Explainer.
func NewExplainer(cfg ExplanationConfig) Explainer {
	return Explainer{cfg: cfg}
}

// Explain describes the ranking. gap is the analysis against target, the
// top specialization (or the top field's known skills when no
// specialization ranked).
func (x Explainer) Explain(fields []FieldScore, target string, gap skills.Gap, currentField string) Explanation {
	exp := Explanation{
		KeyStrengths:     x.keyStrengths(fields),
		DevelopmentAreas: x.developmentAreas(gap.Missing),
	}

	if len(fields) == 0 {
		exp.Summary = "No field in the catalog could be scored for the supplied skills."
		exp.TransitionDifficulty = DifficultyHigh
		exp.TimeEstimate = EstimateLong
		return exp
	}

	exp.Summary = summary(&fields[0], target, gap.MatchPercentage, currentField)
	exp.TransitionDifficulty = DifficultyFor(gap.MatchPercentage)
	exp.TimeEstimate = TimeEstimateFor(len(gap.Missing))
	return exp
}

// summary quotes the gap's match percentage, the same figure that drives
// TransitionDifficulty. Ensemble scores are relative and are not shown.
func summary(top *FieldScore, target string, matchPct float64, currentField string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is your strongest field", top.Name)
	if target != "" {
		fmt.Fprintf(&b, ", with %s as the best-fitting role. You already have %.0f%% of the skills it needs.", target, matchPct)
	} else {
		fmt.Fprintf(&b, ". You already have %.0f%% of its core skills.", matchPct)
	}

	switch {
	case top.IsCurrent:
		b.WriteString(" It is also your current field.")
	case strings.TrimSpace(currentField) != "":
		fmt.Fprintf(&b, " This would be a move from %s.", strings.TrimSpace(currentField))
	}
	return b.String()
}

// keyStrengths finds user skills that are matching or transferable in at
// least MinStrengthOccurrences of the top StrengthFields fields.
func (x Explainer) keyStrengths(fields []FieldScore) []KeyStrength {
	top := fields
	if len(top) > x.cfg.StrengthFields {
		top = top[:x.cfg.StrengthFields]
	}

	counts := make(map[string]int)
	display := make(map[string]string)
	for i := range top {
		seen := make(map[string]struct{})
		for _, s := range strengthSkills(&top[i].CombinedScore) {
			n := skills.Normalize(s)
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			counts[n]++
			if _, ok := display[n]; !ok {
				display[n] = s
			}
		}
	}

	out := make([]KeyStrength, 0)
	for n, c := range counts {
		if c < x.cfg.MinStrengthOccurrences {
			continue
		}
		rel := RelevanceMedium
		if c >= x.cfg.HighRelevanceOccurrences {
			rel = RelevanceHigh
		}
		out = append(out, KeyStrength{Skill: display[n], Relevance: rel, Occurrences: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return skills.Normalize(out[i].Skill) < skills.Normalize(out[j].Skill)
	})
	return out
}

// strengthSkills lists a candidate's matching skills followed by the user
// side of its transferable matches, in a stable order.
func strengthSkills(c *CombinedScore) []string {
	out := append([]string{}, c.MatchingSkills...)
	keys := make([]string, 0, len(c.SimilarSkills))
	for k := range c.SimilarSkills {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, c.SimilarSkills[k].UserSkill)
	}
	return out
}

func (x Explainer) developmentAreas(missing []string) []DevelopmentArea {
	n := len(missing)
	if n > x.cfg.MaxDevelopmentAreas {
		n = x.cfg.MaxDevelopmentAreas
	}
	out := make([]DevelopmentArea, 0, n)
	for _, m := range missing[:n] {
		out = append(out, DevelopmentArea{Skill: m, Importance: RelevanceHigh})
	}
	return out
}
