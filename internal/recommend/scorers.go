// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/careerpath/internal/catalog"
	"github.com/tomtom215/careerpath/internal/skills"
)

// Candidate is anything the scorers can rank: a field (scored on its known
// skills) or a specialization (scored on its required skills).
type Candidate struct {
	Name    string
	Skills  []string
	Weights map[string]float64
}

// FieldCandidates converts catalog fields into candidates.
func FieldCandidates(fields []catalog.Field) []Candidate {
	out := make([]Candidate, len(fields))
	for i, f := range fields {
		out[i] = Candidate{Name: f.Name, Skills: f.KnownSkills}
	}
	return out
}

// SpecializationCandidates converts catalog specializations into candidates.
func SpecializationCandidates(specs []catalog.Specialization) []Candidate {
	out := make([]Candidate, len(specs))
	for i, s := range specs {
		out[i] = Candidate{Name: s.Title, Skills: s.RequiredSkills, Weights: s.SkillWeights}
	}
	return out
}

// RuleScores ranks candidates by exact skill overlap:
// 100 * |user ∩ skills| / |skills|. The candidate named current gets boost
// added, capped at 100. Every candidate is scored, including those at zero.
func RuleScores(candidates []Candidate, userSkills []string, current string, boost float64) []SourceScore {
	userSet := make(map[string]struct{}, len(userSkills))
	for _, u := range userSkills {
		if n := skills.Normalize(u); n != "" {
			userSet[n] = struct{}{}
		}
	}
	currentNorm := skills.Normalize(current)

	out := make([]SourceScore, 0, len(candidates))
	for _, c := range candidates {
		known := skills.Dedupe(c.Skills)
		matching := make([]string, 0, len(known))
		for _, k := range known {
			if _, ok := userSet[skills.Normalize(k)]; ok {
				matching = append(matching, k)
			}
		}

		score := 0.0
		if len(known) > 0 {
			score = 100 * float64(len(matching)) / float64(len(known))
		}
		if currentNorm != "" && skills.Normalize(c.Name) == currentNorm {
			score += boost
		}
		score = clampPercent(score)

		out = append(out, SourceScore{
			Source:         SourceRule,
			TargetName:     c.Name,
			RawScore:       score,
			MatchingSkills: matching,
			SimilarSkills:  map[string]skills.SimilarMatch{},
		})
	}
	sortSourceScores(out)
	return out
}

// SemanticScores ranks candidates by skill-gap match percentage, which
// grants partial credit for transferable skills. Like RuleScores it scores
// every candidate.
func SemanticScores(m *skills.Matcher, candidates []Candidate, userSkills []string) []SourceScore {
	out := make([]SourceScore, 0, len(candidates))
	for _, c := range candidates {
		gap := m.Analyze(userSkills, c.Skills, c.Weights)
		out = append(out, SourceScore{
			Source:         SourceSemantic,
			TargetName:     c.Name,
			RawScore:       clampPercent(gap.MatchPercentage),
			MatchingSkills: gap.Matching,
			SimilarSkills:  gap.Similar,
		})
	}
	sortSourceScores(out)
	return out
}

// sortSourceScores orders by raw score descending, then name.
func sortSourceScores(scores []SourceScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].RawScore != scores[j].RawScore {
			return scores[i].RawScore > scores[j].RawScore
		}
		return scores[i].TargetName < scores[j].TargetName
	})
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
