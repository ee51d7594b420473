// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package skills

import (
	"math"
	"sort"
)

// SimilarMatch records a transferable skill: a user skill that is not
// identical to a required skill but close enough to earn partial credit.
type SimilarMatch struct {
	UserSkill     string  `json:"user_skill"`
	RequiredSkill string  `json:"required_skill"`
	Similarity    float64 `json:"similarity"`
}

// Gap is the result of comparing a user's skills with one required-skill
// profile. Every collection is non-nil.
type Gap struct {
	// MatchPercentage is an integer-valued percentage in [0, 100].
	MatchPercentage float64 `json:"match_percentage"`

	// Matching lists the required skills the user has exactly, in
	// declaration order.
	Matching []string `json:"matching_skills"`

	// Similar maps a required skill to its best transferable user skill.
	Similar map[string]SimilarMatch `json:"similar_skills"`

	// Missing lists required skills with neither an exact nor a
	// transferable match, most important first.
	Missing []string `json:"missing_skills"`
}

// EmptyGap returns a zero-valued Gap with initialized collections.
func EmptyGap() Gap {
	return Gap{
		Matching: []string{},
		Similar:  map[string]SimilarMatch{},
		Missing:  []string{},
	}
}

// Analyze compares userSkills with the required skills of a target profile.
// weights ranks required skills by importance; a nil or empty map keeps
// declaration order. Required skills that normalize to the same label are
// counted once.
func (m *Matcher) Analyze(userSkills, required []string, weights map[string]float64) Gap {
	gap := EmptyGap()

	req := Dedupe(required)
	if len(req) == 0 {
		return gap
	}
	user := Dedupe(userSkills)

	userSet := make(map[string]struct{}, len(user))
	for _, u := range user {
		userSet[Normalize(u)] = struct{}{}
	}

	for _, r := range req {
		if _, ok := userSet[Normalize(r)]; ok {
			gap.Matching = append(gap.Matching, r)
			continue
		}

		best, found := m.bestTransferable(r, user)
		if found {
			gap.Similar[r] = best
			continue
		}
		gap.Missing = append(gap.Missing, r)
	}

	rankMissing(gap.Missing, weights)

	credit := float64(len(gap.Matching)) + m.scoring.PartialCredit*float64(len(gap.Similar))
	gap.MatchPercentage = math.Min(100, math.Round(100*credit/float64(len(req))))
	return gap
}

// bestTransferable returns the user skill most similar to required among
// those that qualify as related. Ties keep the earliest user skill.
func (m *Matcher) bestTransferable(required string, user []string) (SimilarMatch, bool) {
	var best SimilarMatch
	found := false
	for _, u := range user {
		cmp := m.Compare(u, required)
		if !m.scoring.Related(cmp) {
			continue
		}
		if !found || cmp.Score > best.Similarity {
			best = SimilarMatch{UserSkill: u, RequiredSkill: required, Similarity: cmp.Score}
			found = true
		}
	}
	return best, found
}

// rankMissing orders missing skills by descending weight, keeping
// declaration order among equal weights.
func rankMissing(missing []string, weights map[string]float64) {
	if len(weights) == 0 || len(missing) < 2 {
		return
	}
	normalized := make(map[string]float64, len(weights))
	for k, w := range weights {
		normalized[Normalize(k)] = w
	}
	sort.SliceStable(missing, func(i, j int) bool {
		return normalized[Normalize(missing[i])] > normalized[Normalize(missing[j])]
	})
}
