// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package recommend

import (
	"sort"

	"github.com/tomtom215/careerpath/internal/skills"
)

// Ensemble merges the three source rankings into one.
type Ensemble struct {
	Weights     SourceWeights
	TargetBoost float64
}

// NewEnsemble builds an Ensemble from engine configuration.
func NewEnsemble(cfg *Config) Ensemble {
	return Ensemble{Weights: cfg.Weights, TargetBoost: cfg.Boosts.EnsembleTarget}
}

// bucket accumulates one candidate's contributions.
type bucket struct {
	name      string
	bySource  map[Source]Contribution
	matching  []string
	matchSeen map[string]struct{}
	similar   map[string]skills.SimilarMatch
}

// Combine merges the model, semantic and rule lists.
//
// Each entry contributes raw_score*weight. A candidate's final score is the
// mean of its contributions over the sources that actually scored it, so a
// source that is silent about a candidate does not count as zero. The
// candidate named currentTarget gets TargetBoost added, capped at 100.
// Skills are unioned across sources. The result is sorted by final score,
// then consensus, then source count, then best source priority, then name,
// and truncated to topN when topN > 0.
//
// When at least two sources produced scores and exactly one candidate tops
// all of them, that candidate is marked Consensus and its pre-boost score
// is raised to the best pre-boost score of any rival. It therefore ranks
// first unless another candidate gets the current-target boost.
//
// If a source lists a candidate more than once, its highest score is used.
func (e Ensemble) Combine(model, semantic, rule []SourceScore, currentTarget string, topN int) []CombinedScore {
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, list := range [][]SourceScore{model, semantic, rule} {
		for _, s := range list {
			if s.TargetName == "" {
				continue
			}
			b, ok := buckets[s.TargetName]
			if !ok {
				b = &bucket{
					name:      s.TargetName,
					bySource:  make(map[Source]Contribution, 3),
					matchSeen: make(map[string]struct{}),
					similar:   make(map[string]skills.SimilarMatch),
				}
				buckets[s.TargetName] = b
				order = append(order, s.TargetName)
			}
			e.add(b, s)
		}
	}

	consensus := consensusLeader(model, semantic, rule)
	targetNorm := skills.Normalize(currentTarget)
	out := make([]CombinedScore, 0, len(buckets))
	for _, name := range order {
		b := buckets[name]
		cs := CombinedScore{
			Name:           b.name,
			Contributions:  make([]Contribution, 0, len(b.bySource)),
			MatchingSkills: b.matching,
			SimilarSkills:  b.similar,
		}
		sum := 0.0
		for _, src := range []Source{SourceModel, SourceSemantic, SourceRule} {
			if ct, ok := b.bySource[src]; ok {
				cs.Contributions = append(cs.Contributions, ct)
				sum += ct.Weighted
			}
		}
		cs.FinalScore = sum / float64(len(cs.Contributions))
		cs.Consensus = b.name == consensus
		out = append(out, cs)
	}

	if consensus != "" {
		liftConsensus(out)
	}
	for i := range out {
		if targetNorm != "" && skills.Normalize(out[i].Name) == targetNorm {
			out[i].IsCurrent = true
			out[i].FinalScore += e.TargetBoost
		}
		out[i].FinalScore = clampPercent(out[i].FinalScore)
	}

	sortCombined(out)
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

func (e Ensemble) add(b *bucket, s SourceScore) {
	raw := clampPercent(s.RawScore)
	if prev, ok := b.bySource[s.Source]; !ok || raw > prev.RawScore {
		b.bySource[s.Source] = Contribution{Source: s.Source, RawScore: raw, Weighted: raw * e.Weights.For(s.Source)}
	}

	for _, m := range s.MatchingSkills {
		n := skills.Normalize(m)
		if _, dup := b.matchSeen[n]; dup {
			continue
		}
		b.matchSeen[n] = struct{}{}
		b.matching = append(b.matching, m)
	}
	for req, sm := range s.SimilarSkills {
		if prev, ok := b.similar[req]; !ok || sm.Similarity > prev.Similarity {
			b.similar[req] = sm
		}
	}
}

// consensusLeader returns the one candidate ranked first by every non-empty
// source, or "" when fewer than two sources scored anything or the sources
// disagree. A tie for first place within a source counts every tied name.
func consensusLeader(lists ...[]SourceScore) string {
	var agreed map[string]struct{}
	voters := 0
	for _, list := range lists {
		leaders := sourceLeaders(list)
		if len(leaders) == 0 {
			continue
		}
		voters++
		if agreed == nil {
			agreed = leaders
			continue
		}
		for name := range agreed {
			if _, ok := leaders[name]; !ok {
				delete(agreed, name)
			}
		}
	}
	if voters < 2 || len(agreed) != 1 {
		return ""
	}
	for name := range agreed {
		return name
	}
	return ""
}

func sourceLeaders(list []SourceScore) map[string]struct{} {
	best := -1.0
	leaders := make(map[string]struct{})
	for _, s := range list {
		if s.TargetName == "" {
			continue
		}
		raw := clampPercent(s.RawScore)
		switch {
		case raw > best:
			best = raw
			clear(leaders)
			leaders[s.TargetName] = struct{}{}
		case raw == best:
			leaders[s.TargetName] = struct{}{}
		}
	}
	return leaders
}

// liftConsensus raises the consensus candidate to the best rival score.
func liftConsensus(scores []CombinedScore) {
	leader, best := -1, 0.0
	for i := range scores {
		if scores[i].Consensus {
			leader = i
		} else if scores[i].FinalScore > best {
			best = scores[i].FinalScore
		}
	}
	if leader >= 0 && scores[leader].FinalScore < best {
		scores[leader].FinalScore = best
	}
}

// sortCombined orders by final score desc, consensus first, contributing
// source count desc, best source priority, then name.
func sortCombined(scores []CombinedScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		a, b := &scores[i], &scores[j]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		if a.Consensus != b.Consensus {
			return a.Consensus
		}
		if a.SourceCount() != b.SourceCount() {
			return a.SourceCount() > b.SourceCount()
		}
		if pa, pb := bestSource(a), bestSource(b); pa != pb {
			return pa < pb
		}
		return a.Name < b.Name
	})
}

func bestSource(c *CombinedScore) Source {
	if len(c.Contributions) == 0 {
		return SourceRule + 1
	}
	return c.Contributions[0].Source
}
