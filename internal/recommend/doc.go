// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

// Package recommend implements the hybrid career recommender.
//
// # Architecture
//
// Three independent sources score every candidate field:
//
//   - Model: the external predictor, via PredictorAdapter (probability * 100)
//   - Semantic: skill-gap match percentage with partial credit for
//     transferable skills (skills.Matcher)
//   - Rule: exact overlap with the field's known skills, plus a boost for
//     the user's current field
//
// The Ensemble multiplies each raw score by its source weight (0.4, 0.4,
// 0.2 by default) and averages over the sources that scored the candidate.
// The best field then feeds a second, identical pass over its
// specializations, and the best specialization is analyzed for missing
// skills. The Explainer turns the ranking into a summary, key strengths,
// development areas and a transition estimate.
//
// # Failure Model
//
// Recommend surfaces exactly two errors: ErrEmptySkillInput and
// ErrEmptyCatalog. The predictor is raced against Limits.PredictionTimeout
// while the other scorers run; any predictor failure only removes the model
// source from that request.
//
// # Concurrency
//
// The catalog is read-only and shared. Each request builds its own
// skills.Matcher, so similarity memoization never crosses requests. Results
// are cached in a TTL'd LRU keyed by the normalized request.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, pred, logger)
//	res, err := engine.Recommend(ctx, recommend.Request{Skills: []string{"Python", "SQL"}})
package recommend
