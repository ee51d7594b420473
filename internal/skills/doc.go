// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

// Package skills compares free-form skill labels and measures how far a set
// of skills is from a required-skill profile.
//
// # Similarity
//
// Two labels are compared after normalization (lower-cased, trimmed, inner
// whitespace collapsed). The first rule that applies decides the score:
//
//  1. Exact match: 1.0
//  2. Both labels resolve to the same entry of the synonym table: 1.0
//  3. One label contains the other and the contained label has at least
//     3 characters: 0.8
//  4. The labels share a prefix of at least 5 characters: 0.75
//  5. Otherwise the sequence-matcher ratio of the two labels
//
// The comparison is symmetric: Compare(a, b) and Compare(b, a) always return
// the same Match. Constants live in Scoring so callers can override them.
//
// # Gap Analysis
//
// Matcher.Analyze splits a required-skill list into exact matches,
// transferable (related) matches and missing skills, and computes a match
// percentage that gives half credit for transferable skills:
//
//	m := skills.NewMatcher(skills.DefaultScoring())
//	gap := m.Analyze([]string{"Python", "SQL"}, required, weights)
//	// gap.MatchPercentage, gap.Missing ...
//
// A Matcher memoizes pair comparisons and is meant to live for a single
// recommendation request. It is not safe for concurrent use.
package skills
