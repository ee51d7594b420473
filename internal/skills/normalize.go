// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package skills

import "strings"

// Normalize returns the comparison form of a skill label.
func Normalize(skill string) string {
	return strings.Join(strings.Fields(strings.ToLower(skill)), " ")
}

// NormalizeAll normalizes labels, dropping empties and duplicates while
// keeping first-seen order.
func NormalizeAll(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		n := Normalize(l)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Dedupe trims labels and drops empties and normalized duplicates, keeping
// the first spelling seen.
func Dedupe(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		n := Normalize(l)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, strings.TrimSpace(l))
	}
	return out
}
