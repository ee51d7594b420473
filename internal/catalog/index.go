// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package catalog

import (
	"github.com/tomtom215/careerpath/internal/cache"
	"github.com/tomtom215/careerpath/internal/skills"
)

// SkillIndex answers vocabulary questions about a catalog: prefix
// suggestions for skill entry and extraction of known skills from free text.
// It is built once from an immutable Catalog and is safe for concurrent use.
type SkillIndex struct {
	trie      *cache.Trie
	extractor *cache.AhoCorasick
}

// NewSkillIndex indexes every required skill of c, plus the synonym
// spellings of skills that appear in the synonym table.
func NewSkillIndex(c *Catalog) *SkillIndex {
	idx := &SkillIndex{
		trie:      cache.NewTrie(10),
		extractor: cache.NewAhoCorasick(),
	}

	for _, sc := range c.Vocabulary() {
		idx.trie.InsertWeighted(sc.Skill, sc.Count)
		idx.extractor.AddPattern(sc.Skill, sc.Skill)
		if canonical, ok := skills.Canonical(sc.Skill); ok {
			for _, alias := range skills.Aliases(canonical) {
				idx.extractor.AddPattern(alias, sc.Skill)
			}
		}
	}
	idx.extractor.Build()
	return idx
}

// Suggest returns catalog skills starting with prefix, most widely required
// first.
func (i *SkillIndex) Suggest(prefix string, limit int) []cache.Suggestion {
	return i.trie.Autocomplete(prefix, limit)
}

// Extract returns the catalog skills mentioned in text as whole words, in
// the order they appear and without duplicates.
func (i *SkillIndex) Extract(text string) []string {
	matches := i.extractor.SearchWords(text)
	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		skill, _ := m.Data.(string)
		if _, ok := seen[skill]; ok || skill == "" {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// Size returns the number of distinct indexed skills.
func (i *SkillIndex) Size() int {
	return i.trie.Size()
}
