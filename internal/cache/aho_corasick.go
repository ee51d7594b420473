// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package cache

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// AhoCorasick finds every occurrence of a fixed set of patterns in a text
// in O(n + m + z) time. Matching is case-insensitive.
//
//	ac := cache.NewAhoCorasick()
//	ac.AddPattern("machine learning", "Machine Learning")
//	ac.AddPattern("sql", "SQL")
//	ac.Build()
//	matches := ac.SearchWords("Five years of SQL and machine learning work")
type AhoCorasick struct {
	mu       sync.RWMutex
	root     *acNode
	patterns []Pattern
	built    bool
}

type acNode struct {
	children map[rune]*acNode
	failure  *acNode
	output   []int
}

// Pattern is a search pattern with associated data.
type Pattern struct {
	Text string
	Data any
}

// Match is one occurrence of a pattern in the searched text.
type Match struct {
	Pattern  string
	Data     any
	Position int // byte offset of the match start in the lower-cased text
}

// NewAhoCorasick creates an empty automaton.
func NewAhoCorasick() *AhoCorasick {
	return &AhoCorasick{root: newACNode()}
}

func newACNode() *acNode {
	return &acNode{children: make(map[rune]*acNode)}
}

// AddPattern registers a pattern. Build must be called again before the
// new pattern is searchable.
func (ac *AhoCorasick) AddPattern(pattern string, data any) {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		return
	}

	ac.mu.Lock()
	defer ac.mu.Unlock()

	ac.built = false
	ac.patterns = append(ac.patterns, Pattern{Text: pattern, Data: data})
}

// Build constructs the automaton from the registered patterns.
func (ac *AhoCorasick) Build() {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	if ac.built {
		return
	}

	ac.root = newACNode()
	for i, p := range ac.patterns {
		node := ac.root
		for _, ch := range p.Text {
			next := node.children[ch]
			if next == nil {
				next = newACNode()
				node.children[ch] = next
			}
			node = next
		}
		node.output = append(node.output, i)
	}
	ac.buildFailureLinks()
	ac.built = true
}

// buildFailureLinks links every node to its longest proper suffix in BFS
// order. Must be called with ac.mu held.
func (ac *AhoCorasick) buildFailureLinks() {
	queue := make([]*acNode, 0, len(ac.root.children))
	for _, child := range ac.root.children {
		child.failure = ac.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = ac.root
				continue
			}
			child.failure = fail.children[ch]
			child.output = append(child.output, child.failure.output...)
		}
	}
}

// Search returns every pattern occurrence in text, including occurrences
// inside longer words.
func (ac *AhoCorasick) Search(text string) []Match {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	if !ac.built || len(ac.patterns) == 0 {
		return nil
	}

	lower := strings.ToLower(text)
	var matches []Match
	node := ac.root

	for i, ch := range lower {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = ac.root
			continue
		}
		node = node.children[ch]

		end := i + utf8.RuneLen(ch)
		for _, idx := range node.output {
			p := ac.patterns[idx]
			matches = append(matches, Match{Pattern: p.Text, Data: p.Data, Position: end - len(p.Text)})
		}
	}
	return matches
}

// SearchWords is Search restricted to occurrences bounded by non-word
// characters, so "r" does not match inside "docker".
func (ac *AhoCorasick) SearchWords(text string) []Match {
	all := ac.Search(text)
	if len(all) == 0 {
		return all
	}

	lower := strings.ToLower(text)
	out := all[:0]
	for _, m := range all {
		if isBoundary(lower, m.Position-1, true) && isBoundary(lower, m.Position+len(m.Pattern), false) {
			out = append(out, m)
		}
	}
	return out
}

// isBoundary reports whether the rune ending (before) or starting (after)
// at byte offset pos is absent or a non-word rune.
func isBoundary(s string, pos int, before bool) bool {
	if pos < 0 || pos >= len(s) {
		return true
	}
	var r rune
	if before {
		r, _ = utf8.DecodeLastRuneInString(s[:pos+1])
	} else {
		r, _ = utf8.DecodeRuneInString(s[pos:])
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// PatternCount returns the number of registered patterns.
func (ac *AhoCorasick) PatternCount() int {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return len(ac.patterns)
}
