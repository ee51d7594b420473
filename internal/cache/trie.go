// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package cache

import (
	"sort"
	"strings"
	"sync"
)

type trieNode struct {
	children map[rune]*trieNode
	isEnd    bool
	value    string // original spelling of the stored key
	weight   int
}

// Trie is a thread-safe, case-insensitive prefix tree used for skill
// autocomplete. Each stored value carries a weight; suggestions are ranked
// by weight, then alphabetically.
type Trie struct {
	mu             sync.RWMutex
	root           *trieNode
	size           int
	maxSuggestions int
}

// Suggestion is one autocomplete result.
type Suggestion struct {
	Value  string `json:"value"`
	Weight int    `json:"weight"`
}

// NewTrie creates an empty Trie returning at most maxSuggestions results
// per query (10 when non-positive).
func NewTrie(maxSuggestions int) *Trie {
	if maxSuggestions <= 0 {
		maxSuggestions = 10
	}
	return &Trie{root: newTrieNode(), maxSuggestions: maxSuggestions}
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

func trieKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Insert adds value, or increases its weight by one if already present.
// It reports whether value was new.
func (t *Trie) Insert(value string) bool {
	return t.InsertWeighted(value, 1)
}

// InsertWeighted adds value with the given weight, accumulating weights
// for repeated inserts. The first spelling inserted is kept.
func (t *Trie) InsertWeighted(value string, weight int) bool {
	key := trieKey(value)
	if key == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range key {
		next := node.children[ch]
		if next == nil {
			next = newTrieNode()
			node.children[ch] = next
		}
		node = next
	}

	isNew := !node.isEnd
	if isNew {
		node.isEnd = true
		node.value = strings.TrimSpace(value)
		t.size++
	}
	node.weight += weight
	return isNew
}

// Contains reports whether value is stored.
func (t *Trie) Contains(value string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(trieKey(value))
	return node != nil && node.isEnd
}

// Autocomplete returns stored values starting with prefix, limited to
// limit results (the Trie default when non-positive). An empty prefix
// lists the whole vocabulary.
func (t *Trie) Autocomplete(prefix string, limit int) []Suggestion {
	if limit <= 0 {
		limit = t.maxSuggestions
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(trieKey(prefix))
	if node == nil {
		return []Suggestion{}
	}

	results := make([]Suggestion, 0)
	collect(node, &results)
	sort.Slice(results, func(i, j int) bool {
		if results[i].Weight != results[j].Weight {
			return results[i].Weight > results[j].Weight
		}
		return results[i].Value < results[j].Value
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Size returns the number of stored values.
func (t *Trie) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// find must be called with t.mu held.
func (t *Trie) find(key string) *trieNode {
	node := t.root
	for _, ch := range key {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

func collect(node *trieNode, results *[]Suggestion) {
	if node.isEnd {
		*results = append(*results, Suggestion{Value: node.value, Weight: node.weight})
	}
	for _, child := range node.children {
		collect(child, results)
	}
}
