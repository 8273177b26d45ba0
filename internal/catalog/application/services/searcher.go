package services

import (
	"strings"

	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

// Searcher finds notes by exact tag or by substring match over their
// text fields, using Knuth-Morris-Pratt for the substring scan.
type Searcher struct{}

// NewSearcher creates a new Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// BuildFailureTable computes the longest-proper-prefix-also-suffix table
// for pattern. table[0] is 0 by definition.
func BuildFailureTable(pattern string) []int {
	table := make([]int, len(pattern))
	length := 0
	i := 1
	for i < len(pattern) {
		switch {
		case pattern[i] == pattern[length]:
			length++
			table[i] = length
			i++
		case length > 0:
			length = table[length-1]
		default:
			table[i] = 0
			i++
		}
	}
	return table
}

// Search reports whether pattern occurs in text, scanning text once
// using the failure table to avoid re-examining matched prefixes. An
// empty pattern matches nothing; that is a deliberate policy, not the
// usual substring convention.
func Search(text, pattern string) bool {
	if pattern == "" {
		return false
	}

	table := BuildFailureTable(pattern)
	j := 0
	for i := 0; i < len(text); {
		switch {
		case text[i] == pattern[j]:
			j++
			if j == len(pattern) {
				return true
			}
			i++
		case j > 0:
			j = table[j-1]
		default:
			i++
		}
	}
	return false
}

// SearchByTag returns the notes whose tag list contains tag exactly
// (case-sensitive), preserving original order. No matches is a defined
// zero-result outcome, not an error.
func (s *Searcher) SearchByTag(notes []*item.Note, tag string) []*item.Note {
	var out []*item.Note
	for _, n := range notes {
		if n.HasTag(tag) {
			out = append(out, n)
		}
	}
	return out
}

// SearchFullText returns the notes whose title, description, or tags
// contain query as a substring. Folding is ASCII-only on both sides.
func (s *Searcher) SearchFullText(notes []*item.Note, query string) []*item.Note {
	needle := asciiLower(query)
	var out []*item.Note
	for _, n := range notes {
		if Search(asciiLower(haystack(n)), needle) {
			out = append(out, n)
		}
	}
	return out
}

func asciiLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// haystack concatenates the searchable fields in their documented order:
// title, description, then tags, space-joined.
func haystack(n *item.Note) string {
	parts := append([]string{n.Title(), n.Description()}, n.Tags()...)
	return strings.Join(parts, " ")
}
