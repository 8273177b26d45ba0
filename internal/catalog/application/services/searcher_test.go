package services_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtnlabs/gtn/internal/catalog/application/services"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

func TestBuildFailureTable(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"", []int{}},
		{"a", []int{0}},
		{"aa", []int{0, 1}},
		{"ab", []int{0, 0}},
		{"abab", []int{0, 0, 1, 2}},
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
		{"abcdabd", []int{0, 0, 0, 0, 1, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, services.BuildFailureTable(tt.pattern))
		})
	}
}

func TestSearch_EmptyPatternNeverMatches(t *testing.T) {
	assert.False(t, services.Search("", ""))
	assert.False(t, services.Search("anything", ""))
}

func TestSearch_BasicCases(t *testing.T) {
	assert.True(t, services.Search("hello world", "world"))
	assert.True(t, services.Search("hello world", "hello world"))
	assert.True(t, services.Search("aaab", "aab"))
	assert.False(t, services.Search("hello world", "worlds"))
	assert.False(t, services.Search("", "a"))
	assert.False(t, services.Search("ab", "abc"))
}

func TestSearch_AgreesWithNaiveScan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	alphabet := "abc"

	randString := func(n int) string {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for trial := 0; trial < 500; trial++ {
		text := randString(rng.Intn(30))
		pattern := randString(rng.Intn(6) + 1)
		assert.Equal(t, strings.Contains(text, pattern), services.Search(text, pattern),
			"text=%q pattern=%q", text, pattern)
	}
}

func mustNote(t *testing.T, title, description string, tags ...string) *item.Note {
	t.Helper()
	n, err := item.NewNote(title, description, tags)
	require.NoError(t, err)
	return n
}

func TestSearcher_SearchByTag(t *testing.T) {
	s := services.NewSearcher()
	first := mustNote(t, "first", "", "a", "b")
	second := mustNote(t, "second", "", "c")
	notes := []*item.Note{first, second}

	found := s.SearchByTag(notes, "b")
	require.Len(t, found, 1)
	assert.Same(t, first, found[0])

	assert.Empty(t, s.SearchByTag(notes, "z"))
	assert.Empty(t, s.SearchByTag(notes, "B"))
}

func TestSearcher_SearchByTag_PreservesOrder(t *testing.T) {
	s := services.NewSearcher()
	notes := []*item.Note{
		mustNote(t, "one", "", "shared"),
		mustNote(t, "two", "", "other"),
		mustNote(t, "three", "", "shared"),
	}

	found := s.SearchByTag(notes, "shared")
	require.Len(t, found, 2)
	assert.Equal(t, "one", found[0].Title())
	assert.Equal(t, "three", found[1].Title())
}

func TestSearcher_SearchFullText_CaseInsensitive(t *testing.T) {
	s := services.NewSearcher()
	note := mustNote(t, "Hello World", "greetings", "misc")
	notes := []*item.Note{note}

	for _, query := range []string{"hello", "HELLO", "Hello World", "wOrLd"} {
		found := s.SearchFullText(notes, query)
		require.Len(t, found, 1, "query %q", query)
		assert.Same(t, note, found[0])
	}
}

func TestSearcher_SearchFullText_MatchesAllFields(t *testing.T) {
	s := services.NewSearcher()
	note := mustNote(t, "Title", "some description", "groceries", "home")
	notes := []*item.Note{note}

	assert.Len(t, s.SearchFullText(notes, "DESCRIPT"), 1)
	assert.Len(t, s.SearchFullText(notes, "grocer"), 1)
	// The haystack joins fields with spaces in title, description, tags
	// order, so a query can straddle a field boundary.
	assert.Len(t, s.SearchFullText(notes, "groceries home"), 1)
	assert.Empty(t, s.SearchFullText(notes, "absent"))
}

func TestSearcher_SearchFullText_EmptyQueryMatchesNothing(t *testing.T) {
	s := services.NewSearcher()
	notes := []*item.Note{mustNote(t, "anything", "at all", "tag")}

	assert.Empty(t, s.SearchFullText(notes, ""))
}
