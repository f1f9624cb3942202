package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyBlankQueryMatchesEverything(t *testing.T) {
	m := NewFuzzy()
	for _, q := range []string{"", "   ", "\t"} {
		score, ok := m.Match("Firefox", q)
		assert.True(t, ok, "query %q should match", q)
		assert.Equal(t, 0, score, "query %q should score neutral", q)
	}
}

func TestFuzzyMatches(t *testing.T) {
	tests := []struct {
		candidate string
		query     string
		match     bool
	}{
		{"Firefox", "fi", true},
		{"Firefox", "FFX", true},
		{"Files", "fi", true},
		{"Terminal", "fi", false},
		{"Terminal", "trm", true},
		{"Terminal", "xyz", false},
		{"", "a", false},
		{"Firefox", " fi", false},
		{"Gnome Files", " fi", true},
	}

	m := NewFuzzy()
	for _, tt := range tests {
		t.Run(tt.candidate+"/"+tt.query, func(t *testing.T) {
			_, ok := m.Match(tt.candidate, tt.query)
			assert.Equal(t, tt.match, ok)
		})
	}
}

func TestFuzzyPrefersTighterMatch(t *testing.T) {
	m := NewFuzzy()

	prefix, ok := m.Match("Files", "fil")
	require.True(t, ok)
	scattered, ok := m.Match("Office Library", "fil")
	require.True(t, ok)

	assert.Greater(t, prefix, scattered)
}

func TestFuncAdapter(t *testing.T) {
	calls := 0
	var m Matcher = Func(func(candidate, query string) (int, bool) {
		calls++
		return len(candidate), candidate == query
	})

	score, ok := m.Match("abc", "abc")
	assert.True(t, ok)
	assert.Equal(t, 3, score)
	assert.Equal(t, 1, calls)
}
