// Package match binds the fuzzy scoring used to filter application names.
package match

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Matcher scores a candidate against a query.
// ok is false when the candidate does not match; higher scores rank first.
type Matcher interface {
	Match(candidate, query string) (score int, ok bool)
}

// Func adapts a plain function to a Matcher
type Func func(candidate, query string) (int, bool)

// Match calls f
func (f Func) Match(candidate, query string) (int, bool) {
	return f(candidate, query)
}

// Fuzzy is a case-insensitive subsequence matcher.
// A blank query matches every candidate with a neutral score of 0.
// Any other query is matched verbatim, surrounding spaces included.
type Fuzzy struct{}

// NewFuzzy returns the default matcher
func NewFuzzy() Fuzzy {
	return Fuzzy{}
}

// Match implements Matcher
func (Fuzzy) Match(candidate, query string) (int, bool) {
	if strings.TrimSpace(query) == "" {
		return 0, true
	}

	matches := fuzzy.Find(query, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}
