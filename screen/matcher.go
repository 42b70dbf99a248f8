// Package screen matches sub-theme keyword lists against record search text
// and aggregates the results into count, hit, and flag tables.
package screen

import (
	"regexp"
	"strings"
)

// Matcher tests one sub-theme's keyword list against record text. Keywords
// are matched as case-insensitive literal substrings; regex metacharacters
// in a keyword carry no special meaning.
type Matcher struct {
	re *regexp.Regexp // nil when the keyword list is empty
}

// NewMatcher compiles a single alternation pattern over the escaped
// keywords. An empty list yields a matcher that never matches; a zero-branch
// alternation has no defined pattern, so the case is an explicit branch.
func NewMatcher(keywords []string) *Matcher {
	if len(keywords) == 0 {
		return &Matcher{}
	}
	escaped := make([]string, len(keywords))
	for i, k := range keywords {
		escaped[i] = regexp.QuoteMeta(k)
	}
	return &Matcher{re: regexp.MustCompile("(?i)" + strings.Join(escaped, "|"))}
}

// Match reports whether any keyword occurs anywhere in text.
func (m *Matcher) Match(text string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(text)
}
