// Package match compiles search keywords into patterns and locates the
// first occurrence within a line of text.
package match

import (
	"fmt"
	"regexp"

	"github.com/vvka-141/dbgrep/pkg/dbgrep"
)

// Matcher locates the first occurrence of a compiled search pattern in a
// line of text. A Matcher is compiled once per scan and is safe for
// concurrent use.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a Matcher from a keyword. When isRegex is false every regex
// metacharacter in the keyword is escaped, so `.`, `*`, `(` and friends match
// themselves literally. When ignoreCase is true the whole pattern matches
// case-insensitively.
//
// An invalid regular expression is a configuration error
// (dbgrep.ErrInvalidPattern), never a per-file error.
func Compile(keyword string, isRegex, ignoreCase bool) (*Matcher, error) {
	expr := keyword
	if !isRegex {
		expr = regexp.QuoteMeta(keyword)
	}
	if ignoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dbgrep.ErrInvalidPattern, err)
	}
	return &Matcher{re: re}, nil
}

// Find returns the byte offsets [start, end) of the first match in text.
// ok is false when text contains no match. Patterns that could match several
// times per line still yield only the first span.
func (m *Matcher) Find(text string) (start, end int, ok bool) {
	loc := m.re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Matches reports whether text contains at least one match.
func (m *Matcher) Matches(text string) bool {
	return m.re.MatchString(text)
}
