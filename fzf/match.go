// Package fzf implements the fzf-style extended search syntax used to filter
// project paths: space-separated terms that must all match, with ^ and $
// anchors, 'word and 'word' boundaries and ! negation. Matching is
// case-insensitive and uses forward slashes on every platform.
package fzf

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// Matcher deterministically filters paths by multi-term rules.
type Matcher struct {
	terms []term
}

type term struct {
	raw        string
	text       string // lower-cased core text
	negate     bool   // !foo
	anchorHead bool   // ^foo
	anchorTail bool   // foo$
	wordPrefix bool   // 'foo
	wordExact  bool   // 'foo'
}

// NewMatcher parses pattern. An empty pattern matches everything.
func NewMatcher(pattern string) (Matcher, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return Matcher{}, nil
	}
	parts := strings.Fields(pattern)
	terms := make([]term, 0, len(parts))

	for _, p := range parts {
		t, err := parseTerm(p)
		if err != nil {
			return Matcher{}, err
		}
		terms = append(terms, t)
	}
	return Matcher{terms: terms}, nil
}

func parseTerm(p string) (term, error) {
	t := term{raw: p}

	if strings.HasPrefix(p, "!") {
		t.negate = true
		p = p[1:]
		if p == "" {
			return term{}, fmt.Errorf("empty term after negation in %q", t.raw)
		}
	}

	if strings.HasPrefix(p, "'") {
		p = p[1:]
		if p == "" {
			return term{}, fmt.Errorf("empty term after leading quote in %q", t.raw)
		}
		if strings.HasSuffix(p, "'") {
			t.wordExact = true
			p = p[:len(p)-1]
			if p == "" {
				return term{}, fmt.Errorf("empty term in %q", t.raw)
			}
		} else {
			t.wordPrefix = true
		}
	}

	if strings.HasPrefix(p, "^") {
		t.anchorHead = true
		p = p[1:]
	}
	if strings.HasSuffix(p, "$") {
		t.anchorTail = true
		p = p[:len(p)-1]
	}
	if p == "" {
		return term{}, fmt.Errorf("empty term after stripping modifiers in %q", t.raw)
	}

	t.text = strings.ToLower(filepath.ToSlash(p))
	return t, nil
}

// IsEmpty reports whether m matches everything.
func (m Matcher) IsEmpty() bool {
	return len(m.terms) == 0
}

// MatchString reports whether path satisfies every term.
func (m Matcher) MatchString(path string) bool {
	normal := strings.ToLower(filepath.ToSlash(path))
	for _, t := range m.terms {
		if termMatches(t, normal) == t.negate {
			return false
		}
	}
	return true
}

// Match returns the paths that satisfy every term, in input order.
func (m Matcher) Match(paths []string) ([]string, error) {
	if m.IsEmpty() {
		return paths, nil
	}
	var out []string
	for _, path := range paths {
		if m.MatchString(path) {
			out = append(out, path)
		}
	}
	return out, nil
}

func termMatches(t term, path string) bool {
	if t.anchorHead && t.anchorTail && !(t.wordExact || t.wordPrefix) {
		return path == t.text
	}

	// narrow to the region ^ / $ pin down
	sub := path
	if t.anchorHead {
		if !strings.HasPrefix(path, t.text) {
			return false
		}
		sub = path[:len(t.text)]
	}
	if t.anchorTail {
		if !strings.HasSuffix(path, t.text) {
			return false
		}
		sub = path[len(path)-len(t.text):]
	}

	switch {
	case t.wordExact:
		return containsWordExact(sub, t.text)
	case t.wordPrefix:
		return containsWordPrefix(sub, t.text)
	default:
		return strings.Contains(sub, t.text)
	}
}

// containsWordExact reports whether needle appears in s delimited on both
// sides by a word boundary (start/end of string, or non-word rune).
func containsWordExact(s, needle string) bool {
	if needle == "" {
		return false
	}

	for start := 0; start <= len(s)-len(needle); {
		rel := strings.Index(s[start:], needle)
		if rel < 0 {
			break
		}
		idx := start + rel

		if hasWordBoundary(s, idx, len(needle)) {
			return true
		}
		start = idx + 1
	}
	return false
}

// hasWordBoundary checks both sides of s[idx : idx+size] for boundaries.
func hasWordBoundary(s string, idx, size int) bool {
	leftOK := idx == 0 || !isWordChar(rune(s[idx-1]))
	rightOK := idx+size == len(s) || !isWordChar(rune(s[idx+size]))
	return leftOK && rightOK
}

// containsWordPrefix only requires the left-hand boundary.
func containsWordPrefix(s, needle string) bool {
	if needle == "" {
		return false
	}

	for start := 0; start <= len(s)-len(needle); {
		rel := strings.Index(s[start:], needle)
		if rel < 0 {
			break
		}
		idx := start + rel

		if idx == 0 || !isWordChar(rune(s[idx-1])) {
			return true
		}
		start = idx + 1
	}
	return false
}

// crude word-char definition: Unicode letter or digit or underscore.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
