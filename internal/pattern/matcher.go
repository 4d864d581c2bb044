// Package pattern implements the directory-name patterns used to rank and exclude
// directories during a search.
//
// Two pattern forms are supported:
//
//	bin      exact name, compared case-insensitively ("BIN" matches)
//	jdk*     contains, case-insensitive ("openjdk-17" matches, "jre" does not)
//
// A bare "*" matches every name. No other wildcard syntax exists: the marker is only
// recognized at the end of the pattern.
package pattern

import (
	"strings"
)

// Wildcard is the trailing marker that turns a pattern into a contains match.
const Wildcard = "*"

// Kind identifies how a Pattern compares names.
type Kind int

const (
	// KindExact matches names equal to the pattern, ignoring case.
	KindExact Kind = iota
	// KindContains matches names containing the pattern text, ignoring case.
	KindContains
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindContains:
		return "contains"
	default:
		return "unknown"
	}
}

// Pattern is a compiled directory-name pattern.
// The zero value is an exact pattern for the empty name.
type Pattern struct {
	kind Kind
	raw  string // as written, marker included
	text string // exact: name as written; contains: lower-cased text without marker
}

// Compile parses a pattern string once so later comparisons never re-parse it.
func Compile(raw string) Pattern {
	if strings.HasSuffix(raw, Wildcard) {
		return Pattern{
			kind: KindContains,
			raw:  raw,
			text: strings.ToLower(strings.TrimSuffix(raw, Wildcard)),
		}
	}
	return Pattern{kind: KindExact, raw: raw, text: raw}
}

// Exact builds an exact-name pattern.
func Exact(name string) Pattern {
	return Pattern{kind: KindExact, raw: name, text: name}
}

// Contains builds a case-insensitive contains pattern.
func Contains(text string) Pattern {
	return Pattern{kind: KindContains, raw: text + Wildcard, text: strings.ToLower(text)}
}

// Kind reports the pattern's match mode.
func (p Pattern) Kind() Kind {
	return p.kind
}

// Text returns the comparison text, without the wildcard marker.
func (p Pattern) Text() string {
	return p.text
}

// String returns the pattern as it was written.
func (p Pattern) String() string {
	return p.raw
}

// Match reports whether name satisfies the pattern.
func (p Pattern) Match(name string) bool {
	if p.kind == KindContains {
		return strings.Contains(strings.ToLower(name), p.text)
	}
	return strings.EqualFold(name, p.text)
}

// Matches compiles pattern and tests candidate against it.
func Matches(pattern, candidate string) bool {
	return Compile(pattern).Match(candidate)
}

// List is an ordered sequence of compiled patterns. For priorities the index is the
// rank, 0 being the highest.
type List []Pattern

// CompileList compiles every pattern in order.
func CompileList(raws []string) List {
	list := make(List, 0, len(raws))
	for _, raw := range raws {
		list = append(list, Compile(raw))
	}
	return list
}

// Any reports whether at least one pattern matches name.
func (l List) Any(name string) bool {
	for _, p := range l {
		if p.Match(name) {
			return true
		}
	}
	return false
}

// Ranks returns every index whose pattern matches name, ascending.
func (l List) Ranks(name string) []int {
	var ranks []int
	for i, p := range l {
		if p.Match(name) {
			ranks = append(ranks, i)
		}
	}
	return ranks
}

// Best returns the lowest matching index, or -1 when nothing matches.
func (l List) Best(name string) int {
	for i, p := range l {
		if p.Match(name) {
			return i
		}
	}
	return -1
}

// Strings returns the patterns as written.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, p := range l {
		out[i] = p.raw
	}
	return out
}
