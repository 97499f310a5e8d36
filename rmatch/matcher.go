package rmatch

import "github.com/vitalvas/routematch/route"

// Matcher is implemented by route pattern units.
//
// Test attempts to match the route exactly at the position given by the
// context. It reports false when the route does not match at that
// position.
//
// A matcher may additionally implement Finder and Tailer.
type Matcher interface {
	Test(c Context) (Match, bool)
}

// Finder is implemented by matchers able to search forward within the
// current entry.
//
// Find looks for an offset within the current entry name at which this
// matcher, followed by the rest of the pattern, matches the rest of the
// route. It returns the match of the rest of the pattern and the offset
// the matching fragment starts at.
//
// Matchers open-ended on the right, such as CaptureAny, call Find on the
// next matcher to locate the end of their own fragment.
type Finder interface {
	Find(c Context) (*Result, int, bool)
}

// Tailer is implemented by matchers that can still be satisfied after
// the end of the route.
type Tailer interface {
	Tail(c Context) bool
}

// MatcherFunc adapts an ordinary function to the Matcher interface.
type MatcherFunc func(c Context) (Match, bool)

// Test implements the Matcher interface.
func (f MatcherFunc) Test(c Context) (Match, bool) {
	return f(c)
}

// Pattern is an ordered sequence of matchers.
//
// A pattern is immutable once built and safe for concurrent use by
// multiple goroutines.
type Pattern []Matcher

// Context is a position inside the route a matcher is applied to.
type Context struct {
	// Route is the route being matched.
	Route *route.Route
	// EntryIndex is the index of the current entry. Equals the route
	// length for the position after the end of the route.
	EntryIndex int
	// NameOffset is the offset within the current entry name.
	NameOffset int
	// Pattern is the pattern the matcher belongs to.
	Pattern Pattern
	// MatcherIndex is the index of the matcher within the pattern.
	MatcherIndex int
}

// Entry returns the current entry, or nil past the end of the route.
func (c Context) Entry() *route.Entry {
	if c.EntryIndex >= len(c.Route.Path) {
		return nil
	}
	return &c.Route.Path[c.EntryIndex]
}

// Name returns the current entry name. It panics past the end of the
// route, where matchers must not inspect entries.
func (c Context) Name() string {
	e := c.Entry()
	if e == nil {
		panic("rmatch: no entry after the end of the route")
	}
	return e.Name
}

// Rest returns the unmatched part of the current entry name.
func (c Context) Rest() string {
	name := c.Name()
	if c.NameOffset >= len(name) {
		return ""
	}
	return name[c.NameOffset:]
}

// Last reports whether the matcher is the last one in the pattern.
func (c Context) Last() bool {
	return c.MatcherIndex+1 >= len(c.Pattern)
}

// next returns the context of the following matcher at the same position.
func (c Context) next() Context {
	c.MatcherIndex++
	return c
}

// nextFinder returns the following matcher if it is able to search.
func (c Context) nextFinder() (Finder, bool) {
	if c.Last() {
		return nil, false
	}
	f, ok := c.Pattern[c.MatcherIndex+1].(Finder)
	return f, ok
}

// Match describes a route fragment matched by a Matcher.
//
// The zero value is a zero-width match within the current entry.
type Match struct {
	// Entries is the number of fully matched entries. When positive, the
	// next matcher starts at the entry Entries positions further, at
	// offset NameChars.
	Entries int
	// NameChars is the number of matched characters of the current entry
	// name when Entries is zero.
	NameChars int
	// Full reports whether the rest of the route and pattern is already
	// matched, e.g. by a nested match performed by the matcher.
	Full bool
	// Capture reports the captures of this match. It is invoked only
	// when the whole route matches.
	Capture Emitter
}

// wholeName matches the rest of the current entry name.
func wholeName(c Context) Match {
	return Match{NameChars: len(c.Rest())}
}
