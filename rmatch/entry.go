package rmatch

import "strings"

type entryMatcher struct {
	capture bool
	key     Key
}

// AnyEntry matches any single entry without capturing it.
//
// Matches only at the beginning of an entry name.
var AnyEntry Matcher = entryMatcher{}

// CaptureEntry returns a matcher that matches any single entry and
// captures its name under the given name, or anonymously when the name
// is empty.
//
// Matches only at the beginning of an entry name. Reports the capture as
// KindCapture.
func CaptureEntry(name string) Matcher {
	return entryMatcher{capture: true, key: Key{Name: name}}
}

func (m entryMatcher) Test(c Context) (Match, bool) {
	if c.NameOffset != 0 {
		return Match{}, false
	}
	match := wholeName(c)
	if m.capture {
		value := c.Name()
		match.Capture = func(captor Captor) {
			captor(Capture{Kind: KindCapture, Key: m.key, Value: value, Context: c})
		}
	}
	return match, true
}

type nameMatcher string

// Name returns a matcher that matches an entry with exactly the given
// name.
func Name(expected string) Matcher {
	return nameMatcher(expected)
}

func (m nameMatcher) Test(c Context) (Match, bool) {
	if c.NameOffset != 0 || c.Name() != string(m) {
		return Match{}, false
	}
	return Match{NameChars: len(m)}, true
}

type partMatcher string

// Part returns a matcher that matches the given text at the current
// position within an entry name.
//
// As a Finder it searches for the text forward in the current entry,
// trying each occurrence until the rest of the pattern matches after it.
func Part(expected string) Matcher {
	return partMatcher(expected)
}

func (m partMatcher) Test(c Context) (Match, bool) {
	if !strings.HasPrefix(c.Rest(), string(m)) {
		return Match{}, false
	}
	return Match{NameChars: len(m)}, true
}

func (m partMatcher) Find(c Context) (*Result, int, bool) {
	name := c.Name()
	for from := c.NameOffset; from <= len(name); {
		idx := strings.Index(name[from:], string(m))
		if idx < 0 {
			return nil, 0, false
		}
		start := from + idx
		rest := RouteMatchAt(c.Route, c.Pattern, Position{
			Entry:      c.EntryIndex,
			NameOffset: start + len(m),
			Matcher:    c.MatcherIndex + 1,
		})
		if rest != nil {
			return rest, start, true
		}
		from = start + 1
	}
	return nil, 0, false
}
