package rmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrRegExpFlag is returned for unsupported regular expression flags.
var ErrRegExpFlag = errors.New("unsupported regexp flag")

type regexpMatcher struct {
	key    Key
	global bool
	// sticky is anchored at the start of the text it is applied to.
	sticky *regexp.Regexp
	// search locates the first match anywhere in the text.
	search *regexp.Regexp
}

// CaptureRegExp returns a matcher that matches a part of an entry name
// starting at the current position against the regular expression, and
// captures the match under the given name, or anonymously when the name
// is empty.
//
// The expression is applied to the rest of the name, so ^, \A and \b
// are evaluated relative to the current position rather than the start
// of the name. Matching uses leftmost-first semantics: Longest and POSIX
// settings of re are not preserved.
//
// Reports the capture as KindRegExp.
func CaptureRegExp(name string, re *regexp.Regexp) Matcher {
	return newRegExpMatcher(re, name, false)
}

// CaptureRegExpAll is like CaptureRegExp, but repeats the match for as
// long as the expression matches right after the previous match. Each
// match is reported as a separate capture.
func CaptureRegExpAll(name string, re *regexp.Regexp) Matcher {
	return newRegExpMatcher(re, name, true)
}

// NewRegExp compiles the expression source with flags and returns a
// capturing matcher for it.
//
// Recognized flags:
//
//   - i - case-insensitive;
//   - m - multi-line mode;
//   - s - let . match \n;
//   - g - repeated match, as in CaptureRegExpAll.
//
// Flags y, u, d and v are accepted and ignored.
func NewRegExp(src, flags, name string) (Matcher, error) {
	m, err := newRegExp(src, flags, name)
	if err != nil {
		return nil, fmt.Errorf("rmatch: %w", err)
	}
	return m, nil
}

func newRegExp(src, flags, name string) (*regexpMatcher, error) {
	var (
		inline strings.Builder
		global bool
	)
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			if !strings.ContainsRune(inline.String(), f) {
				inline.WriteRune(f)
			}
		case 'g':
			global = true
		case 'y', 'u', 'd', 'v':
		default:
			return nil, fmt.Errorf("%w %q in %q", ErrRegExpFlag, f, flags)
		}
	}

	if inline.Len() > 0 {
		src = "(?" + inline.String() + ")" + src
	}

	re, err := compileRegexp(src)
	if err != nil {
		return nil, fmt.Errorf("invalid regexp %q: %w", src, err)
	}

	return newRegExpMatcher(re, name, global), nil
}

func newRegExpMatcher(re *regexp.Regexp, name string, global bool) *regexpMatcher {
	src := re.String()
	return &regexpMatcher{
		key:    Key{Name: name},
		global: global,
		sticky: mustCompileRegexp(`\A(?:` + src + `)`),
		search: re,
	}
}

func (m *regexpMatcher) Test(c Context) (Match, bool) {
	var (
		name    = c.Name()
		names   = m.sticky.SubexpNames()
		pos     = c.NameOffset
		matches []*RegExpMatch
	)

	for {
		loc := m.sticky.FindStringSubmatchIndex(name[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		matches = append(matches, newRegExpMatch(name, loc, names))

		empty := loc[1] == pos
		pos = loc[1]
		if !m.global || empty {
			break
		}
	}

	if len(matches) == 0 {
		return Match{}, false
	}

	return Match{
		NameChars: pos - c.NameOffset,
		Capture: func(captor Captor) {
			for _, match := range matches {
				captor(Capture{Kind: KindRegExp, Key: m.key, RegExp: match, Context: c})
			}
		},
	}, true
}

// Find searches for the expression forward in the current entry and
// matches the rest of the pattern starting from each found position
// until success.
func (m *regexpMatcher) Find(c Context) (*Result, int, bool) {
	name := c.Name()
	for from := c.NameOffset; from <= len(name); {
		loc := m.search.FindStringIndex(name[from:])
		if loc == nil {
			return nil, 0, false
		}
		start := from + loc[0]
		rest := RouteMatchAt(c.Route, c.Pattern, Position{
			Entry:      c.EntryIndex,
			NameOffset: start,
			Matcher:    c.MatcherIndex,
		})
		if rest != nil {
			return rest, start, true
		}
		if start >= len(name) {
			break
		}
		_, size := utf8.DecodeRuneInString(name[start:])
		from = start + size
	}
	return nil, 0, false
}
