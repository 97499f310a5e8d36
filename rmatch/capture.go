package rmatch

import (
	"strconv"
)

// Kind identifies the shape of a reported capture.
type Kind string

const (
	// KindCapture is a plain substring capture. The value is in
	// Capture.Value.
	KindCapture Kind = "capture"
	// KindDirs is a directory span capture. The span starts at
	// Capture.Context.EntryIndex and ends before Capture.Upto.
	KindDirs Kind = "dirs"
	// KindRegExp is a regular expression capture. The match is in
	// Capture.RegExp.
	KindRegExp Kind = "regexp"
)

// Key is the key of a capture: either a name or, for anonymous
// captures, a 1-based index assigned in report order.
type Key struct {
	Name  string
	Index int
}

// Anonymous reports whether the key has no name.
func (k Key) Anonymous() bool {
	return k.Name == ""
}

// String returns the key name, or "$N" for anonymous keys.
func (k Key) String() string {
	if k.Anonymous() {
		return "$" + strconv.Itoa(k.Index)
	}
	return k.Name
}

// Capture is a route fragment reported by a matcher.
type Capture struct {
	Kind Kind
	Key  Key
	// Value is the captured text of KindCapture and custom kinds.
	Value string
	// Upto is the index of the entry following the last captured one
	// for KindDirs.
	Upto int
	// RegExp is the expression match for KindRegExp.
	RegExp *RegExpMatch
	// Context is the context of the capturing matcher.
	Context Context
}

// Captor receives captures of a successful match.
type Captor func(c Capture)

// Emitter reports captures to a captor.
type Emitter func(captor Captor)

// RegExpMatch is a single match of a regular expression against an
// entry name.
type RegExpMatch struct {
	// Input is the entry name the expression was matched against.
	Input string
	// Index is the offset of the match within Input.
	Index int
	// Groups holds the whole match followed by submatches. Groups that
	// did not participate in the match are empty.
	Groups []string
	// Indices holds start and end offsets within Input for each group,
	// or -1 for groups that did not participate.
	Indices []int
	// Names holds group names as returned by regexp.Regexp.SubexpNames.
	Names []string
}

// Matched reports whether the i-th group participated in the match.
func (m *RegExpMatch) Matched(i int) bool {
	return i >= 0 && 2*i < len(m.Indices) && m.Indices[2*i] >= 0
}

func newRegExpMatch(input string, loc []int, names []string) *RegExpMatch {
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = input[loc[2*i]:loc[2*i+1]]
		}
	}
	return &RegExpMatch{
		Input:   input,
		Index:   loc[0],
		Groups:  groups,
		Indices: loc,
		Names:   names,
	}
}

// Classifier holds per-kind capture handlers for ClassifyRouteCapture.
// Nil handlers are not called.
type Classifier struct {
	Capture func(key Key, value string, c Context)
	Dirs    func(key Key, upto int, c Context)
	RegExp  func(key Key, m *RegExpMatch, c Context)
}

// ClassifyRouteCapture returns a captor dispatching captures to the
// classifier handler of their kind. Captures without a handler are
// passed to fallback, if any.
func ClassifyRouteCapture(classifier Classifier, fallback Captor) Captor {
	return func(c Capture) {
		switch {
		case c.Kind == KindCapture && classifier.Capture != nil:
			classifier.Capture(c.Key, c.Value, c.Context)
		case c.Kind == KindDirs && classifier.Dirs != nil:
			classifier.Dirs(c.Key, c.Upto, c.Context)
		case c.Kind == KindRegExp && classifier.RegExp != nil:
			classifier.RegExp(c.Key, c.RegExp, c.Context)
		case fallback != nil:
			fallback(c)
		}
	}
}

// RouteCapture collects the captures of a match into a map.
//
//   - capture values are stored under their keys;
//   - regexp matches are stored under their keys, with numbered groups
//     under "<key>$<i>" and named groups under their names;
//   - directory spans are stored as the string form of the matched
//     route section;
//   - other captures store their Value.
//
// Anonymous keys are named "$1", "$2", and so on.
func RouteCapture(r *Result) map[string]string {
	vars := make(map[string]string)
	r.Report(ClassifyRouteCapture(Classifier{
		Capture: func(key Key, value string, _ Context) {
			vars[key.String()] = value
		},
		Dirs: func(key Key, upto int, c Context) {
			vars[key.String()] = c.Route.Section(c.EntryIndex, upto).String()
		},
		RegExp: func(key Key, m *RegExpMatch, _ Context) {
			k := key.String()
			vars[k] = m.Groups[0]
			for i := 1; i < len(m.Groups); i++ {
				if !m.Matched(i) {
					continue
				}
				vars[k+"$"+strconv.Itoa(i)] = m.Groups[i]
				if i < len(m.Names) && m.Names[i] != "" {
					vars[m.Names[i]] = m.Groups[i]
				}
			}
		},
	}, func(c Capture) {
		vars[c.Key.String()] = c.Value
	}))
	return vars
}
