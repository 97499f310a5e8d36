package rmatch

type dirsMatcher struct {
	capture bool
	key     Key
}

// AnyDirs matches any number of entries, including none, without
// capturing them.
//
// Matches only at the beginning of an entry name.
var AnyDirs Matcher = dirsMatcher{}

// CaptureDirs returns a matcher that matches any number of entries like
// AnyDirs, and captures them under the given name, or anonymously when
// the name is empty.
//
// Reports the capture as KindDirs. An empty span is never captured.
func CaptureDirs(name string) Matcher {
	return dirsMatcher{capture: true, key: Key{Name: name}}
}

func (m dirsMatcher) Test(c Context) (Match, bool) {
	if c.NameOffset != 0 {
		return Match{}, false
	}

	path := c.Route.Path
	if c.Last() {
		return Match{Full: true, Capture: m.emitter(len(path), c, nil)}, true
	}

	// Probe entry boundaries, shortest span first, until the rest of the
	// pattern matches.
	for from := c.EntryIndex; from <= len(path); from++ {
		rest := RouteMatchAt(c.Route, c.Pattern, Position{
			Entry:   from,
			Matcher: c.MatcherIndex + 1,
		})
		if rest != nil {
			return Match{Full: true, Capture: m.emitter(from, c, rest)}, true
		}
	}
	return Match{}, false
}

func (dirsMatcher) Tail(Context) bool {
	return true
}

func (m dirsMatcher) emitter(upto int, c Context, rest *Result) Emitter {
	if !m.capture || upto <= c.EntryIndex {
		if rest == nil {
			return nil
		}
		return rest.Emit
	}
	return func(captor Captor) {
		captor(Capture{Kind: KindDirs, Key: m.key, Upto: upto, Context: c})
		rest.Emit(captor)
	}
}

type dirSepMatcher struct{}

// DirSep matches a directory separator.
//
// It matches with zero width at the beginning of an entry name, and at
// the end of an entry name followed by another entry or terminating a
// directory route. After the end of the route it matches only when the
// route is a directory.
var DirSep Matcher = dirSepMatcher{}

func (dirSepMatcher) Test(c Context) (Match, bool) {
	name := c.Name()
	if c.NameOffset >= len(name) {
		if c.EntryIndex+1 >= len(c.Route.Path) && !c.Route.Dir {
			return Match{}, false
		}
		return Match{Entries: 1}, true
	}
	if c.NameOffset == 0 {
		return Match{}, true
	}
	return Match{}, false
}

func (dirSepMatcher) Find(c Context) (*Result, int, bool) {
	name := c.Name()
	fromEntry := c.EntryIndex + 1
	if fromEntry >= len(c.Route.Path) && !c.Route.Dir {
		return nil, 0, false
	}
	rest := RouteMatchAt(c.Route, c.Pattern, Position{
		Entry:   fromEntry,
		Matcher: c.MatcherIndex + 1,
	})
	if rest == nil {
		return nil, 0, false
	}
	return rest, len(name), true
}

func (dirSepMatcher) Tail(c Context) bool {
	return c.Route.Dir
}
