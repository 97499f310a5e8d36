package rmatch

type anyMatcher struct {
	capture bool
	key     Key
}

// Any matches any part of an entry name without capturing it.
//
// When last in the pattern, or followed by a matcher unable to search,
// it matches the rest of the entry name. Otherwise it matches up to the
// position the next matcher finds.
var Any Matcher = anyMatcher{}

// CaptureAny returns a matcher that matches any part of an entry name
// like Any, and captures it under the given name, or anonymously when
// the name is empty.
//
// The rest of the entry name is always captured, even when empty. A
// fragment followed by a searching matcher is captured only when not
// empty. Reports the capture as KindCapture.
func CaptureAny(name string) Matcher {
	return anyMatcher{capture: true, key: Key{Name: name}}
}

func (m anyMatcher) Test(c Context) (Match, bool) {
	next, ok := c.nextFinder()
	if !ok {
		match := wholeName(c)
		if m.capture {
			value := c.Rest()
			match.Capture = m.emitter(value, c, nil)
		}
		return match, true
	}

	rest, offset, ok := next.Find(c.next())
	if !ok {
		return Match{}, false
	}

	if !m.capture || offset <= c.NameOffset {
		return Match{Full: true, Capture: rest.Emit}, true
	}

	value := c.Name()[c.NameOffset:offset]
	return Match{Full: true, Capture: m.emitter(value, c, rest)}, true
}

func (m anyMatcher) emitter(value string, c Context, rest *Result) Emitter {
	return func(captor Captor) {
		captor(Capture{Kind: KindCapture, Key: m.key, Value: value, Context: c})
		rest.Emit(captor)
	}
}
