package rmatch

import "github.com/vitalvas/routematch/route"

// Position is a starting point of a match.
type Position struct {
	// Entry is the index of the first route entry to match.
	Entry int
	// NameOffset is the offset within the first entry name.
	NameOffset int
	// Matcher is the index of the first pattern matcher to apply.
	Matcher int
}

// Result is a successful match of a route against a pattern.
//
// It records the capture emitters of the matched fragments in the order
// the fragments were matched, without evaluating them.
type Result struct {
	emitters []Emitter
}

// Emit replays the recorded captures to the captor as is.
//
// Matchers use it to include a nested match into their own captures.
// Anonymous keys are left unnumbered.
func (r *Result) Emit(captor Captor) {
	if r == nil {
		return
	}
	for _, emit := range r.emitters {
		emit(captor)
	}
}

// Report replays the recorded captures to the captor, numbering
// anonymous capture keys 1, 2, 3... in report order.
func (r *Result) Report(captor Captor) {
	var seq int
	r.Emit(func(c Capture) {
		if c.Key.Anonymous() {
			seq++
			c.Key.Index = seq
		}
		captor(c)
	})
}

// RouteMatch matches the route against the pattern.
//
// It returns nil if the route does not match.
func RouteMatch(r *route.Route, p Pattern) *Result {
	return RouteMatchAt(r, p, Position{})
}

// RouteMatchAt matches the route against the pattern starting at the
// given position.
//
// Each matcher is tested in order. A matcher failing at its position
// fails the whole match. When the route ends before the pattern does,
// every remaining matcher must be satisfied by its Tail method.
func RouteMatchAt(r *route.Route, p Pattern, from Position) *Result {
	var (
		path         = r.Path
		entryIndex   = from.Entry
		nameOffset   = max(0, from.NameOffset)
		matcherIndex = from.Matcher
		emitters     []Emitter
	)

	for entryIndex < len(path) {
		if matcherIndex >= len(p) {
			// Pattern exhausted. The rest of the entry name must be empty.
			if nameOffset < len(path[entryIndex].Name) {
				return nil
			}
			nameOffset = 0
			entryIndex++
			continue
		}

		m, ok := p[matcherIndex].Test(Context{
			Route:        r,
			EntryIndex:   entryIndex,
			NameOffset:   nameOffset,
			Pattern:      p,
			MatcherIndex: matcherIndex,
		})
		if !ok {
			return nil
		}

		if m.Entries > 0 {
			entryIndex += m.Entries
			nameOffset = m.NameChars
		} else {
			nameOffset += m.NameChars
		}

		if m.Capture != nil {
			emitters = append(emitters, m.Capture)
		}

		if m.Full {
			return &Result{emitters: emitters}
		}

		matcherIndex++
	}

	for ; matcherIndex < len(p); matcherIndex++ {
		t, ok := p[matcherIndex].(Tailer)
		if !ok {
			return nil
		}
		if !t.Tail(Context{
			Route:        r,
			EntryIndex:   len(path),
			Pattern:      p,
			MatcherIndex: matcherIndex,
		}) {
			return nil
		}
	}

	return &Result{emitters: emitters}
}
