package rmatch

import (
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/vitalvas/routematch/route"
)

// ErrUnknownDialect is returned for pattern dialects other than the
// predefined ones.
var ErrUnknownDialect = errors.New("unknown pattern dialect")

// Dialect names a pattern syntax.
type Dialect string

const (
	// DialectSimple is the syntax of SimpleRoutePattern.
	DialectSimple Dialect = "simple"
	// DialectURL is the syntax of URLRoutePattern.
	DialectURL Dialect = "url"
	// DialectMatrix is the syntax of MatrixRoutePattern.
	DialectMatrix Dialect = "matrix"
)

// Valid reports whether the dialect is one of the predefined ones.
func (d Dialect) Valid() bool {
	switch d {
	case DialectSimple, DialectURL, DialectMatrix:
		return true
	}
	return false
}

// Compile compiles the pattern of the given dialect.
func (d Dialect) Compile(dsl string) (Pattern, error) {
	switch d {
	case DialectSimple:
		return SimpleRoutePattern(dsl)
	case DialectURL:
		return URLRoutePattern(dsl)
	case DialectMatrix:
		return MatrixRoutePattern(dsl)
	}
	return nil, fmt.Errorf("rmatch: %w: %q", ErrUnknownDialect, string(d))
}

// ParseRoute parses a route the way patterns of the dialect expect it.
// Matrix patterns need matrix routes, the others plain ones.
func (d Dialect) ParseRoute(s string) (*route.Route, error) {
	if d == DialectMatrix {
		return route.ParseMatrix(s)
	}
	return route.Parse(s)
}

// RouteFromURL builds a route from an URL the way patterns of the dialect
// expect it.
func (d Dialect) RouteFromURL(u *url.URL) *route.Route {
	if d == DialectMatrix {
		return route.MatrixFromURL(u)
	}
	return route.FromURL(u)
}

// RouteSource is the set of values a route can be built from.
type RouteSource interface {
	*route.Route | *url.URL | string
}

// PatternSource is the set of values a pattern can be built from.
type PatternSource interface {
	Pattern | string
}

// MatchSimpleRoute matches the route against the pattern of the simple
// dialect and returns the captures collected by RouteCapture.
//
// A string route is parsed with route.Parse.
// A string pattern is compiled with SimpleRoutePattern.
//
// It returns a nil map when the route does not match, and an error when
// either the route or the pattern can not be parsed.
func MatchSimpleRoute[R RouteSource, P PatternSource](r R, p P) (map[string]string, error) {
	return matchRoute(DialectSimple, r, p)
}

// MatchURLRoute is like MatchSimpleRoute, but compiles string patterns
// with URLRoutePattern.
func MatchURLRoute[R RouteSource, P PatternSource](r R, p P) (map[string]string, error) {
	return matchRoute(DialectURL, r, p)
}

// MatchMatrixRoute is like MatchSimpleRoute, but builds routes with
// route.ParseMatrix or route.MatrixFromURL and compiles string patterns
// with MatrixRoutePattern.
func MatchMatrixRoute[R RouteSource, P PatternSource](r R, p P) (map[string]string, error) {
	return matchRoute(DialectMatrix, r, p)
}

func matchRoute[R RouteSource, P PatternSource](d Dialect, r R, p P) (map[string]string, error) {
	var rt *route.Route
	switch v := any(r).(type) {
	case *route.Route:
		rt = v
	case *url.URL:
		rt = d.RouteFromURL(v)
	case string:
		var err error
		if rt, err = d.ParseRoute(v); err != nil {
			return nil, err
		}
	}

	var pattern Pattern
	switch v := any(p).(type) {
	case Pattern:
		pattern = v
	case string:
		var err error
		if pattern, err = compilePattern(d, v); err != nil {
			return nil, err
		}
	}

	res := RouteMatch(rt, pattern)
	if res == nil {
		return nil, nil
	}
	return RouteCapture(res), nil
}

type patternKey struct {
	dialect Dialect
	dsl     string
}

// patternCache caches compiled patterns of the convenience functions by
// dialect and source text.
var patternCache sync.Map

func compilePattern(d Dialect, dsl string) (Pattern, error) {
	key := patternKey{dialect: d, dsl: dsl}
	if v, ok := patternCache.Load(key); ok {
		return v.(Pattern), nil
	}

	p, err := d.Compile(dsl)
	if err != nil {
		return nil, err
	}

	actual, _ := patternCache.LoadOrStore(key, p)

	return actual.(Pattern), nil
}
