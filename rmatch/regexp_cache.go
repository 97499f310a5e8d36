package rmatch

import (
	"regexp"
	"sync"
)

// regexpCache caches compiled regular expressions by source text.
// Patterns are compiled once and shared, so the cache is bounded by the
// number of distinct expressions used in patterns.
var regexpCache sync.Map

// compileRegexp returns a cached *regexp.Regexp for the given source,
// compiling and caching it on first use.
func compileRegexp(src string) (*regexp.Regexp, error) {
	if v, ok := regexpCache.Load(src); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}

	actual, _ := regexpCache.LoadOrStore(src, re)

	return actual.(*regexp.Regexp), nil
}

// mustCompileRegexp is like compileRegexp but panics on error. Used only
// for sources derived from an already compiled expression.
func mustCompileRegexp(src string) *regexp.Regexp {
	re, err := compileRegexp(src)
	if err != nil {
		panic("rmatch: " + err.Error())
	}
	return re
}
