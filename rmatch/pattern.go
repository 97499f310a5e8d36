package rmatch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vitalvas/routematch/route"
)

// entryCompiler appends the matchers of a single path segment pattern.
type entryCompiler func(part string, p Pattern) (Pattern, error)

// SimpleRoutePattern compiles a pattern of the simple dialect.
//
// The pattern is split onto segments by '/'. Each segment is one of:
//
//	*               any entry
//	**              any number of entries
//	{}, {name}      entry capture
//	{:**}, {name:**}  capture of any number of entries
//	{name:macro}    entry capture restricted to a macro, e.g. {id:int}
//	{name(re)flags} regular expression capture
//	literal         entry with exactly this name
//
// Segment text is URL-decoded.
func SimpleRoutePattern(dsl string) (Pattern, error) {
	p, err := compilePath(dsl, addSimpleEntryMatchers)
	if err != nil {
		return nil, fmt.Errorf("rmatch: invalid pattern %q: %w", dsl, err)
	}
	return p, nil
}

// URLRoutePattern compiles a pattern of the URL dialect.
//
// Segments accept the syntax of the simple dialect. Besides that, a
// segment may combine literal text with '*' and {capture} or
// {name(re)flags} fragments matching a part of the entry name, e.g.
// "{name}.{ext}" or "*.html".
//
// A trailing "?name" or "?name=value" list, separated by '&', requires
// the route query to contain the named parameters.
func URLRoutePattern(dsl string) (Pattern, error) {
	p, err := compileURL(dsl, addPathEntryMatchers)
	if err != nil {
		return nil, fmt.Errorf("rmatch: invalid pattern %q: %w", dsl, err)
	}
	return p, nil
}

// MatrixRoutePattern compiles a pattern of the matrix dialect.
//
// It extends the URL dialect with ";name" and ";name=value" segment
// suffixes requiring the entry to have the named matrix attributes.
func MatrixRoutePattern(dsl string) (Pattern, error) {
	p, err := compileURL(dsl, addMatrixEntryMatchers)
	if err != nil {
		return nil, fmt.Errorf("rmatch: invalid pattern %q: %w", dsl, err)
	}
	return p, nil
}

func compilePath(path string, add entryCompiler) (Pattern, error) {
	p := Pattern{}
	if path == "" {
		return p, nil
	}

	var err error
	for _, part := range strings.Split(path, "/") {
		if len(p) > 0 {
			p = append(p, DirSep)
		}
		if part == "" {
			continue
		}
		if p, err = add(part, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func compileURL(dsl string, add entryCompiler) (Pattern, error) {
	path, query, _ := strings.Cut(dsl, "?")

	p, err := compilePath(path, add)
	if err != nil {
		return nil, err
	}

	for _, param := range strings.Split(query, "&") {
		if param == "" {
			continue
		}
		name, value, _ := strings.Cut(param, "=")
		name = route.DecodeComponent(name)
		if value == "" {
			p = append(p, SearchParam(name))
		} else {
			p = append(p, SearchParamValue(name, route.DecodeComponent(value)))
		}
	}

	return p, nil
}

func addSimpleEntryMatchers(part string, p Pattern) (Pattern, error) {
	switch part {
	case "*":
		return append(p, AnyEntry), nil
	case "**":
		return append(p, AnyDirs), nil
	}

	if len(part) >= 2 && part[0] == '{' && part[len(part)-1] == '}' {
		m, err := entryBraceMatcher(part[1 : len(part)-1])
		if err != nil {
			return nil, err
		}
		return append(p, m), nil
	}

	if part = strings.TrimSpace(part); part == "" {
		return p, nil
	}
	return append(p, Name(route.DecodeComponent(part))), nil
}

func addPathEntryMatchers(part string, p Pattern) (Pattern, error) {
	switch part {
	case "*":
		return append(p, AnyEntry), nil
	case "**":
		return append(p, AnyDirs), nil
	}

	if part[0] == '{' && strings.IndexByte(part, '}') == len(part)-1 {
		m, err := entryBraceMatcher(part[1 : len(part)-1])
		if err != nil {
			return nil, err
		}
		return append(p, m), nil
	}

	offset := 0
	for i := 0; i < len(part); {
		var (
			m    Matcher
			next int
		)

		switch part[i] {
		case '*':
			m, next = Any, i+1
		case '{':
			end := strings.IndexByte(part[i+1:], '}')
			if end < 0 {
				// Unclosed brace is a literal.
				i++
				continue
			}
			end += i + 1

			var err error
			if m, err = partBraceMatcher(part[i+1 : end]); err != nil {
				return nil, err
			}
			next = end + 1
		default:
			i++
			continue
		}

		if offset < i {
			p = append(p, Part(route.DecodeComponent(part[offset:i])))
		}
		p = append(p, m)
		i, offset = next, next
	}

	if offset < len(part) {
		if offset > 0 {
			p = append(p, Part(route.DecodeComponent(part[offset:])))
		} else {
			p = append(p, Name(route.DecodeComponent(part)))
		}
	}

	return p, nil
}

func addMatrixEntryMatchers(part string, p Pattern) (Pattern, error) {
	parts := strings.Split(part, ";")

	var err error
	if parts[0] != "" {
		if p, err = addPathEntryMatchers(parts[0], p); err != nil {
			return nil, err
		}
	}

	for _, attr := range parts[1:] {
		name, value, _ := strings.Cut(attr, "=")
		name = route.DecodeComponent(name)
		if value == "" {
			p = append(p, MatrixAttr(name))
		} else {
			p = append(p, MatrixAttrValue(name, route.DecodeComponent(value)))
		}
	}

	return p, nil
}

// entryBraceMatcher compiles a {body} occupying a whole segment.
func entryBraceMatcher(body string) (Matcher, error) {
	open := strings.IndexByte(body, '(')

	if colon := strings.IndexByte(body, ':'); colon >= 0 && (open < 0 || colon < open) {
		name := route.DecodeComponent(strings.TrimSpace(body[:colon]))
		arg := strings.TrimSpace(body[colon+1:])
		if arg == "**" {
			return CaptureDirs(name), nil
		}
		if m := captureMacro(arg, name, true); m != nil {
			return m, nil
		}
		return CaptureEntry(name), nil
	}

	if m, ok, err := regexpBraceMatcher(body, open); ok {
		return m, err
	}

	return CaptureEntry(route.DecodeComponent(strings.TrimSpace(body))), nil
}

// partBraceMatcher compiles a {body} occupying a part of a segment.
func partBraceMatcher(body string) (Matcher, error) {
	open := strings.IndexByte(body, '(')

	if m, ok, err := regexpBraceMatcher(body, open); ok {
		return m, err
	}

	name, arg, hasArg := strings.Cut(body, ":")
	name = route.DecodeComponent(strings.TrimSpace(name))
	if hasArg {
		if m := captureMacro(strings.TrimSpace(arg), name, false); m != nil {
			return m, nil
		}
	}

	return CaptureAny(name), nil
}

// regexpBraceMatcher compiles a "name(re)flags" brace body. It reports false
// if the brace body has no parenthesized expression.
func regexpBraceMatcher(body string, open int) (Matcher, bool, error) {
	if open < 0 {
		return nil, false, nil
	}
	closing := strings.LastIndexByte(body, ')')
	if closing < open {
		return nil, false, nil
	}

	var (
		name  = route.DecodeComponent(strings.TrimSpace(body[:open]))
		src   = decodeRegexp(body[open+1 : closing])
		flags = strings.TrimSpace(body[closing+1:])
	)

	m, err := newRegExp(src, flags, name)
	if err != nil {
		return nil, true, fmt.Errorf("{%s}: %w", body, err)
	}
	return m, true, nil
}

// decodeRegexp decodes percent-escapes in an expression source. A '+'
// is kept as is.
func decodeRegexp(src string) string {
	if !strings.Contains(src, "%") {
		return src
	}
	if s, err := url.PathUnescape(src); err == nil {
		return s
	}
	return src
}
