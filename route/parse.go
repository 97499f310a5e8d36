package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Parse constructs a route from a path or URL string.
//
// Strings without a scheme are treated as paths, so "custom/path" and
// "/custom/path" produce the same route, and a colon in the first path
// segment does not start a scheme. Invalid percent-escapes are kept
// verbatim in entry names.
func Parse(s string) (*Route, error) {
	return parse(s, parseEntry)
}

// FromURL constructs a route from the path and query of a URL.
func FromURL(u *url.URL) *Route {
	return build(u, parseEntry)
}

// ParseMatrix constructs a matrix route from a path or URL string.
// Each segment may carry ";name=value" attributes.
func ParseMatrix(s string) (*Route, error) {
	return parse(s, parseMatrixEntry)
}

// MatrixFromURL constructs a matrix route from the path and query of a URL.
func MatrixFromURL(u *url.URL) *Route {
	return build(u, parseMatrixEntry)
}

func parse(s string, parseEntry func(raw string) Entry) (*Route, error) {
	ref := s
	if !hasScheme(ref) && !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}

	u, err := url.Parse(ref)
	if err == nil {
		return build(u, parseEntry), nil
	}

	var escErr url.EscapeError
	if !errors.As(err, &escErr) {
		return nil, fmt.Errorf("route: invalid route %q: %w", s, err)
	}
	return buildRaw(ref, parseEntry), nil
}

// hasScheme reports whether s starts with a URL scheme followed by ':'.
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		case c == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}

func build(u *url.URL, parseEntry func(raw string) Entry) *Route {
	pathname := u.EscapedPath()
	if u.Opaque != "" {
		pathname = u.Opaque
	}

	var query url.Values
	if u.RawQuery != "" || u.ForceQuery {
		query = u.Query()
	}

	return newRoute(pathname, u.RawQuery, query, parseEntry)
}

// buildRaw splits a URL reference that url.Parse rejects for its escapes.
// The path is used as written.
func buildRaw(s string, parseEntry func(raw string) Entry) *Route {
	s, _, _ = strings.Cut(s, "#")
	s, rawQuery, hasQuery := strings.Cut(s, "?")

	if hasScheme(s) {
		_, s, _ = strings.Cut(s, ":")
		if rest, ok := strings.CutPrefix(s, "//"); ok {
			s = ""
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				s = rest[i:]
			}
		}
	}

	var query url.Values
	if hasQuery {
		// Pairs with invalid escapes are dropped, as url.URL.Query does.
		query, _ = url.ParseQuery(rawQuery)
	}

	return newRoute(s, rawQuery, query, parseEntry)
}

func newRoute(pathname, rawQuery string, query url.Values, parseEntry func(raw string) Entry) *Route {
	r := &Route{
		Query:    query,
		RawQuery: rawQuery,
	}

	if !strings.HasPrefix(pathname, "/") {
		pathname = "/" + pathname
	}
	if len(pathname) <= 1 {
		r.Dir = true
		return r
	}

	pathname = strings.TrimPrefix(pathname, "/")
	if strings.HasSuffix(pathname, "/") {
		r.Dir = true
		pathname = pathname[:len(pathname)-1]
	}

	segments := strings.Split(pathname, "/")
	r.Path = make([]Entry, len(segments))
	for i, s := range segments {
		r.Path[i] = parseEntry(s)
	}
	return r
}

func parseEntry(raw string) Entry {
	return Entry{
		Name:    DecodeComponent(raw),
		Raw:     raw,
		RawName: raw,
	}
}

func parseMatrixEntry(raw string) Entry {
	parts := strings.Split(raw, ";")
	attrs := make(url.Values, len(parts)-1)
	for _, part := range parts[1:] {
		name, value, _ := strings.Cut(part, "=")
		attrs.Add(DecodeComponent(name), DecodeComponent(value))
	}
	return Entry{
		Name:    DecodeComponent(parts[0]),
		Raw:     raw,
		RawName: parts[0],
		Attrs:   attrs,
	}
}

// DecodeComponent decodes a URL component, treating '+' as space.
// Text that is not validly percent-encoded is returned unchanged.
func DecodeComponent(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
