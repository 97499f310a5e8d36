package route

import (
	"net/url"
	"strings"
)

// Entry is a single path segment of a route.
type Entry struct {
	// Name is the decoded entry name.
	Name string
	// Raw is the segment as it appears in the source path, including
	// any matrix attributes.
	Raw string
	// RawName is Raw without matrix attributes.
	RawName string
	// Attrs holds matrix attributes. Nil for non-matrix routes.
	Attrs url.Values
}

// Route is a path split onto file and directory entries, optionally
// annotated with a query string.
//
// A Route must not be modified once constructed; matchers only read it
// and Section returns new values.
type Route struct {
	// Path contains route entries in order.
	Path []Entry
	// Dir reports whether the route denotes a directory.
	Dir bool
	// Query holds parsed query parameters, if any.
	Query url.Values
	// RawQuery is the query string without the leading '?'.
	RawQuery string
}

// Len returns the number of path entries.
func (r *Route) Len() int {
	return len(r.Path)
}

// Section returns a route containing the entries in [from, to).
//
// The receiver itself is returned when the section covers the whole
// route. A section ending before the end of the route always denotes a
// directory and drops the query.
func (r *Route) Section(from, to int) *Route {
	if from < 0 {
		from = 0
	}
	if to > len(r.Path) {
		to = len(r.Path)
	}
	if from == 0 && to == len(r.Path) {
		return r
	}

	toEnd := to == len(r.Path)
	if to <= from {
		s := &Route{Dir: true}
		if toEnd {
			s.Query = r.Query
			s.RawQuery = r.RawQuery
		}
		return s
	}

	s := &Route{
		Path: r.Path[from:to:to],
		Dir:  true,
	}
	if toEnd {
		s.Dir = r.Dir
		s.Query = r.Query
		s.RawQuery = r.RawQuery
	}
	return s
}

// Tail returns the section of the route starting at the given entry.
func (r *Route) Tail(from int) *Route {
	return r.Section(from, len(r.Path))
}

// String returns the URL-encoded path without the leading '/',
// followed by the query string if present.
func (r *Route) String() string {
	var b strings.Builder
	r.writePath(&b, func(e *Entry) string { return e.Raw })
	if r.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(r.RawQuery)
	}
	return b.String()
}

// PathString returns the URL-encoded path without the leading '/',
// excluding matrix attributes and the query string.
func (r *Route) PathString() string {
	var b strings.Builder
	r.writePath(&b, func(e *Entry) string { return e.RawName })
	return b.String()
}

func (r *Route) writePath(b *strings.Builder, raw func(*Entry) string) {
	for i := range r.Path {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(raw(&r.Path[i]))
	}
	if r.Dir && len(r.Path) > 0 {
		b.WriteByte('/')
	}
}
