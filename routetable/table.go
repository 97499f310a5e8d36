package routetable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/routematch/rmatch"
	"github.com/vitalvas/routematch/route"
)

var (
	// ErrUnknownDialect is returned for routes of unknown dialects.
	ErrUnknownDialect = rmatch.ErrUnknownDialect
	// ErrDuplicateRoute is returned when two routes share a name.
	ErrDuplicateRoute = errors.New("duplicate route name")
	// ErrEmptyName is returned for routes without a name.
	ErrEmptyName = errors.New("empty route name")
)

// Definition declares a named route pattern.
type Definition struct {
	Name    string         `yaml:"name"`
	Pattern string         `yaml:"pattern"`
	Dialect rmatch.Dialect `yaml:"dialect,omitempty"`
}

// UnmarshalYAML decodes a definition from either a mapping or a scalar
// pattern. A scalar pattern is named after itself.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*d = Definition{Name: node.Value, Pattern: node.Value}
		return nil
	case yaml.MappingNode:
		type plain Definition
		return node.Decode((*plain)(d))
	default:
		return fmt.Errorf("unsupported YAML node kind %d for route definition", node.Kind)
	}
}

// Document is the YAML form of a route table.
//
//	dialect: url
//	routes:
//	  - name: user
//	    pattern: users/{id:int}
//	  - name: files
//	    pattern: files/{path:**}
//	    dialect: simple
//	  - about/
type Document struct {
	// Dialect is the default dialect of routes. Defaults to url.
	Dialect rmatch.Dialect `yaml:"dialect,omitempty"`
	Routes  []Definition   `yaml:"routes"`
}

// Hit is a matched route.
type Hit struct {
	// Name is the route name.
	Name string
	// Pattern is the source text of the route pattern.
	Pattern string
	// Vars holds the captures collected by rmatch.RouteCapture.
	Vars map[string]string
}

type compiledRoute struct {
	Definition
	compiled rmatch.Pattern
}

// Table is an ordered set of named route patterns. A route is matched
// against the patterns in declaration order.
//
// A Table is immutable and safe for concurrent use.
type Table struct {
	dialect rmatch.Dialect
	routes  []compiledRoute
	logger  *slog.Logger
	metrics *Metrics
}

// New compiles the definitions into a table. Definitions without a
// dialect use the given one, or rmatch.DialectURL when it is empty.
func New(dialect rmatch.Dialect, defs []Definition, opts ...Option) (*Table, error) {
	t := &Table{
		dialect: dialect,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.dialect == "" {
		t.dialect = rmatch.DialectURL
	}
	if !t.dialect.Valid() {
		return nil, fmt.Errorf("routetable: %w: %q", ErrUnknownDialect, string(t.dialect))
	}

	seen := make(map[string]struct{}, len(defs))
	t.routes = make([]compiledRoute, 0, len(defs))
	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("routetable: route #%d: %w", i+1, ErrEmptyName)
		}
		if _, ok := seen[def.Name]; ok {
			return nil, fmt.Errorf("routetable: route %q: %w", def.Name, ErrDuplicateRoute)
		}
		seen[def.Name] = struct{}{}

		if def.Dialect == "" {
			def.Dialect = t.dialect
		}
		p, err := def.Dialect.Compile(def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("routetable: route %q: %w", def.Name, err)
		}

		t.routes = append(t.routes, compiledRoute{Definition: def, compiled: p})
	}

	t.logger.LogAttrs(
		context.Background(),
		slog.LevelDebug,
		"route table compiled",
		slog.String("dialect", string(t.dialect)),
		slog.Int("routes", len(t.routes)),
	)

	return t, nil
}

// Load decodes a YAML Document and compiles it into a table.
func Load(r io.Reader, opts ...Option) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("routetable: decode: %w", err)
	}

	return New(doc.Dialect, doc.Routes, opts...)
}

// LoadFile is like Load, but reads the document from the named file.
func LoadFile(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("routetable: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Dialect returns the default dialect of the table.
func (t *Table) Dialect() rmatch.Dialect {
	return t.dialect
}

// Names returns route names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.routes))
	for i := range t.routes {
		names[i] = t.routes[i].Name
	}
	return names
}

// Match returns the first route matching r.
//
// The route is matched as is against patterns of every dialect. Use
// MatchURL to build a matrix route for matrix patterns only.
func (t *Table) Match(r *route.Route) (Hit, bool) {
	return t.match(func(rmatch.Dialect) *route.Route { return r }, r.String)
}

// MatchURL returns the first route matching the path and query of u.
// Each pattern is matched against a route built the way its dialect
// expects.
func (t *Table) MatchURL(u *url.URL) (Hit, bool) {
	var plain, matrix *route.Route
	return t.match(func(d rmatch.Dialect) *route.Route {
		if d == rmatch.DialectMatrix {
			if matrix == nil {
				matrix = d.RouteFromURL(u)
			}
			return matrix
		}
		if plain == nil {
			plain = d.RouteFromURL(u)
		}
		return plain
	}, u.EscapedPath)
}

// MatchAll returns every route matching r in declaration order. It does
// not record metrics.
func (t *Table) MatchAll(r *route.Route) []Hit {
	var hits []Hit
	for i := range t.routes {
		if hit, ok := t.routes[i].match(r); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

func (t *Table) match(routeFor func(rmatch.Dialect) *route.Route, path func() string) (Hit, bool) {
	for i := range t.routes {
		cr := &t.routes[i]
		if hit, ok := cr.match(routeFor(cr.Dialect)); ok {
			t.metrics.recordMatch(cr.Name)
			return hit, true
		}
	}

	t.metrics.recordMiss()
	if ctx := context.Background(); t.logger.Enabled(ctx, slog.LevelDebug) {
		t.logger.LogAttrs(ctx, slog.LevelDebug, "route not matched", slog.String("path", path()))
	}
	return Hit{}, false
}

func (cr *compiledRoute) match(r *route.Route) (Hit, bool) {
	res := rmatch.RouteMatch(r, cr.compiled)
	if res == nil {
		return Hit{}, false
	}
	return Hit{
		Name:    cr.Name,
		Pattern: cr.Pattern,
		Vars:    rmatch.RouteCapture(res),
	}, true
}
