package routehttp

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"github.com/vitalvas/routematch/routetable"
)

// ErrUnknownRoute is returned when a handler is registered for a name the
// route table does not declare.
var ErrUnknownRoute = errors.New("unknown route name")

// MiddlewareFunc is a function which receives an http.Handler and returns
// another http.Handler.
type MiddlewareFunc func(http.Handler) http.Handler

// Middleware wraps the handler with mw.
func (mw MiddlewareFunc) Middleware(handler http.Handler) http.Handler {
	return mw(handler)
}

// Router dispatches requests to handlers registered by route name. The
// route is selected by the table: the first route matching the request
// URL wins.
//
//	t, _ := routetable.LoadFile("routes.yaml")
//	r := routehttp.NewRouter(t)
//	r.HandleFunc("user", func(w http.ResponseWriter, req *http.Request) {
//		fmt.Fprintln(w, routehttp.Vars(req)["id"])
//	})
//	http.ListenAndServe(":8080", r)
//
// Handlers and middleware must be registered before serving.
type Router struct {
	// NotFoundHandler is called when no route matches or the matched
	// route has no handler. If nil, http.NotFoundHandler() is used.
	NotFoundHandler http.Handler

	table       *routetable.Table
	handlers    map[string]http.Handler
	middlewares []MiddlewareFunc

	// handlerCache caches the middleware-wrapped handler per route name.
	handlerCache sync.Map // map[string]http.Handler

	skipClean bool
}

// NewRouter returns a router dispatching routes of the table.
func NewRouter(table *routetable.Table) *Router {
	return &Router{
		table:    table,
		handlers: make(map[string]http.Handler),
	}
}

// SkipClean defines the path cleaning behaviour. When false (the default)
// dot segments are removed from the request path before matching.
func (r *Router) SkipClean(value bool) *Router {
	r.skipClean = value
	return r
}

// Handle registers the handler of the named route.
func (r *Router) Handle(name string, handler http.Handler) error {
	if !slices.Contains(r.table.Names(), name) {
		return fmt.Errorf("routehttp: %w: %q", ErrUnknownRoute, name)
	}
	r.handlers[name] = handler
	r.handlerCache.Delete(name)
	return nil
}

// HandleFunc registers the handler function of the named route.
func (r *Router) HandleFunc(name string, f func(http.ResponseWriter, *http.Request)) error {
	return r.Handle(name, http.HandlerFunc(f))
}

// Use appends a MiddlewareFunc to the chain. Middleware is applied to
// matched handlers only.
func (r *Router) Use(mwf ...MiddlewareFunc) {
	r.middlewares = append(r.middlewares, mwf...)
	r.handlerCache.Clear()
}

// Match matches the request URL against the route table and returns the
// hit along with the middleware-wrapped handler of the route. The handler
// is nil when the route has none.
func (r *Router) Match(req *http.Request) (routetable.Hit, http.Handler, bool) {
	hit, ok := r.table.MatchURL(req.URL)
	if !ok {
		return routetable.Hit{}, nil, false
	}
	return hit, r.handler(hit.Name), true
}

// ServeHTTP dispatches the handler of the matched route.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if !r.skipClean {
		if cleaned := cleanPath(req.URL.Path); cleaned != req.URL.Path {
			u := *req.URL
			u.Path = cleaned
			u.RawPath = ""
			req = req.Clone(req.Context())
			req.URL = &u
		}
	}

	hit, handler, ok := r.Match(req)
	if ok && handler != nil {
		handler.ServeHTTP(w, setHit(req, &hit))
		return
	}

	handler = r.NotFoundHandler
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	handler.ServeHTTP(w, req)
}

func (r *Router) handler(name string) http.Handler {
	if cached, ok := r.handlerCache.Load(name); ok {
		return cached.(http.Handler)
	}

	handler, ok := r.handlers[name]
	if !ok {
		return nil
	}
	handler = r.applyMiddleware(handler)
	r.handlerCache.Store(name, handler)
	return handler
}

// applyMiddleware wraps the handler with all registered middleware.
func (r *Router) applyMiddleware(handler http.Handler) http.Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i].Middleware(handler)
	}
	return handler
}
