package routehttp

import (
	"context"
	"net/http"

	"github.com/vitalvas/routematch/routetable"
)

// hitContextKey is an unexported type for the single context key.
type hitContextKey struct{}

var ctxKey = hitContextKey{}

// Vars returns the route variables for the current request, if any.
func Vars(r *http.Request) map[string]string {
	if hit, ok := r.Context().Value(ctxKey).(*routetable.Hit); ok {
		return hit.Vars
	}
	return nil
}

// VarGet returns the value of a single route variable by name and a boolean
// indicating whether the variable exists.
func VarGet(r *http.Request, name string) (string, bool) {
	if hit, ok := r.Context().Value(ctxKey).(*routetable.Hit); ok && hit.Vars != nil {
		val, exists := hit.Vars[name]
		return val, exists
	}
	return "", false
}

// CurrentHit returns the matched route for the current request. This only
// works inside the handler of the matched route and its middleware.
func CurrentHit(r *http.Request) (routetable.Hit, bool) {
	if hit, ok := r.Context().Value(ctxKey).(*routetable.Hit); ok {
		return *hit, true
	}
	return routetable.Hit{}, false
}

// SetHit stores the matched route in the request context, returning the
// modified request. This is intended for testing route handlers.
func SetHit(r *http.Request, hit routetable.Hit) *http.Request {
	return setHit(r, &hit)
}

func setHit(r *http.Request, hit *routetable.Hit) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey, hit))
}
