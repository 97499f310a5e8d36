// Package rmatch implements matching of routes against patterns.
//
// A Pattern is a sequence of matchers applied to a route.Route from left
// to right. Each matcher consumes a part of the current entry name, one
// or more whole entries, or nothing at all. A route matches when the
// pattern consumes it entirely.
//
// # Patterns
//
// Patterns are usually compiled from one of three dialects:
//
//	p, err := rmatch.URLRoutePattern("files/{dir:**}/{name}.{ext}")
//	if err != nil {
//		return err
//	}
//
//	r, _ := route.Parse("/files/docs/2024/report.pdf")
//	if res := rmatch.RouteMatch(r, p); res != nil {
//		vars := rmatch.RouteCapture(res)
//		// vars["dir"] == "docs/2024/"
//		// vars["name"] == "report"
//		// vars["ext"] == "pdf"
//	}
//
// SimpleRoutePattern accepts whole-segment wildcards and captures only.
// URLRoutePattern also accepts captures within a segment and query
// parameter conditions. MatrixRoutePattern extends the URL dialect with
// matrix attribute conditions.
//
// # Pattern Macros
//
// Named macros restrict captures to common value shapes with the
// {name:macro} syntax:
//
//	users/{id:uuid}
//	articles/{page:int}
//
// Available macros:
//
//	uuid     - RFC 4122 UUID (e.g. 550e8400-e29b-41d4-a716-446655440000)
//	int      - unsigned integer (e.g. 42)
//	float    - decimal number (e.g. 3.14, 42, .5)
//	slug     - URL-safe slug (e.g. my-post-title)
//	alpha    - alphabetic characters (e.g. hello)
//	alphanum - alphanumeric characters (e.g. abc123)
//	date     - date in YYYY-MM-DD format (e.g. 2024-01-15)
//	hex      - hexadecimal characters (e.g. deadBEEF)
//	domain   - domain name (e.g. example.com)
//
// # Captures
//
// A successful match is a *Result. Its captures are reported on demand:
//
//	res.Report(rmatch.ClassifyRouteCapture(rmatch.Classifier{
//		Capture: func(key rmatch.Key, value string, _ rmatch.Context) {
//			fmt.Println(key, value)
//		},
//	}, nil))
//
// Anonymous captures, such as {} or {:**}, are keyed $1, $2 and so on in
// the order they are reported.
//
// # Custom Matchers
//
// Any type implementing Matcher may be a part of a pattern. Implement
// Finder to let a preceding wildcard locate the matcher within an entry,
// and Tailer to let it match past the end of the route.
//
// Patterns are immutable and may be used by multiple goroutines
// concurrently.
package rmatch
