// Package route defines the route model matched by package rmatch.
//
// A route is a path split onto entries, with a flag telling whether it
// denotes a directory:
//
//	r, _ := route.Parse("/articles/2024/intro.html?lang=en")
//	r.Len()      // 3
//	r.Dir        // false
//	r.String()   // "articles/2024/intro.html?lang=en"
//
// Entry names are URL-decoded, with '+' treated as space. The raw form of
// each segment is retained, so String reproduces the source path.
//
// # Matrix Routes
//
// ParseMatrix and MatrixFromURL additionally split ";name=value"
// attributes off each segment:
//
//	r, _ := route.ParseMatrix("/dir;attr=one;attr=two/file")
//	r.Path[0].Name            // "dir"
//	r.Path[0].Attrs["attr"]   // ["one", "two"]
//
// # Sections
//
// Section and Tail return sub-ranges of a route without copying entries.
// A section that stops before the end of the route is a directory and has
// no query.
package route
