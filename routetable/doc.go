// Package routetable matches routes against an ordered set of named
// patterns, typically loaded from YAML:
//
//	dialect: url
//	routes:
//	  - name: user
//	    pattern: users/{id:int}
//	  - name: asset
//	    pattern: static/{path:**}
//
// Load the table once and share it:
//
//	t, err := routetable.LoadFile("routes.yaml",
//		routetable.WithLogger(slog.Default()),
//		routetable.WithMetrics(routetable.NewMetrics("app_routes", nil)),
//	)
//	if err != nil {
//		return err
//	}
//
//	u, _ := url.Parse("/users/42")
//	if hit, ok := t.MatchURL(u); ok {
//		fmt.Println(hit.Name, hit.Vars["id"]) // user 42
//	}
package routetable
