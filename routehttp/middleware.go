package routehttp

import (
	"fmt"
	"log/slog"
	"net/http"
)

// RecoveryMiddleware returns a middleware that recovers from panics in
// downstream handlers. When a panic occurs it returns 500 Internal Server
// Error to the client and logs the panic with the matched route name.
// A nil logger disables logging.
func RecoveryMiddleware(logger *slog.Logger) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if logger != nil {
						hit, _ := CurrentHit(r)
						logger.LogAttrs(
							r.Context(),
							slog.LevelError,
							"panic recovered",
							slog.String("route", hit.Name),
							slog.String("method", r.Method),
							slog.String("path", r.URL.Path),
							slog.String("panic", fmt.Sprint(err)),
						)
					}

					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
