package routetable

import (
	"log/slog"

	"github.com/vitalvas/routematch/rmatch"
)

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the logger of the table. Loading and route misses are
// logged at debug level. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMetrics enables recording of match metrics.
func WithMetrics(m *Metrics) Option {
	return func(t *Table) {
		t.metrics = m
	}
}

// WithDialect sets the dialect of routes declaring none. It overrides
// the dialect of a loaded document.
func WithDialect(d rmatch.Dialect) Option {
	return func(t *Table) {
		t.dialect = d
	}
}
