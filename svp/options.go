package svp

import (
	"log/slog"

	"github.com/katalvlaran/lvlattice/mincut"
)

// Option configures MinCut.
type Option func(*options)

type options struct {
	solver mincut.Solver
	logger *slog.Logger
}

func gatherOptions(opts []Option) options {
	o := options{
		solver: mincut.StoerWagner{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSolver selects the global minimum cut algorithm (default
// mincut.StoerWagner). A nil solver keeps the default.
func WithSolver(s mincut.Solver) Option {
	return func(o *options) {
		if s != nil {
			o.solver = s
		}
	}
}

// WithLogger routes a debug record per solve (cut weight, norm) to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
