package cvp

import (
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lvlattice/lattice"
)

// DefaultTolerance is the minimum improvement a greedy step must achieve.
const DefaultTolerance = 1e-10

// DefaultMaxSteps bounds greedy descents. Descents on well-formed input stop
// far below it.
const DefaultMaxSteps = 1 << 20

const (
	panicMaxNodesInvalid  = "cvp: WithMaxNodes: n must be non-negative"
	panicTimeLimitInvalid = "cvp: WithTimeLimit: d must be non-negative"
	panicToleranceInvalid = "cvp: WithTolerance: tol must be finite, non-negative"
	panicMaxStepsInvalid  = "cvp: WithMaxSteps: n must be non-negative"
)

// Option configures decoders. Constructors panic only on nonsensical values.
type Option func(*options)

type options struct {
	maxNodes  int64         // 0 ⇒ unlimited
	timeLimit time.Duration // 0 ⇒ unlimited
	tolerance float64
	maxSteps  int // 0 ⇒ unlimited
	relevant  []lattice.Point
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
		maxSteps:  DefaultMaxSteps,
		logger:    slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxNodes caps the number of enumeration nodes per search (0 = unlimited).
func WithMaxNodes(n int64) Option {
	if n < 0 {
		panic(panicMaxNodesInvalid)
	}

	return func(o *options) { o.maxNodes = n }
}

// WithTimeLimit caps the wall-clock time per search (0 = unlimited).
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeLimitInvalid)
	}

	return func(o *options) { o.timeLimit = d }
}

// WithTolerance sets the strict-improvement threshold of greedy steps and the
// agreement slack of Checked.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = tol }
}

// WithMaxSteps caps the number of greedy moves per descent (0 = unlimited).
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic(panicMaxStepsInvalid)
	}

	return func(o *options) { o.maxSteps = n }
}

// WithRelevantVectors supplies the relevant vector set for Greedy explicitly.
// The set must contain every Voronoi-relevant vector of the lattice; supersets
// are fine. The points are copied.
func WithRelevantVectors(vs []lattice.Point) Option {
	cp := lattice.ClonePoints(vs)

	return func(o *options) { o.relevant = cp }
}

// WithLogger routes debug events (search statistics, greedy steps) to l.
// A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
