package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlattice/matrix"
)

// ErrSourceOutOfRange is returned when the source index is not a vertex.
var ErrSourceOutOfRange = errors.New("flow: source vertex out of range")

// ErrSinkOutOfRange is returned when the sink index is not a vertex.
var ErrSinkOutOfRange = errors.New("flow: sink vertex out of range")

// ErrSourceIsSink is returned when source == sink.
var ErrSourceIsSink = errors.New("flow: source and sink coincide")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %g", e.From, e.To, e.Cap)
}

// DefaultEpsilon is the capacity below which an edge counts as absent.
const DefaultEpsilon = 1e-9

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation; nil means context.Background().
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Logger: receives one debug record per augmentation; nil is silent.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	Logger               *slog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:     context.Background(),
		Epsilon: DefaultEpsilon,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}

// MaxFlowFunc is the common signature of EdmondsKarp and Dinic, so callers
// can select the algorithm at run time.
type MaxFlowFunc func(capacity matrix.Matrix, source, sink int, opts FlowOptions) (float64, *matrix.Dense, error)

var (
	_ MaxFlowFunc = EdmondsKarp
	_ MaxFlowFunc = Dinic
	_ MaxFlowFunc = FordFulkerson
)
