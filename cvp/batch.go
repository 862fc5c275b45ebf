package cvp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// NearestPoints decodes targets concurrently with at most workers goroutines
// (workers ≤ 0 means one per target) and returns the results in target order.
// The first failing query cancels the ones not yet started; its error is
// returned with the index of the target.
//
// A budget error is a failure here: callers that want best-effort points
// should call ClosestPoint directly.
func NearestPoints(ctx context.Context, d Decoder, targets [][]float64, workers int) ([]Result, error) {
	out := make([]Result, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := d.ClosestPoint(targets[i])
			if err != nil {
				return fmt.Errorf("NearestPoints: target %d: %w", i, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
