package ca

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// stepperConfig carries the configuration a Stepper needs from the Engine
// façade to advance one generation.
type stepperConfig struct {
	neighborhood Neighborhood
	boundary     Boundary
	radius       int
	numStates    int
	rule         RuleType
	workers      int
}

// step advances g by exactly one generation under cfg, invoking custom for
// Custom rules. It is internally parallel across focus cells: current is
// read-only and next is partitioned so each coordinate is written by at
// most one worker, except when a Custom rule moves a cell to a foreign
// destination, in which case the last write observed wins (documented, not
// guaranteed-fair, per the concurrency model). If any per-cell rule
// application returns an error, the in-flight workers are cancelled via
// errgroup's first-error propagation and the grid is left unswapped, so the
// engine remains in its pre-step state.
func step[T Cell](g *Grid[T], cfg stepperConfig, custom CustomRuleFunc[T]) error {
	g.ResetNext()

	coords := g.Coords()

	grp, ctx := errgroup.WithContext(context.Background())
	if cfg.workers > 0 {
		grp.SetLimit(cfg.workers)
	}

	for _, c := range coords {
		c := c
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			neighbors := ViewNeighborhood(g, c, cfg.neighborhood, cfg.boundary, cfg.radius)
			if neighbors.Frozen {
				g.SetNext(c, g.Get(c))
				return nil
			}

			focus := g.Get(c)
			newCoord, newVal, err := applyRule(cfg.rule, cfg.numStates, c, neighbors, focus, custom)
			if err != nil {
				return err
			}

			var empty T
			if newVal == empty {
				return nil
			}
			if !g.InBounds(newCoord) {
				return nil
			}
			g.SetNext(newCoord, newVal)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return err
	}

	g.Swap()
	return nil
}
