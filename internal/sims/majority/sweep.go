package majority

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Outcome summarizes one automaton run.
type Outcome struct {
	Config Config
	// Generations is the number of steps taken before the grid settled, or
	// the step budget when it never did.
	Generations int
	// Period is 1 for a fixed point, 2 or 3 for an oscillation, 0 if the run
	// was still evolving when the budget ran out.
	Period       int
	InitialAlive float64
	FinalAlive   float64
}

// RunUntilStable seeds a fresh sim from cfg and steps it until the grid
// repeats or maxSteps generations have passed.
func RunUntilStable(cfg Config, maxSteps int) (Outcome, error) {
	s, err := New(cfg)
	if err != nil {
		return Outcome{}, err
	}
	total := float64(cfg.Width * cfg.Height)
	out := Outcome{Config: cfg, InitialAlive: float64(s.LiveCount()) / total}
	for s.Generation() < maxSteps {
		if err := s.Step(); err != nil {
			return Outcome{}, err
		}
		if p := s.Period(); p > 0 {
			out.Period = p
			break
		}
	}
	out.Generations = s.Generation()
	out.FinalAlive = float64(s.LiveCount()) / total
	return out, nil
}

// Sweep runs every config concurrently with at most workers goroutines.
// Each run owns its automaton. Results are ordered by threshold, then fill,
// then seed. The first configuration error cancels the remaining runs.
func Sweep(ctx context.Context, cfgs []Config, maxSteps, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = 1
	}
	for _, cfg := range cfgs {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]Outcome, len(cfgs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, cfg := range cfgs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := RunUntilStable(cfg, maxSteps)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		ca, cb := results[a].Config, results[b].Config
		if ca.NeighborThreshold != cb.NeighborThreshold {
			return ca.NeighborThreshold < cb.NeighborThreshold
		}
		if ca.FillPercent != cb.FillPercent {
			return ca.FillPercent < cb.FillPercent
		}
		return ca.Seed < cb.Seed
	})
	return results, nil
}
