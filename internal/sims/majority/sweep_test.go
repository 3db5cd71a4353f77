package majority

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"

	"majority-ca/internal/core"
)

func TestRunUntilStableEmptyGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.FillPercent = 10, 10, 0
	out, err := RunUntilStable(cfg, 50)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Period != 1 || out.Generations != 1 {
		t.Fatalf("empty grid should settle after one step, got %+v", out)
	}
	if out.InitialAlive != 0 || out.FinalAlive != 0 {
		t.Fatalf("unexpected alive fractions %+v", out)
	}
}

func TestRunUntilStableRespectsBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 20, 20, "budget"
	out, err := RunUntilStable(cfg, 1)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Generations != 1 {
		t.Fatalf("expected exactly one generation, got %d", out.Generations)
	}
}

func TestSweepDeterministicAndOrdered(t *testing.T) {
	var cfgs []Config
	for _, threshold := range []int{5, 3, 4} {
		for i := 0; i < 3; i++ {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height = 24, 18
			cfg.Seed = fmt.Sprintf("seed-%d", i)
			cfg.NeighborThreshold = threshold
			cfgs = append(cfgs, cfg)
		}
	}

	first, err := Sweep(context.Background(), cfgs, 40, 4)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	second, err := Sweep(context.Background(), cfgs, 40, 1)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(first) != len(cfgs) {
		t.Fatalf("expected %d outcomes, got %d", len(cfgs), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("outcome %d differs across worker counts: %+v vs %+v", i, first[i], second[i])
		}
		if i > 0 && first[i-1].Config.NeighborThreshold > first[i].Config.NeighborThreshold {
			t.Fatal("outcomes should be ordered by threshold")
		}
	}
}

func TestSweepRejectsInvalidConfig(t *testing.T) {
	bad := DefaultConfig()
	bad.Width = 0
	_, err := Sweep(context.Background(), []Config{DefaultConfig(), bad}, 10, 2)
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
