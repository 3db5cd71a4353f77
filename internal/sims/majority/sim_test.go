package majority

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"majority-ca/internal/core"
)

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["majority"]
	if !ok {
		t.Fatal("majority sim should be registered")
	}
	sim, err := factory(map[string]string{"w": "8", "h": "6", "seed": "abc"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if got := sim.Size(); got != (core.Size{W: 8, H: 6}) {
		t.Fatalf("unexpected size %+v", got)
	}
	if len(sim.Cells()) != 48 {
		t.Fatalf("expected 48 cells, got %d", len(sim.Cells()))
	}
	if !slices.Contains(core.SimNames(), "majority") {
		t.Fatal("SimNames should list majority")
	}
}

func TestRegisteredFactoryRejectsOutOfRange(t *testing.T) {
	factory := core.Sims()["majority"]
	cases := []map[string]string{
		{"fill": "1.5"},
		{"fill": "-0.2"},
		{"w": "0"},
		{"h": "-4"},
		{"threshold": "-1"},
	}
	for _, opts := range cases {
		sim, err := factory(opts)
		if !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("%v: expected configuration error, got %v", opts, err)
		}
		if sim != nil {
			t.Fatalf("%v: expected no sim on error", opts)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FillPercent = 2
	if _, err := New(cfg); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestSimSeededResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 24, 16, "glade"

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	b, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("sims with the same seed should start identically")
	}
	for i := 0; i < 3; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
		if err := b.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("sims with the same seed should evolve identically")
	}
	if a.Generation() != 3 {
		t.Fatalf("expected generation 3, got %d", a.Generation())
	}

	a.SeedRandom("glade")
	b.SeedRandom("glade")
	_ = a.Reset()
	_ = b.Reset()
	if !slices.Equal(a.Cells(), b.Cells()) || a.Generation() != 0 {
		t.Fatal("reseeded reset should match and clear the generation")
	}
}

func TestSimParameterSetters(t *testing.T) {
	s, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if !s.SetIntParameter(keyNeighborThreshold, 12) {
		t.Fatal("threshold should be adjustable")
	}
	if got := s.Config().NeighborThreshold; got != 9 {
		t.Fatalf("expected threshold clamped to 9, got %d", got)
	}
	if !s.SetIntParameter(keyNeighborThreshold, -2) || s.Config().NeighborThreshold != 0 {
		t.Fatalf("expected threshold clamped to 0, got %d", s.Config().NeighborThreshold)
	}

	if !s.SetFloatParameter(keyFillPercent, 1.5) {
		t.Fatal("fill percent should be adjustable")
	}
	if got := s.Config().FillPercent; got != 1 {
		t.Fatalf("expected fill clamped to 1, got %v", got)
	}

	if s.SetFloatParameter(keyNeighborThreshold, 3) {
		t.Fatal("threshold is not a float parameter")
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}

	snap := s.Parameters()
	p, ok := snap.Lookup(keyFillPercent)
	if !ok || p.Value != "1" {
		t.Fatalf("snapshot fill = %+v, ok=%v", p, ok)
	}
	p, ok = snap.Lookup(keyNeighborThreshold)
	if !ok || p.Value != "0" {
		t.Fatalf("snapshot threshold = %+v, ok=%v", p, ok)
	}
	if len(s.ParameterControls()) != 2 {
		t.Fatalf("expected two controls, got %d", len(s.ParameterControls()))
	}
}

func TestSimDetectsFixedPoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.FillPercent = 8, 8, 0
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.Period() != 0 {
		t.Fatal("fresh sim has no history to compare")
	}
	if err := s.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.LiveCount() != 0 {
		t.Fatalf("expected empty grid, got %d alive", s.LiveCount())
	}
	if s.Period() != 1 {
		t.Fatalf("expected fixed point, got period %d", s.Period())
	}
}
