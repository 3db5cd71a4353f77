package majority

import (
	"math"
	"strconv"

	"majority-ca/internal/core"
)

const (
	keyFillPercent       = "fill_percent"
	keyNeighborThreshold = "neighbor_threshold"
)

var controls = []core.ParameterControl{
	{
		Key:    keyFillPercent,
		Label:  "Fill percent",
		Type:   core.ParamTypeFloat,
		Step:   0.05,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	},
	{
		Key:    keyNeighborThreshold,
		Label:  "Neighbor threshold",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    0,
		Max:    9,
		HasMin: true,
		HasMax: true,
	},
}

// Sim binds an Automaton to the framework's Sim contract. Fill percent is
// applied on the next Reset, the threshold on the next Step.
type Sim struct {
	cfg     Config
	auto    *Automaton
	history *History
}

// New validates cfg, seeds the stream from cfg.Seed and performs the first
// Reset.
func New(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, auto: NewAutomaton(nil), history: NewHistory(0)}
	s.auto.SeedRandom(cfg.Seed)
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "majority" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the current grid.
func (s *Sim) Cells() []uint8 { return s.auto.Cells() }

// Automaton exposes the underlying grid for read access.
func (s *Sim) Automaton() *Automaton { return s.auto }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// SeedRandom reseeds the random stream without touching the grid.
func (s *Sim) SeedRandom(seed string) {
	if seed == "" {
		return
	}
	s.cfg.Seed = seed
	s.auto.SeedRandom(seed)
}

// Reset refills the grid from the current stream.
func (s *Sim) Reset() error {
	if err := s.auto.Reset(s.cfg.Width, s.cfg.Height, s.cfg.FillPercent); err != nil {
		return err
	}
	s.history.Reset()
	s.history.Observe(Hash(s.auto.Cells()))
	return nil
}

// Step advances one generation using the configured threshold.
func (s *Sim) Step() error {
	if err := s.auto.Step(s.cfg.NeighborThreshold); err != nil {
		return err
	}
	s.history.Observe(Hash(s.auto.Cells()))
	return nil
}

// Generation counts steps since the last Reset.
func (s *Sim) Generation() int { return s.auto.Generation() }

// LiveCount returns the number of alive cells.
func (s *Sim) LiveCount() int { return s.auto.LiveCount() }

// Period reports the detected fixed point or oscillation period, or 0.
func (s *Sim) Period() int { return s.history.Period() }

// ParameterControls lists the HUD-adjustable parameters.
func (s *Sim) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// Parameters snapshots the current configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeString, Value: s.cfg.Seed},
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				floatParam(keyFillPercent, "Fill percent", s.cfg.FillPercent),
				intParam(keyNeighborThreshold, "Neighbor threshold", s.cfg.NeighborThreshold),
			},
		},
	}}
}

// SetIntParameter updates an integer parameter, clamping to its bounds.
func (s *Sim) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	switch key {
	case keyNeighborThreshold:
		s.cfg.NeighborThreshold = ctrl.ClampInt(float64(value))
		return true
	}
	return false
}

// SetFloatParameter updates a float parameter, clamping to its bounds.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key, core.ParamTypeFloat)
	if !ok || math.IsNaN(value) {
		return false
	}
	switch key {
	case keyFillPercent:
		s.cfg.FillPercent = ctrl.Clamp(value)
		return true
	}
	return false
}

func controlFor(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func init() {
	core.Register("majority", func(cfg map[string]string) (core.Sim, error) {
		s, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
