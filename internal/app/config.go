package app

import (
	"flag"
	"strconv"

	"majority-ca/internal/sims/majority"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	ConfigPath string

	Width     int
	Height    int
	Seed      string
	Fill      float64
	Threshold int

	Scale int
	TPS   int
	SPS   int
	HUD   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := majority.DefaultConfig()
	return &Config{
		Sim:       "majority",
		Width:     d.Width,
		Height:    d.Height,
		Fill:      d.FillPercent,
		Threshold: d.NeighborThreshold,
		Scale:     5,
		TPS:       60,
		SPS:       8,
		HUD:       240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON file with grid and rule settings")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed string; empty seeds from the clock")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "probability a cell starts alive")
	fs.IntVar(&c.Threshold, "threshold", c.Threshold, "self+neighbor count a cell must exceed to live")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "generations per second while running")
	fs.IntVar(&c.HUD, "hud", c.HUD, "control panel width in pixels, 0 hides it")
}

// SimOptions builds the factory map for the sim. Values from ConfigPath are
// applied first; flags explicitly set on fs override them.
func (c *Config) SimOptions(fs *flag.FlagSet) (map[string]string, error) {
	opts := map[string]string{}
	if c.ConfigPath != "" {
		file, err := majority.LoadConfig(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		opts["w"] = strconv.Itoa(file.Width)
		opts["h"] = strconv.Itoa(file.Height)
		opts["seed"] = file.Seed
		opts["fill"] = strconv.FormatFloat(file.FillPercent, 'f', -1, 64)
		opts["threshold"] = strconv.Itoa(file.NeighborThreshold)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if c.ConfigPath == "" || set["w"] {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.ConfigPath == "" || set["h"] {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.ConfigPath == "" || set["seed"] {
		opts["seed"] = c.Seed
	}
	if c.ConfigPath == "" || set["fill"] {
		opts["fill"] = strconv.FormatFloat(c.Fill, 'f', -1, 64)
	}
	if c.ConfigPath == "" || set["threshold"] {
		opts["threshold"] = strconv.Itoa(c.Threshold)
	}
	return opts, nil
}
