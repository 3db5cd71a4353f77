package majority

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"majority-ca/internal/core"
)

// Config holds the grid size, seed and rule parameters for the automaton.
type Config struct {
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	Seed              string  `json:"seed"`
	FillPercent       float64 `json:"fill_percent"`
	NeighborThreshold int     `json:"neighbor_threshold"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:             128,
		Height:            128,
		FillPercent:       0.5,
		NeighborThreshold: 4,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that do not parse keep their defaults; parsed values are kept as
// given, even out of range, so Validate reports them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		c.Seed = v
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.FillPercent = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.NeighborThreshold = parsed
		}
	}
	return c
}

// LoadConfig reads a JSON config file on top of DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first out-of-range field as a configuration error.
func (c Config) Validate() error {
	if err := validateReset(c.Width, c.Height, c.FillPercent); err != nil {
		return err
	}
	if c.NeighborThreshold < 0 {
		return core.ConfigErrorf("neighbor threshold %d must not be negative", c.NeighborThreshold)
	}
	return nil
}
