package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Reset reseeds the board from the sim's current random stream; Step
// advances one generation. Both leave the board untouched on error.
type Sim interface {
	Name() string
	Size() Size
	Reset() error
	Step() error
	Cells() []uint8
}

// Seeder is implemented by sims whose random stream can be reseeded from a
// string independently of Reset.
type Seeder interface {
	SeedRandom(seed string)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered simulations in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
