package majority

import (
	"math"

	"majority-ca/internal/core"
	pcore "majority-ca/pkg/core"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// Automaton is a binary grid advanced by a self-inclusive majority rule:
// a cell lives next generation iff its own state plus its neighbor count
// exceeds the threshold. It is not safe for concurrent use.
type Automaton struct {
	rng Source
	cur *core.ByteGrid
	nxt *core.ByteGrid
	gen int
}

// NewAutomaton returns an automaton drawing from src. A nil src selects a
// clock-seeded stream. The grid stays unallocated until Reset.
func NewAutomaton(src Source) *Automaton {
	if src == nil {
		src = pcore.NewClockRNG()
	}
	return &Automaton{rng: src}
}

// SeedRandom replaces the random stream with one derived from seed. An empty
// seed keeps the current stream.
func (a *Automaton) SeedRandom(seed string) {
	if seed == "" {
		return
	}
	a.rng = pcore.NewRNGFromString(seed)
}

// Reset allocates a width*height grid and fills it from the random stream,
// one draw per cell in column-major order. A cell is alive when its draw does
// not exceed fillPercent. The stream is not reseeded.
func (a *Automaton) Reset(width, height int, fillPercent float64) error {
	if err := validateReset(width, height, fillPercent); err != nil {
		return err
	}
	cur := core.NewByteGrid(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if a.rng.Float64() <= fillPercent {
				cur.Set(x, y, 1)
			}
		}
	}
	a.cur = cur
	a.nxt = core.NewByteGrid(width, height)
	a.gen = 0
	return nil
}

// ResetWithSeed reseeds the stream from seed (when non-empty) and then resets.
func (a *Automaton) ResetWithSeed(width, height int, fillPercent float64, seed string) error {
	if err := validateReset(width, height, fillPercent); err != nil {
		return err
	}
	a.SeedRandom(seed)
	return a.Reset(width, height, fillPercent)
}

func validateReset(width, height int, fillPercent float64) error {
	if width <= 0 || height <= 0 {
		return core.ConfigErrorf("grid size %dx%d must be positive", width, height)
	}
	if math.IsNaN(fillPercent) || fillPercent < 0 || fillPercent > 1 {
		return core.ConfigErrorf("fill percent %v outside [0,1]", fillPercent)
	}
	return nil
}

// Step advances one generation. Every new value is computed from the previous
// generation into the back buffer before the buffers are swapped.
func (a *Automaton) Step(neighborThreshold int) error {
	if a.cur == nil {
		return core.PreconditionErrorf("step called before reset")
	}
	if neighborThreshold < 0 {
		return core.ConfigErrorf("neighbor threshold %d must not be negative", neighborThreshold)
	}
	w, h := a.cur.W, a.cur.H
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			live := int(a.cur.At(x, y)) + a.NeighborCount(x, y)
			var v uint8
			if live > neighborThreshold {
				v = 1
			}
			a.nxt.Set(x, y, v)
		}
	}
	a.cur, a.nxt = a.nxt, a.cur
	a.gen++
	return nil
}

// NeighborCount sums live neighbors of (x, y). Each diagonal is only reached
// through one orthogonal branch, so at edges a diagonal is skipped whenever
// its owning orthogonal neighbor is out of range. Interior cells see the full
// Moore neighborhood. Returns 0 before Reset and for coordinates outside
// the grid.
func (a *Automaton) NeighborCount(x, y int) int {
	g := a.cur
	if g == nil || !g.Contains(x, y) {
		return 0
	}
	w, h := g.W, g.H
	n := 0
	if x > 0 {
		n += int(g.At(x-1, y))
		if y > 0 {
			n += int(g.At(x-1, y-1))
		}
	}
	if y > 0 {
		n += int(g.At(x, y-1))
		if x < w-1 {
			n += int(g.At(x+1, y-1))
		}
	}
	if x < w-1 {
		n += int(g.At(x+1, y))
		if y < h-1 {
			n += int(g.At(x+1, y+1))
		}
	}
	if y < h-1 {
		n += int(g.At(x, y+1))
		if x > 0 {
			n += int(g.At(x-1, y+1))
		}
	}
	return n
}

// CellAt returns the state of (x, y).
func (a *Automaton) CellAt(x, y int) (uint8, error) {
	if a.cur == nil {
		return 0, core.PreconditionErrorf("cell (%d,%d) read before reset", x, y)
	}
	if !a.cur.Contains(x, y) {
		return 0, core.ConfigErrorf("cell (%d,%d) outside %dx%d grid", x, y, a.cur.W, a.cur.H)
	}
	return a.cur.At(x, y), nil
}

// Snapshot copies the grid into [x][y] order.
func (a *Automaton) Snapshot() ([][]uint8, error) {
	if a.cur == nil {
		return nil, core.PreconditionErrorf("snapshot taken before reset")
	}
	return a.cur.Columns(), nil
}

// Cells exposes the current row-major buffer. Callers must not modify it.
func (a *Automaton) Cells() []uint8 {
	if a.cur == nil {
		return nil
	}
	return a.cur.Cells()
}

// Size returns the grid dimensions, zero before Reset.
func (a *Automaton) Size() core.Size {
	if a.cur == nil {
		return core.Size{}
	}
	return core.Size{W: a.cur.W, H: a.cur.H}
}

// Generation counts steps since the last Reset.
func (a *Automaton) Generation() int { return a.gen }

// LiveCount returns the number of alive cells.
func (a *Automaton) LiveCount() int {
	if a.cur == nil {
		return 0
	}
	return a.cur.Count()
}
