package majority

import (
	"crypto/md5"
	"fmt"
)

const defaultHistoryDepth = 5

// Hash returns the hex MD5 digest of a cell buffer.
func Hash(cells []uint8) string {
	return fmt.Sprintf("%x", md5.Sum(cells))
}

// History remembers recent grid hashes so callers can tell when the automaton
// has settled into a fixed point or a short oscillation.
type History struct {
	depth  int
	hashes []string
}

// NewHistory keeps up to depth hashes; depth below 4 is raised to the default.
func NewHistory(depth int) *History {
	if depth < 4 {
		depth = defaultHistoryDepth
	}
	return &History{depth: depth}
}

// Observe records the hash of the newest generation.
func (h *History) Observe(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
}

// Period returns 1 for a fixed point, 2 or 3 for an oscillation, and 0 when
// the newest generation has not been seen recently.
func (h *History) Period() int {
	n := len(h.hashes)
	if n < 2 {
		return 0
	}
	latest := h.hashes[n-1]
	for p := 1; p <= 3 && p < n; p++ {
		if h.hashes[n-1-p] == latest {
			return p
		}
	}
	return 0
}

// Stagnant reports whether a period was detected.
func (h *History) Stagnant() bool { return h.Period() > 0 }

// Reset forgets all recorded hashes.
func (h *History) Reset() { h.hashes = h.hashes[:0] }
