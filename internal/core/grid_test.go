package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestByteGridColumnsOrder(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 0, 1)
	g.Set(0, 1, 1)

	cols := g.Columns()
	if len(cols) != 3 || len(cols[0]) != 2 {
		t.Fatalf("expected 3 columns of 2 rows, got %dx%d", len(cols), len(cols[0]))
	}
	if cols[2][0] != 1 || cols[0][1] != 1 {
		t.Fatalf("columns not in [x][y] order: %v", cols)
	}
	if g.Count() != 2 {
		t.Fatalf("expected 2 live cells, got %d", g.Count())
	}

	cols[1][1] = 1
	if g.At(1, 1) != 0 {
		t.Fatal("Columns must return a copy")
	}
}

func TestByteGridRowMajorIndex(t *testing.T) {
	g := NewByteGrid(4, 3)
	if got := g.Index(1, 2); got != 9 {
		t.Fatalf("Index(1,2)=%d, expected 9", got)
	}
	g.Set(1, 2, 1)
	if g.Cells()[9] != 1 || g.At(1, 2) != 1 {
		t.Fatal("Set/At should address the row-major slot")
	}
}

func TestByteGridContains(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{-1, 1, false},
	}
	for _, tc := range cases {
		if got := g.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("Contains(%d,%d)=%v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	err := ConfigErrorf("width %d must be positive", 0)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration kind, got %v", err)
	}
	if errors.Is(err, ErrPrecondition) {
		t.Fatal("configuration error must not match precondition kind")
	}
	if !errors.Is(PreconditionErrorf("step before reset"), ErrPrecondition) {
		t.Fatal("expected precondition kind")
	}
}
