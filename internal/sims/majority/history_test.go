package majority

import "testing"

func TestHistoryPeriod(t *testing.T) {
	cases := []struct {
		name string
		seq  []string
		want int
	}{
		{"empty", nil, 0},
		{"single", []string{"a"}, 0},
		{"fixed point", []string{"a", "b", "b"}, 1},
		{"blinker", []string{"a", "b", "a"}, 2},
		{"period three", []string{"a", "b", "c", "a"}, 3},
		{"evolving", []string{"a", "b", "c", "d", "e"}, 0},
		{"evicted", []string{"a", "b", "c", "d", "e", "f", "a"}, 0},
	}
	for _, tc := range cases {
		h := NewHistory(0)
		for _, s := range tc.seq {
			h.Observe(s)
		}
		if got := h.Period(); got != tc.want {
			t.Fatalf("%s: period=%d, expected %d", tc.name, got, tc.want)
		}
		if h.Stagnant() != (tc.want > 0) {
			t.Fatalf("%s: stagnant mismatch", tc.name)
		}
	}
}

func TestHashDistinguishesGrids(t *testing.T) {
	if Hash([]uint8{0, 1, 0}) == Hash([]uint8{0, 0, 1}) {
		t.Fatal("distinct grids should hash differently")
	}
	if Hash([]uint8{1, 1}) != Hash([]uint8{1, 1}) {
		t.Fatal("hash must be stable")
	}
}
