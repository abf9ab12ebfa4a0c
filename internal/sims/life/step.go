package life

import "life-ca/internal/core"

// neighborhood lists the Moore offsets (dr, dc) around a cell.
var neighborhood = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NeighborCounts maps every coordinate with at least one live neighbor to the
// number of live cells in its Moore neighborhood.
func NeighborCounts(live LiveSet) map[core.Coord]uint8 {
	counts := make(map[core.Coord]uint8, len(live)*4)
	for c := range live {
		for _, d := range neighborhood {
			counts[c.Add(d[0], d[1])]++
		}
	}
	return counts
}

// Advance applies one B3/S23 generation to live and returns a fresh set.
// The input is never modified, so a caller still holding it keeps a complete
// view of the previous generation.
func Advance(live LiveSet) LiveSet {
	counts := NeighborCounts(live)
	next := make(LiveSet, len(live))
	for c, n := range counts {
		if n == 3 || (n == 2 && live.Contains(c)) {
			next[c] = struct{}{}
		}
	}
	return next
}
