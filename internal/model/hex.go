package model

// Hex is a single cell of the battle grid, addressed by odd-row offset
// coordinates. The grid owns hexes; the combat core only attaches traps and
// drops to them and stages trap effects against them before transfer.
type Hex struct {
	X, Y int

	Trap *Trap
	Drop *Drop
}

// neighborOffsets gives the six neighbor deltas for even and odd rows.
var neighborOffsets = [2][6][2]int{
	// even row
	{{1, 0}, {-1, 0}, {0, -1}, {-1, -1}, {0, 1}, {-1, 1}},
	// odd row
	{{1, 0}, {-1, 0}, {1, -1}, {0, -1}, {1, 1}, {0, 1}},
}

// NeighborCoords returns the offset coordinates of the six cells adjacent to
// (x, y). Callers bound-check against their grid.
func NeighborCoords(x, y int) [6][2]int {
	var out [6][2]int
	parity := ((y % 2) + 2) % 2
	for i, d := range neighborOffsets[parity] {
		out[i] = [2]int{x + d[0], y + d[1]}
	}
	return out
}

// HexesAdjacent reports whether two cells share an edge.
func HexesAdjacent(ax, ay, bx, by int) bool {
	for _, n := range NeighborCoords(ax, ay) {
		if n[0] == bx && n[1] == by {
			return true
		}
	}
	return false
}
