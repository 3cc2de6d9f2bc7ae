// Package geo implements the hex battle grid: cell storage, occupancy,
// walkability, and shortest-path queries. The combat core consumes it
// through the battle.Grid interface; rendering knows nothing of it.
package geo

import (
	"github.com/nandastone/AncientBeast/internal/model"
)

// Grid is a rectangular field of hex cells in odd-row offset coordinates.
type Grid struct {
	width, height int
	hexes         [][]*model.Hex

	// occupants maps each covered cell to the creature standing on it.
	occupants map[*model.Hex]*model.Creature
}

// NewGrid allocates a width×height grid with empty cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:     width,
		height:    height,
		hexes:     make([][]*model.Hex, height),
		occupants: make(map[*model.Hex]*model.Creature),
	}
	for y := 0; y < height; y++ {
		g.hexes[y] = make([]*model.Hex, width)
		for x := 0; x < width; x++ {
			g.hexes[y][x] = &model.Hex{X: x, Y: y}
		}
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// HexAt returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) HexAt(x, y int) *model.Hex {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	return g.hexes[y][x]
}

// Neighbors returns the in-bounds cells adjacent to h.
func (g *Grid) Neighbors(h *model.Hex) []*model.Hex {
	out := make([]*model.Hex, 0, 6)
	for _, n := range model.NeighborCoords(h.X, h.Y) {
		if nh := g.HexAt(n[0], n[1]); nh != nil {
			out = append(out, nh)
		}
	}
	return out
}

// CreatureAt returns the creature covering (x, y), or nil.
func (g *Grid) CreatureAt(x, y int) *model.Creature {
	h := g.HexAt(x, y)
	if h == nil {
		return nil
	}
	return g.occupants[h]
}

// Place registers a creature's footprint. Reports false without mutating
// anything when part of the footprint is out of bounds or occupied by
// another creature.
func (g *Grid) Place(c *model.Creature) bool {
	cells := make([]*model.Hex, 0, c.Size)
	for _, p := range c.OccupiedCoords() {
		h := g.HexAt(p[0], p[1])
		if h == nil {
			return false
		}
		if occ := g.occupants[h]; occ != nil && occ != c {
			return false
		}
		cells = append(cells, h)
	}
	for _, h := range cells {
		g.occupants[h] = c
	}
	return true
}

// Displace clears a creature's footprint from the occupancy index.
func (g *Grid) Displace(c *model.Creature) {
	for h, occ := range g.occupants {
		if occ == c {
			delete(g.occupants, h)
		}
	}
}

// MoveTo updates occupancy for a creature moving its rightmost hex to
// (x, y). Reports false and leaves the creature in place when the
// destination footprint is blocked.
func (g *Grid) MoveTo(c *model.Creature, x, y int) bool {
	oldX, oldY := c.X, c.Y
	g.Displace(c)
	c.X, c.Y = x, y
	if g.Place(c) {
		return true
	}
	c.X, c.Y = oldX, oldY
	g.Place(c)
	return false
}

// IsWalkable reports whether a creature of the given size could stand with
// its rightmost hex at (x, y).
func (g *Grid) IsWalkable(x, y, size int, ignore *model.Creature) bool {
	for i := 0; i < size; i++ {
		h := g.HexAt(x-i, y)
		if h == nil {
			return false
		}
		if occ := g.occupants[h]; occ != nil && occ != ignore {
			return false
		}
	}
	return true
}

// AreAdjacent reports whether two creatures' footprints share an edge.
func (g *Grid) AreAdjacent(a, b *model.Creature) bool {
	if a == nil || b == nil {
		return false
	}
	return a.AdjacentTo(b)
}

// PathLength returns the length in steps of the shortest walkable path for
// creature c from its position to (x, y), using breadth-first search over
// footprint-walkable cells. ok is false when no path exists.
func (g *Grid) PathLength(c *model.Creature, x, y int) (steps int, ok bool) {
	if !g.IsWalkable(x, y, c.Size, c) {
		return 0, false
	}
	type node struct{ x, y, dist int }
	start := node{c.X, c.Y, 0}
	visited := map[[2]int]bool{{c.X, c.Y}: true}
	frontier := []node{start}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur.x == x && cur.y == y {
			return cur.dist, true
		}
		for _, n := range model.NeighborCoords(cur.x, cur.y) {
			key := [2]int{n[0], n[1]}
			if visited[key] || !g.IsWalkable(n[0], n[1], c.Size, c) {
				continue
			}
			visited[key] = true
			frontier = append(frontier, node{n[0], n[1], cur.dist + 1})
		}
	}
	return 0, false
}
