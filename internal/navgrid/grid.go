// Package navgrid is a headless pathfinding service: A* over a walkable
// grid on the ground plane plus agents that follow the resulting paths.
// It stands in for the engine navmesh in simulations and tests.
package navgrid

import (
	"math"

	"github.com/udisondev/deadzone/internal/model"
)

// MaxPathfindIterations bounds A* expansion per query.
const MaxPathfindIterations = 7000

const (
	weightStraight = 1.0
	weightDiagonal = math.Sqrt2
)

// Grid is a walkable mask over the X/Z plane. Cell (0, 0) starts at origin.
type Grid struct {
	width, height int
	cellSize      float64
	origin        model.Vec3
	blocked       []bool
}

// NewGrid creates an all-walkable grid of width x height cells.
func NewGrid(width, height int, cellSize float64, origin model.Vec3) *Grid {
	return &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		origin:   origin,
		blocked:  make([]bool, width*height),
	}
}

func (g *Grid) Width() int        { return g.width }
func (g *Grid) Height() int       { return g.height }
func (g *Grid) CellSize() float64 { return g.cellSize }

func (g *Grid) inBounds(cx, cz int) bool {
	return cx >= 0 && cz >= 0 && cx < g.width && cz < g.height
}

// SetBlocked marks a cell. Out-of-range cells are ignored.
func (g *Grid) SetBlocked(cx, cz int, blocked bool) {
	if g.inBounds(cx, cz) {
		g.blocked[cz*g.width+cx] = blocked
	}
}

// BlockRect blocks every cell whose center lies inside the X/Z rectangle a-b.
func (g *Grid) BlockRect(a, b model.Vec3) {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minZ, maxZ := math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)
	for cz := range g.height {
		for cx := range g.width {
			c := g.Center(cx, cz)
			if c.X >= minX && c.X <= maxX && c.Z >= minZ && c.Z <= maxZ {
				g.SetBlocked(cx, cz, true)
			}
		}
	}
}

// Walkable reports whether the cell exists and is not blocked.
func (g *Grid) Walkable(cx, cz int) bool {
	return g.inBounds(cx, cz) && !g.blocked[cz*g.width+cx]
}

// CellOf returns the cell containing p.
func (g *Grid) CellOf(p model.Vec3) (cx, cz int, ok bool) {
	cx = int(math.Floor((p.X - g.origin.X) / g.cellSize))
	cz = int(math.Floor((p.Z - g.origin.Z) / g.cellSize))
	return cx, cz, g.inBounds(cx, cz)
}

// Center returns the world position of a cell's center at origin height.
func (g *Grid) Center(cx, cz int) model.Vec3 {
	return model.Vec3{
		X: g.origin.X + (float64(cx)+0.5)*g.cellSize,
		Y: g.origin.Y,
		Z: g.origin.Z + (float64(cz)+0.5)*g.cellSize,
	}
}

// LineWalkable reports whether every cell crossed by the segment a-b is walkable.
// A diagonal step also needs both side cells walkable.
func (g *Grid) LineWalkable(a, b model.Vec3) bool {
	ax, az, okA := g.CellOf(a)
	bx, bz, okB := g.CellOf(b)
	if !okA || !okB {
		return false
	}
	it := newLineIterator(ax, az, bx, bz)
	px, pz := ax, az
	for it.next() {
		if !g.Walkable(it.x, it.z) {
			return false
		}
		if it.x != px && it.z != pz && (!g.Walkable(px, it.z) || !g.Walkable(it.x, pz)) {
			return false
		}
		px, pz = it.x, it.z
	}
	return true
}
