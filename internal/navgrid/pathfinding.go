package navgrid

import (
	"container/heap"
	"math"

	"github.com/udisondev/deadzone/internal/model"
)

// FindPath returns waypoints from start to end, ending exactly at end.
// Returns nil if either point is off the grid or no path exists.
func (g *Grid) FindPath(start, end model.Vec3) []model.Vec3 {
	sx, sz, okS := g.CellOf(start)
	ex, ez, okE := g.CellOf(end)
	if !okS || !okE || !g.Walkable(ex, ez) {
		return nil
	}

	// Same cell or clear line: go straight.
	if (sx == ex && sz == ez) || g.LineWalkable(start, end) {
		return []model.Vec3{end}
	}

	result := g.astar(sx, sz, ex, ez)
	if result == nil {
		return nil
	}

	path := make([]model.Vec3, 0, 32)
	for n := result; n != nil; n = n.parent {
		path = append(path, g.Center(n.x, n.z))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	path[0] = start
	path[len(path)-1] = end

	path = g.smoothPath(path)
	return path[1:]
}

// smoothPath drops waypoint N-1 whenever N is reachable in a straight line
// from the last kept waypoint. Up to 3 passes.
func (g *Grid) smoothPath(path []model.Vec3) []model.Vec3 {
	for range 3 {
		if len(path) <= 2 {
			return path
		}

		changed := false
		smoothed := make([]model.Vec3, 0, len(path))
		smoothed = append(smoothed, path[0])

		for i := 1; i < len(path)-1; i++ {
			prev := smoothed[len(smoothed)-1]
			if g.LineWalkable(prev, path[i+1]) {
				changed = true
				continue
			}
			smoothed = append(smoothed, path[i])
		}
		smoothed = append(smoothed, path[len(path)-1])
		path = smoothed

		if !changed {
			break
		}
	}
	return path
}

// gridNode is a node in the A* search graph.
type gridNode struct {
	x, z   int
	parent *gridNode
	gCost  float64
	fCost  float64
	index  int
}

type nodeKey struct{ x, z int }

func (g *Grid) astar(sx, sz, tx, tz int) *gridNode {
	start := &gridNode{x: sx, z: sz, fCost: heuristic(sx, sz, tx, tz)}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, start)

	closed := make(map[nodeKey]struct{}, 256)

	for range MaxPathfindIterations {
		if open.Len() == 0 {
			return nil
		}
		current := heap.Pop(open).(*gridNode)
		if current.x == tx && current.z == tz {
			return current
		}

		key := nodeKey{current.x, current.z}
		if _, done := closed[key]; done {
			continue
		}
		closed[key] = struct{}{}

		g.expandNeighbors(current, tx, tz, open, closed)
	}
	return nil
}

// cardinal order: N, E, S, W.
var cardinals = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// diagonals with the two cardinals that must both be open (no corner cutting).
var diagonals = [4]struct{ dx, dz, adj1, adj2 int }{
	{1, -1, 0, 1},
	{1, 1, 1, 2},
	{-1, 1, 2, 3},
	{-1, -1, 3, 0},
}

func (g *Grid) expandNeighbors(current *gridNode, tx, tz int, open *nodeHeap, closed map[nodeKey]struct{}) {
	var open4 [4]bool

	push := func(nx, nz int, weight float64) {
		if _, done := closed[nodeKey{nx, nz}]; done {
			return
		}
		n := &gridNode{
			x: nx, z: nz,
			parent: current,
			gCost:  current.gCost + weight,
		}
		n.fCost = n.gCost + heuristic(nx, nz, tx, tz)
		heap.Push(open, n)
	}

	for i, d := range cardinals {
		nx, nz := current.x+d[0], current.z+d[1]
		if !g.Walkable(nx, nz) {
			continue
		}
		open4[i] = true
		push(nx, nz, weightStraight)
	}

	for _, d := range diagonals {
		if !open4[d.adj1] || !open4[d.adj2] {
			continue
		}
		nx, nz := current.x+d.dx, current.z+d.dz
		if !g.Walkable(nx, nz) {
			continue
		}
		push(nx, nz, weightDiagonal)
	}
}

func heuristic(x, z, tx, tz int) float64 {
	dx := float64(x - tx)
	dz := float64(z - tz)
	return math.Sqrt(dx*dx + dz*dz)
}

// nodeHeap is the A* open list, a min-heap by fCost.
type nodeHeap []*gridNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].fCost < h[j].fCost }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x any)        { n := x.(*gridNode); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}
