package physics

import (
	"math"

	astar "github.com/beefsack/go-astar"

	"github.com/automoto/maskbrawl/mathutil"
)

// NavGrid is a walkability grid over the ground plane, used by bots to route
// around walls and pits.
type NavGrid struct {
	Width, Depth int
	CellSize     float64
	Nodes        [][]*NavNode
}

// NavNode is one grid cell. Implements astar.Pather.
type NavNode struct {
	X, Z     int
	Walkable bool
	Grid     *NavGrid
}

var navDirs = []struct{ dx, dz int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range navDirs {
		nx, nz := n.X+d.dx, n.Z+d.dz
		if !n.Grid.inBounds(nx, nz) {
			continue
		}
		next := n.Grid.Nodes[nz][nx]
		if !next.Walkable {
			continue
		}
		// No corner cutting past a blocked cell
		if d.dx != 0 && d.dz != 0 &&
			(!n.Grid.Nodes[n.Z][nx].Walkable || !n.Grid.Nodes[nz][n.X].Walkable) {
			continue
		}
		neighbors = append(neighbors, next)
	}
	return neighbors
}

func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	t := to.(*NavNode)
	return math.Hypot(float64(t.X-n.X), float64(t.Z-n.Z))
}

func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*NavNode)
	return math.Hypot(float64(t.X-n.X), float64(t.Z-n.Z))
}

// NewNavGrid samples the space once. A cell is blocked when its inset box
// overlaps any of the layers.
func NewNavGrid(space *Space, cellSize float64, blocked ...string) *NavGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &NavGrid{
		Width:    int(math.Ceil(space.Width / cellSize)),
		Depth:    int(math.Ceil(space.Depth / cellSize)),
		CellSize: cellSize,
	}
	g.Nodes = make([][]*NavNode, g.Depth)

	half := cellSize * 0.45
	for z := 0; z < g.Depth; z++ {
		g.Nodes[z] = make([]*NavNode, g.Width)
		for x := 0; x < g.Width; x++ {
			center := g.Center(x, z)
			g.Nodes[z][x] = &NavNode{
				X:        x,
				Z:        z,
				Walkable: !space.CheckBox(center, mathutil.NewVec3(half, 0, half), 0, blocked...),
				Grid:     g,
			}
		}
	}
	return g
}

func (g *NavGrid) inBounds(x, z int) bool {
	return x >= 0 && x < g.Width && z >= 0 && z < g.Depth
}

// Cell returns the grid coordinates containing p, clamped to the grid.
func (g *NavGrid) Cell(p mathutil.Vec3) (int, int) {
	x := clampInt(int(math.Floor(p.X/g.CellSize)), 0, g.Width-1)
	z := clampInt(int(math.Floor(p.Z/g.CellSize)), 0, g.Depth-1)
	return x, z
}

// Center returns the world position of a cell's center on the floor.
func (g *NavGrid) Center(x, z int) mathutil.Vec3 {
	return mathutil.NewVec3(float64(x)*g.CellSize+g.CellSize/2, 0, float64(z)*g.CellSize+g.CellSize/2)
}

// Walkable reports whether the cell containing p is open.
func (g *NavGrid) Walkable(p mathutil.Vec3) bool {
	x, z := g.Cell(p)
	return g.Nodes[z][x].Walkable
}

// FindPath returns waypoints from start toward goal. Endpoints inside blocked
// cells snap to the nearest open cell. Nil when unreachable.
func (g *NavGrid) FindPath(start, goal mathutil.Vec3) []mathutil.Vec3 {
	if g.Width == 0 || g.Depth == 0 {
		return nil
	}
	sx, sz := g.Cell(start)
	gx, gz := g.Cell(goal)
	from := g.nearestWalkable(sx, sz)
	to := g.nearestWalkable(gx, gz)
	if from == nil || to == nil {
		return nil
	}
	if from == to {
		return []mathutil.Vec3{goal}
	}

	path, _, found := astar.Path(from, to)
	if !found {
		return nil
	}

	// astar returns goal first
	points := make([]mathutil.Vec3, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i].(*NavNode)
		points = append(points, g.Center(n.X, n.Z))
	}
	return points
}

func (g *NavGrid) nearestWalkable(x, z int) *NavNode {
	if g.Nodes[z][x].Walkable {
		return g.Nodes[z][x]
	}
	for radius := 1; radius < 10; radius++ {
		for dz := -radius; dz <= radius; dz++ {
			for dx := -radius; dx <= radius; dx++ {
				nx, nz := x+dx, z+dz
				if g.inBounds(nx, nz) && g.Nodes[nz][nx].Walkable {
					return g.Nodes[nz][nx]
				}
			}
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
