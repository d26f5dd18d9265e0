package cluster

import (
	"math"
	"slices"

	"github.com/udisondev/questgen/internal/model"
)

// cellKey — индекс ячейки сетки со стороной eps.
type cellKey struct {
	cx, cy int64
}

// grid buckets points into eps-sized cells so a neighbourhood query only
// scans the 3x3 block of cells around a point.
type grid struct {
	eps    float64
	points []model.WorldPoint
	cells  map[cellKey][]int
}

func newGrid(points []model.WorldPoint, eps float64) *grid {
	g := &grid{
		eps:    eps,
		points: points,
		cells:  make(map[cellKey][]int, len(points)),
	}
	for i, p := range points {
		k := g.keyOf(p)
		g.cells[k] = append(g.cells[k], i)
	}
	return g
}

func (g *grid) keyOf(p model.WorldPoint) cellKey {
	return cellKey{
		cx: int64(math.Floor(p.X / g.eps)),
		cy: int64(math.Floor(p.Y / g.eps)),
	}
}

// neighbours returns the indices of all points within eps of point i,
// including i itself, in ascending index order.
func (g *grid) neighbours(i int) []int {
	p := g.points[i]
	k := g.keyOf(p)
	epsSq := g.eps * g.eps

	var out []int
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, j := range g.cells[cellKey{cx: k.cx + dx, cy: k.cy + dy}] {
				if p.DistanceSquared2D(g.points[j]) <= epsSq {
					out = append(out, j)
				}
			}
		}
	}
	slices.Sort(out)
	return out
}
