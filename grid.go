package colocation

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Pair is an unordered inter-type neighbor pair carried as an ordered tuple
// of object indices for processing convenience. A ≠ B; dist(A, B) <= d.
type Pair struct {
	A, B int
}

// cellOffsets is the half-neighborhood scanned from every cell to enumerate
// each qualifying inter-cell pair exactly once, per spec.md §4.2.
var cellOffsets = [4][2]int{{1, -1}, {1, 0}, {1, 1}, {0, 1}}

// Grid is a uniform grid partition of the 2-D plane at cell size equal to
// the neighbor distance threshold d, used to enumerate every unordered
// inter-type object pair within Euclidean distance d without an O(n²) scan.
type Grid struct {
	dataset *Dataset
	d       float64
	minX    float64
	minY    float64
	cellsX  int
	cellsY  int
	cells   map[int][]int // cellIndex -> object indices
}

// NewGrid builds a grid over dataset's objects at cell size d. Returns
// ErrInvalidDistance if d <= 0.
func NewGrid(dataset *Dataset, d float64) (*Grid, error) {
	if d <= 0 {
		return nil, errors.Wrapf(ErrInvalidDistance, "d=%v", d)
	}

	xs := make([]float64, len(dataset.Objects))
	ys := make([]float64, len(dataset.Objects))
	for i, o := range dataset.Objects {
		xs[i] = o.X
		ys[i] = o.Y
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)

	cellsX := int(math.Ceil((maxX - minX) / d))
	cellsY := int(math.Ceil((maxY - minY) / d))
	if cellsX < 1 {
		cellsX = 1
	}
	if cellsY < 1 {
		cellsY = 1
	}

	g := &Grid{
		dataset: dataset,
		d:       d,
		minX:    minX,
		minY:    minY,
		cellsX:  cellsX,
		cellsY:  cellsY,
		cells:   make(map[int][]int),
	}

	for i, o := range dataset.Objects {
		cx, cy := g.cellOf(o.X, o.Y)
		idx := cx*g.cellsY + cy
		g.cells[idx] = append(g.cells[idx], i)
	}

	return g, nil
}

// cellOf maps a point to its (cellX, cellY) coordinate by integer-floor
// mapping, clamped into [0, cellsX/cellsY) to absorb points exactly on the
// max boundary.
func (g *Grid) cellOf(x, y float64) (int, int) {
	cx := int((x - g.minX) / g.d)
	cy := int((y - g.minY) / g.d)
	if cx >= g.cellsX {
		cx = g.cellsX - 1
	}
	if cy >= g.cellsY {
		cy = g.cellsY - 1
	}
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	return cx, cy
}

// Pairs enumerates every unordered inter-type object pair within distance
// d exactly once: within-cell pairs, plus pairs against the half-
// neighborhood {(+1,-1),(+1,0),(+1,1),(0,+1)} to avoid double counting.
func (g *Grid) Pairs() []Pair {
	var out []Pair
	for cx := 0; cx < g.cellsX; cx++ {
		for cy := 0; cy < g.cellsY; cy++ {
			out = append(out, g.cellPairs(cx, cy)...)
		}
	}
	return out
}

// cellPairs enumerates the pairs owned by cell (cx, cy): within-cell pairs
// plus pairs against the half-neighborhood. Factored out so it can be
// driven either sequentially (Pairs) or per-cell in parallel
// (PairsParallel).
func (g *Grid) cellPairs(cx, cy int) []Pair {
	cell := g.cells[cx*g.cellsY+cy]
	if len(cell) == 0 {
		return nil
	}

	var out []Pair
	for i := 0; i < len(cell); i++ {
		for j := i + 1; j < len(cell); j++ {
			if g.qualifies(cell[i], cell[j]) {
				out = append(out, Pair{A: cell[i], B: cell[j]})
			}
		}
	}

	for _, off := range cellOffsets {
		ncx, ncy := cx+off[0], cy+off[1]
		if ncx < 0 || ncx >= g.cellsX || ncy < 0 || ncy >= g.cellsY {
			continue
		}
		neighborCell := g.cells[ncx*g.cellsY+ncy]
		for _, a := range cell {
			for _, b := range neighborCell {
				if g.qualifies(a, b) {
					out = append(out, Pair{A: a, B: b})
				}
			}
		}
	}

	return out
}

// qualifies reports whether objects i and j form a neighbor pair: distinct
// types and Euclidean distance <= d.
func (g *Grid) qualifies(i, j int) bool {
	oi, oj := g.dataset.Objects[i], g.dataset.Objects[j]
	if oi.Type == oj.Type {
		return false
	}
	return g.dataset.dist(i, j) <= g.d
}
