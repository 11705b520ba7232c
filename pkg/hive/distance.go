package hive

import "sort"

// DistanceTo returns the hop count from one cell to another, or -1 when to is
// unreachable. It panics if from is not a cell of g.
func DistanceTo(g *Graph, from, to CellID) int {
	if !g.Contains(to) {
		return -1
	}
	m := Nearest(g, from, func(id CellID) bool { return id == to })
	return m.Distance
}

// DistanceIndex holds hop distances from one base to every non-empty cell.
// The topology never changes during a match, so it is computed once at load.
type DistanceIndex struct {
	base  CellID
	dist  []int // -1 = unreachable or empty cell
	cells []CellID
}

// NewDistanceIndex sweeps the graph once from base.
func NewDistanceIndex(g *Graph, base CellID) *DistanceIndex {
	idx := &DistanceIndex{
		base: base,
		dist: make([]int, g.Len()),
	}
	for i := range idx.dist {
		idx.dist[i] = -1
	}
	expand(g, base, func(level int, frontier []CellID) bool {
		for _, id := range frontier {
			if g.Kind(id) == Empty {
				continue
			}
			idx.dist[id] = level
			idx.cells = append(idx.cells, id)
		}
		return false
	})
	sort.Slice(idx.cells, func(i, j int) bool {
		a, b := idx.cells[i], idx.cells[j]
		if idx.dist[a] != idx.dist[b] {
			return idx.dist[a] < idx.dist[b]
		}
		return a < b
	})
	return idx
}

// Base returns the cell the distances are measured from.
func (d *DistanceIndex) Base() CellID { return d.base }

// Distance returns the cached hop count to a non-empty cell. ok is false for
// empty cells, unreachable cells and unknown ids.
func (d *DistanceIndex) Distance(id CellID) (int, bool) {
	if id < 0 || int(id) >= len(d.dist) || d.dist[id] < 0 {
		return -1, false
	}
	return d.dist[id], true
}

// Cells returns the reachable non-empty cells ordered by distance, then id.
func (d *DistanceIndex) Cells() []CellID {
	return d.cells
}
