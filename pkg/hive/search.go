package hive

import "fmt"

// Match is the result of a nearest-cell search.
type Match struct {
	Cell     CellID // NoCell when nothing matched
	Distance int    // hop count; -1 when nothing matched
	Visited  int    // cells reached by the search
}

// Found reports whether the search produced a cell.
func (m Match) Found() bool { return m.Cell != NoCell }

var notFound = Match{Cell: NoCell, Distance: -1}

// expand walks the graph breadth-first from origin, one level at a time.
// visit receives each level's newly reached cells and stops the walk by
// returning true. Every cell is enqueued at most once. It returns the number
// of cells reached.
func expand(g *Graph, origin CellID, visit func(level int, frontier []CellID) bool) int {
	if !g.Contains(origin) {
		panic(fmt.Sprintf("hive: search origin %d not in graph of %d cells", origin, g.Len()))
	}
	seen := make([]bool, g.Len())
	seen[origin] = true
	reached := 1

	frontier := []CellID{origin}
	var next []CellID
	for level := 0; len(frontier) > 0; level++ {
		if visit(level, frontier) {
			return reached
		}
		next = next[:0]
		for _, id := range frontier {
			for _, nb := range g.neighbors[id] {
				if nb == NoCell || seen[nb] {
					continue
				}
				seen[nb] = true
				reached++
				next = append(next, nb)
			}
		}
		frontier, next = next, frontier
	}
	return reached
}

// Nearest returns the closest cell to origin satisfying match. Among
// several matches at the minimal distance the lowest id wins. The origin
// itself is checked at distance 0.
//
// Nearest panics if origin is not a cell of g.
func Nearest(g *Graph, origin CellID, match func(CellID) bool) Match {
	result := notFound
	result.Visited = expand(g, origin, func(level int, frontier []CellID) bool {
		best := NoCell
		for _, id := range frontier {
			if match(id) && (best == NoCell || id < best) {
				best = id
			}
		}
		if best == NoCell {
			return false
		}
		result.Cell = best
		result.Distance = level
		return true
	})
	return result
}

// NearestResource returns the closest cell of kind k that still holds
// resources in the given turn.
func NearestResource(s *State, origin CellID, k Kind) Match {
	return Nearest(s.Graph, origin, func(id CellID) bool {
		return s.HasResource(id, k)
	})
}
