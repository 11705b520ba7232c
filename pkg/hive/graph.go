package hive

import (
	"errors"
	"fmt"
)

var (
	ErrNeighborOutOfRange = errors.New("neighbor out of range")
	ErrInvalidCell        = errors.New("invalid cell")
	ErrUnknownBase        = errors.New("unknown base")
)

// Graph is the static cell map. It is built once per match and never
// mutated afterwards, so it can be shared freely between turns.
type Graph struct {
	kinds     []Kind
	initial   []int
	neighbors [][NeighborCount]CellID
	byKind    [Crystal + 1][]CellID
}

// NewGraph validates the cell records and builds the adjacency graph.
// Cell ids are the record positions.
func NewGraph(cells []CellSpec) (*Graph, error) {
	n := len(cells)
	g := &Graph{
		kinds:     make([]Kind, n),
		initial:   make([]int, n),
		neighbors: make([][NeighborCount]CellID, n),
	}
	for i, c := range cells {
		if !c.Kind.Valid() {
			return nil, fmt.Errorf("cell %d: %w: unknown kind %d", i, ErrInvalidCell, int(c.Kind))
		}
		if c.Resources < 0 {
			return nil, fmt.Errorf("cell %d: %w: negative resources %d", i, ErrInvalidCell, c.Resources)
		}
		if c.Kind == Empty && c.Resources != 0 {
			return nil, fmt.Errorf("cell %d: %w: empty cell with %d resources", i, ErrInvalidCell, c.Resources)
		}
		for slot, nb := range c.Neighbors {
			if nb == NoCell {
				continue
			}
			if nb < 0 || int(nb) >= n {
				return nil, fmt.Errorf("cell %d slot %d: %w: %d (cells: %d)", i, slot, ErrNeighborOutOfRange, nb, n)
			}
		}
		g.kinds[i] = c.Kind
		g.initial[i] = c.Resources
		g.neighbors[i] = c.Neighbors
		g.byKind[c.Kind] = append(g.byKind[c.Kind], CellID(i))
	}
	return g, nil
}

// Len returns the number of cells.
func (g *Graph) Len() int { return len(g.kinds) }

// Contains reports whether id names a cell of this graph.
func (g *Graph) Contains(id CellID) bool {
	return id >= 0 && int(id) < len(g.kinds)
}

// Neighbors returns the six neighbor slots of a cell; missing edges are NoCell.
func (g *Graph) Neighbors(id CellID) [NeighborCount]CellID {
	return g.neighbors[id]
}

// Kind returns the kind of a cell.
func (g *Graph) Kind(id CellID) Kind {
	return g.kinds[id]
}

// InitialResources returns the amount a cell held when the map was read.
func (g *Graph) InitialResources(id CellID) int {
	return g.initial[id]
}

// CellsOfKind returns the ids of every cell of the given kind, ascending.
// Callers must not modify the returned slice.
func (g *Graph) CellsOfKind(k Kind) []CellID {
	if !k.Valid() {
		return nil
	}
	return g.byKind[k]
}
