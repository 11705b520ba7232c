package hive

import (
	"fmt"
	"sort"
)

// State is the snapshot of one turn: the static graph joined with the live
// per-cell counts. A new State is built every turn.
type State struct {
	Graph     *Graph
	Distances *DistanceIndex // optional; nil disables distance tie-breaks
	Turn      int
	MyBase    CellID
	OppBase   CellID
	Cells     []CellState
}

// NewState validates live counts against the graph and returns the turn
// snapshot. cells must be in cell-id order.
func NewState(g *Graph, turn int, myBase, oppBase CellID, cells []CellState) (*State, error) {
	if len(cells) != g.Len() {
		return nil, fmt.Errorf("turn %d: %w: got %d cell records, want %d", turn, ErrInvalidCell, len(cells), g.Len())
	}
	if !g.Contains(myBase) {
		return nil, fmt.Errorf("%w: my base %d", ErrUnknownBase, myBase)
	}
	if !g.Contains(oppBase) {
		return nil, fmt.Errorf("%w: opponent base %d", ErrUnknownBase, oppBase)
	}
	for i, c := range cells {
		if c.Resources < 0 {
			return nil, fmt.Errorf("turn %d cell %d: %w: negative resources %d", turn, i, ErrInvalidCell, c.Resources)
		}
		if g.Kind(CellID(i)) == Empty && c.Resources != 0 {
			return nil, fmt.Errorf("turn %d cell %d: %w: empty cell with %d resources", turn, i, ErrInvalidCell, c.Resources)
		}
		if (c.MyAnts.Valid && c.MyAnts.Value < 0) || (c.OppAnts.Valid && c.OppAnts.Value < 0) {
			return nil, fmt.Errorf("turn %d cell %d: %w: negative ant count", turn, i, ErrInvalidCell)
		}
	}
	return &State{
		Graph:   g,
		Turn:    turn,
		MyBase:  myBase,
		OppBase: oppBase,
		Cells:   cells,
	}, nil
}

// InitialState builds the pre-turn snapshot from the map's initial
// resources. Ant counts are unknown.
func InitialState(g *Graph, myBase, oppBase CellID) *State {
	cells := make([]CellState, g.Len())
	for i := range cells {
		cells[i].Resources = g.InitialResources(CellID(i))
	}
	return &State{Graph: g, MyBase: myBase, OppBase: oppBase, Cells: cells}
}

// Resources returns the current amount held by a cell.
func (s *State) Resources(id CellID) int {
	return s.Cells[id].Resources
}

// HasResource reports whether a cell is of kind k and still holds something.
func (s *State) HasResource(id CellID, k Kind) bool {
	return s.Graph.Kind(id) == k && s.Cells[id].Resources > 0
}

// MyAntTotal sums my ants over all cells. known is false when no cell
// reported a count yet.
func (s *State) MyAntTotal() (total int, known bool) {
	for _, c := range s.Cells {
		if c.MyAnts.Valid {
			total += c.MyAnts.Value
			known = true
		}
	}
	return total, known
}

// OppAntTotal sums opponent ants over all cells.
func (s *State) OppAntTotal() (total int, known bool) {
	for _, c := range s.Cells {
		if c.OppAnts.Valid {
			total += c.OppAnts.Value
			known = true
		}
	}
	return total, known
}

// Remaining counts the cells of kind k that still hold resources.
func (s *State) Remaining(k Kind) int {
	n := 0
	for _, id := range s.Graph.CellsOfKind(k) {
		if s.Cells[id].Resources > 0 {
			n++
		}
	}
	return n
}

// Destroyed counts the cells of kind k on the map that no longer hold
// resources.
func (s *State) Destroyed(k Kind) int {
	return len(s.Graph.CellsOfKind(k)) - s.Remaining(k)
}

// ByResourceDesc returns the cells of kind k with positive resources, richest
// first. Equal amounts are ordered nearer-to-base first when a distance index
// is attached, then by ascending id.
func (s *State) ByResourceDesc(k Kind) []CellID {
	var ids []CellID
	for _, id := range s.Graph.CellsOfKind(k) {
		if s.Cells[id].Resources > 0 {
			ids = append(ids, id)
		}
	}
	s.sortByResourceDesc(ids)
	return ids
}

// RichestAny returns the cell of any kind holding the most resources, or
// NoCell when the map is exhausted.
func (s *State) RichestAny() CellID {
	var ids []CellID
	for i, c := range s.Cells {
		if c.Resources > 0 {
			ids = append(ids, CellID(i))
		}
	}
	if len(ids) == 0 {
		return NoCell
	}
	s.sortByResourceDesc(ids)
	return ids[0]
}

func (s *State) sortByResourceDesc(ids []CellID) {
	sort.SliceStable(ids, func(i, j int) bool {
		ri, rj := s.Cells[ids[i]].Resources, s.Cells[ids[j]].Resources
		if ri != rj {
			return ri > rj
		}
		if s.Distances != nil {
			di, oki := s.Distances.Distance(ids[i])
			dj, okj := s.Distances.Distance(ids[j])
			if oki != okj {
				return oki
			}
			if di != dj {
				return di < dj
			}
		}
		return ids[i] < ids[j]
	})
}
