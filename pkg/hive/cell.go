package hive

import "fmt"

// CellID is the dense index (0..N-1) of a cell on the map.
type CellID int

// NoCell marks a missing neighbor slot or a search that found nothing.
const NoCell CellID = -1

// NeighborCount is the number of edge slots on a hexagonal cell.
const NeighborCount = 6

// Kind classifies what a cell holds. It never changes during a match.
type Kind int

const (
	Empty   Kind = iota // Nothing to collect
	Egg                 // Eggs hatch into more ants
	Crystal             // Crystals are the scoring resource
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Egg:
		return "egg"
	case Crystal:
		return "crystal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= Empty && k <= Crystal
}

// CellSpec is the static description of a cell read with the map.
type CellSpec struct {
	Kind      Kind
	Resources int
	Neighbors [NeighborCount]CellID
}

// Count is an army size that is unknown until the first turn is read.
type Count struct {
	Value int
	Valid bool
}

// Known returns a valid Count holding n.
func Known(n int) Count {
	return Count{Value: n, Valid: true}
}

// CellState holds the live values of a cell for one turn.
type CellState struct {
	Resources int
	MyAnts    Count
	OppAnts   Count
}
