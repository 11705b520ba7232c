package bot

import (
	"testing"

	"github.com/paq1/spring-challenge-2023/internal/config"
	"github.com/paq1/spring-challenge-2023/pkg/hive"
)

// ringMap builds an n-cell cycle of empty cells. Kinds and resources are set
// by the caller through put.
type ringMap struct {
	specs []hive.CellSpec
}

func newRing(n int) *ringMap {
	specs := make([]hive.CellSpec, n)
	for i := range specs {
		specs[i].Neighbors = [hive.NeighborCount]hive.CellID{
			hive.CellID((i + 1) % n), hive.CellID((i + n - 1) % n),
			hive.NoCell, hive.NoCell, hive.NoCell, hive.NoCell,
		}
	}
	return &ringMap{specs: specs}
}

func (r *ringMap) put(id hive.CellID, k hive.Kind, amount int) *ringMap {
	r.specs[id].Kind = k
	r.specs[id].Resources = amount
	return r
}

// isolate removes every edge touching id.
func (r *ringMap) isolate(id hive.CellID) *ringMap {
	for i := range r.specs {
		for s, nb := range r.specs[i].Neighbors {
			if nb == id {
				r.specs[i].Neighbors[s] = hive.NoCell
			}
		}
	}
	for s := range r.specs[id].Neighbors {
		r.specs[id].Neighbors[s] = hive.NoCell
	}
	return r
}

func (r *ringMap) graph(t *testing.T) *hive.Graph {
	t.Helper()
	g, err := hive.NewGraph(r.specs)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

// turnState returns a snapshot at the given turn with the map's initial
// resources and myAnts ants on the base.
func turnState(t *testing.T, g *hive.Graph, turn int, base hive.CellID, myAnts int) *hive.State {
	t.Helper()
	cells := make([]hive.CellState, g.Len())
	for i := range cells {
		cells[i] = hive.CellState{
			Resources: g.InitialResources(hive.CellID(i)),
			MyAnts:    hive.Known(0),
			OppAnts:   hive.Known(0),
		}
	}
	cells[base].MyAnts = hive.Known(myAnts)
	opp := hive.CellID((int(base) + g.Len()/2) % g.Len())
	s, err := hive.NewState(g, turn, base, opp, cells)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

func testConfig() *config.Config {
	return config.Default()
}

func assertIntents(t *testing.T, got, want []Intent) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
