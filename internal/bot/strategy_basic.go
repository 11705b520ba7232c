package bot

import (
	"github.com/paq1/spring-challenge-2023/pkg/hive"
)

// --- RichestStrategy ---

// RichestStrategy follows the richest cell of any kind, sticking with it
// until it is exhausted.
type RichestStrategy struct {
	Weight int
	target targetMemory
}

// NewRichestStrategy creates a RichestStrategy with no retained target.
func NewRichestStrategy(weight int) *RichestStrategy {
	return &RichestStrategy{Weight: weight, target: newTargetMemory()}
}

func (*RichestStrategy) Name() string { return "richest" }

func (r *RichestStrategy) Intents(s *hive.State) []Intent {
	id := r.target.resolve(s,
		func(id hive.CellID) bool { return s.Resources(id) > 0 },
		s.RichestAny,
	)
	if id == hive.NoCell {
		return nil
	}
	return []Intent{{Target: id, Weight: r.Weight}}
}

// --- EggsFirstStrategy ---

// EggsFirstStrategy targets the richest egg cell during the opening, then
// every crystal cell.
type EggsFirstStrategy struct {
	EarlyTurns int
	EggWeight  int
	LateWeight int
}

func (EggsFirstStrategy) Name() string { return "eggs-first" }

func (e EggsFirstStrategy) Intents(s *hive.State) []Intent {
	if s.Turn < e.EarlyTurns {
		eggs := s.ByResourceDesc(hive.Egg)
		if len(eggs) == 0 {
			return nil
		}
		return []Intent{{Target: eggs[0], Weight: e.EggWeight}}
	}
	return uniform(s.ByResourceDesc(hive.Crystal), e.LateWeight)
}
