package bot

import (
	"fmt"

	"github.com/paq1/spring-challenge-2023/internal/config"
	"github.com/paq1/spring-challenge-2023/pkg/hive"
	"github.com/paq1/spring-challenge-2023/pkg/protocol"
)

// Intent asks for a share of the army to flow from my base to Target.
// Weights only matter relative to the other intents of the same turn.
type Intent struct {
	Target hive.CellID
	Weight int
}

// Strategy turns a turn snapshot into an ordered list of intents. An empty
// result means "no action" and is emitted as WAIT.
//
// Strategies may keep memory between turns (retained targets), so a value
// must only be used for one match.
type Strategy interface {
	Name() string
	Intents(s *hive.State) []Intent
}

// StrategyNames lists the policies accepted by StrategyForName.
var StrategyNames = []string{"bronze", "tiered", "nest", "harvest", "richest", "eggs-first"}

// StrategyForName returns the top-level policy for a configured name.
func StrategyForName(name string, cfg *config.Config) (Strategy, error) {
	switch name {
	case "bronze", "":
		b, err := NewBronzeStrategy(cfg)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "tiered":
		return NewTieredStrategy(cfg), nil
	case "nest":
		return NestSeeker{Weight: cfg.Weights.Nest}, nil
	case "harvest":
		return CrystalHarvester{Weight: cfg.Weights.Harvest}, nil
	case "richest":
		return NewRichestStrategy(cfg.Weights.Richest), nil
	case "eggs-first":
		return EggsFirstStrategy{
			EarlyTurns: cfg.EarlyTurns,
			EggWeight:  cfg.Weights.EggsFirstEgg,
			LateWeight: cfg.Weights.EggsFirstLate,
		}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, StrategyNames)
	}
}

// Commands maps intents to LINE commands from base.
func Commands(base hive.CellID, intents []Intent) []protocol.Command {
	cmds := make([]protocol.Command, 0, len(intents))
	for _, in := range intents {
		cmds = append(cmds, protocol.Line(base, in.Target, in.Weight))
	}
	return cmds
}

// --- NestSeeker ---

// NestSeeker sends the army to the nearest egg cell that still holds eggs.
type NestSeeker struct {
	Weight int
}

func (NestSeeker) Name() string { return "nest" }

func (n NestSeeker) Intents(s *hive.State) []Intent {
	m := hive.NearestResource(s, s.MyBase, hive.Egg)
	if !m.Found() {
		return nil
	}
	return []Intent{{Target: m.Cell, Weight: n.Weight}}
}

// --- CrystalHarvester ---

// CrystalHarvester spreads the army over every crystal cell, richest first.
type CrystalHarvester struct {
	Weight int
}

func (CrystalHarvester) Name() string { return "harvest" }

func (h CrystalHarvester) Intents(s *hive.State) []Intent {
	return uniform(s.ByResourceDesc(hive.Crystal), h.Weight)
}

func uniform(ids []hive.CellID, weight int) []Intent {
	if len(ids) == 0 {
		return nil
	}
	intents := make([]Intent, len(ids))
	for i, id := range ids {
		intents[i] = Intent{Target: id, Weight: weight}
	}
	return intents
}

// targetMemory keeps a chosen cell across turns while it stays valid.
type targetMemory struct {
	id hive.CellID
}

func newTargetMemory() targetMemory {
	return targetMemory{id: hive.NoCell}
}

// resolve returns the retained target if valid reports true for it,
// otherwise the result of pick, which becomes the new retained target.
func (t *targetMemory) resolve(s *hive.State, valid func(hive.CellID) bool, pick func() hive.CellID) hive.CellID {
	if t.id != hive.NoCell && s.Graph.Contains(t.id) && valid(t.id) {
		return t.id
	}
	t.id = pick()
	return t.id
}
