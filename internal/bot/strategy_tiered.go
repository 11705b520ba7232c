package bot

import (
	"github.com/rs/zerolog/log"

	"github.com/paq1/spring-challenge-2023/internal/config"
	"github.com/paq1/spring-challenge-2023/pkg/hive"
)

// Tier is a turn-bounded phase of TieredStrategy.
type Tier int

const (
	TierEarly Tier = iota // eggs only
	TierMid               // eggs and the nearest crystal
	TierLate              // crystals, fanned out
)

func (t Tier) String() string {
	switch t {
	case TierEarly:
		return "early"
	case TierMid:
		return "mid"
	default:
		return "late"
	}
}

// TieredStrategy grows the army first and then shifts to crystals as the
// turn count rises. Egg and crystal targets are kept across turns until they
// run dry so that equally distant candidates do not cause oscillation.
type TieredStrategy struct {
	EarlyTurns int
	LateTurns  int
	Weights    config.Weights

	egg     targetMemory
	crystal targetMemory
}

// NewTieredStrategy creates a TieredStrategy with no retained targets.
func NewTieredStrategy(cfg *config.Config) *TieredStrategy {
	return &TieredStrategy{
		EarlyTurns: cfg.EarlyTurns,
		LateTurns:  cfg.LateTurns,
		Weights:    cfg.Weights,
		egg:        newTargetMemory(),
		crystal:    newTargetMemory(),
	}
}

func (*TieredStrategy) Name() string { return "tiered" }

// TierFor returns the tier active on a given turn.
func (t *TieredStrategy) TierFor(turn int) Tier {
	switch {
	case turn < t.EarlyTurns:
		return TierEarly
	case turn < t.LateTurns:
		return TierMid
	default:
		return TierLate
	}
}

func (t *TieredStrategy) Intents(s *hive.State) []Intent {
	var intents []Intent
	add := func(target hive.CellID, weight int) {
		if target != hive.NoCell {
			intents = append(intents, Intent{Target: target, Weight: weight})
		}
	}

	switch t.TierFor(s.Turn) {
	case TierEarly:
		add(t.nearest(s, &t.egg, hive.Egg), t.Weights.EarlyEgg)
	case TierMid:
		add(t.nearest(s, &t.egg, hive.Egg), t.Weights.MidEgg)
		add(t.nearest(s, &t.crystal, hive.Crystal), t.Weights.MidCrystal)
	case TierLate:
		primary := t.nearest(s, &t.crystal, hive.Crystal)
		add(primary, t.Weights.LateCrystal)
		for _, id := range s.ByResourceDesc(hive.Crystal) {
			if id != primary {
				add(id, t.Weights.LateSecondary)
			}
		}
	}
	return intents
}

// nearest returns the retained target for kind k, recomputing it from my
// base only when it no longer holds resources.
func (t *TieredStrategy) nearest(s *hive.State, mem *targetMemory, k hive.Kind) hive.CellID {
	prev := mem.id
	id := mem.resolve(s,
		func(id hive.CellID) bool { return s.HasResource(id, k) },
		func() hive.CellID { return hive.NearestResource(s, s.MyBase, k).Cell },
	)
	if id != prev {
		log.Debug().Int("turn", s.Turn).Stringer("kind", k).Int("from", int(prev)).Int("to", int(id)).Msg("Retargeted")
	}
	return id
}
