package bot

import (
	"github.com/rs/zerolog/log"

	"github.com/paq1/spring-challenge-2023/internal/config"
	"github.com/paq1/spring-challenge-2023/pkg/hive"
)

// BronzeStrategy keeps racing for the nearest eggs until the guard fails
// (by default: an egg cell has been emptied or the army reached the
// threshold), then harvests every crystal cell.
type BronzeStrategy struct {
	guard   *Guard
	early   Strategy
	harvest Strategy
}

// NewBronzeStrategy compiles the configured guard and wires the two
// delegates.
func NewBronzeStrategy(cfg *config.Config) (*BronzeStrategy, error) {
	g, err := CompileGuard(cfg.GuardExpr())
	if err != nil {
		return nil, err
	}
	return &BronzeStrategy{
		guard:   g,
		early:   NestSeeker{Weight: cfg.Weights.Nest},
		harvest: CrystalHarvester{Weight: cfg.Weights.Harvest},
	}, nil
}

func (*BronzeStrategy) Name() string { return "bronze" }

func (b *BronzeStrategy) Intents(s *hive.State) []Intent {
	return b.Select(s).Intents(s)
}

// Select returns the delegate active for this turn. A guard that fails at
// run time selects the harvester.
func (b *BronzeStrategy) Select(s *hive.State) Strategy {
	env := NewGuardEnv(s)
	ok, err := b.guard.Eval(env)
	if err != nil {
		log.Warn().Err(err).Int("turn", s.Turn).Msg("Guard failed; harvesting")
		return b.harvest
	}
	log.Debug().
		Int("turn", s.Turn).
		Int("destroyedEggs", env.DestroyedEggs).
		Int("army", env.MyArmy).
		Bool("armyKnown", env.ArmyKnown).
		Bool("guard", ok).
		Msg("Bronze guard")
	if ok {
		return b.early
	}
	return b.harvest
}
