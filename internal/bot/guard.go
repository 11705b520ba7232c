package bot

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/paq1/spring-challenge-2023/pkg/hive"
)

// GuardEnv exposes aggregate turn values to guard expressions.
type GuardEnv struct {
	Turn              int
	DestroyedEggs     int
	RemainingEggs     int
	RemainingCrystals int
	MyArmy            int
	OppArmy           int
	ArmyKnown         bool
}

// NewGuardEnv computes the guard values for a turn. MyArmy and OppArmy are 0
// when ArmyKnown is false.
func NewGuardEnv(s *hive.State) GuardEnv {
	my, known := s.MyAntTotal()
	opp, _ := s.OppAntTotal()
	return GuardEnv{
		Turn:              s.Turn,
		DestroyedEggs:     s.Destroyed(hive.Egg),
		RemainingEggs:     s.Remaining(hive.Egg),
		RemainingCrystals: s.Remaining(hive.Crystal),
		MyArmy:            my,
		OppArmy:           opp,
		ArmyKnown:         known,
	}
}

// Guard is a compiled boolean condition over GuardEnv.
type Guard struct {
	src     string
	program *vm.Program
}

// CompileGuard compiles src against GuardEnv. The expression must evaluate
// to a bool.
func CompileGuard(src string) (*Guard, error) {
	program, err := expr.Compile(src, expr.Env(GuardEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile guard %q: %w", src, err)
	}
	return &Guard{src: src, program: program}, nil
}

// Source returns the expression text.
func (g *Guard) Source() string { return g.src }

// Eval runs the guard against env.
func (g *Guard) Eval(env GuardEnv) (bool, error) {
	out, err := expr.Run(g.program, env)
	if err != nil {
		return false, fmt.Errorf("run guard %q: %w", g.src, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("guard %q returned %T, want bool", g.src, out)
	}
	return ok, nil
}
