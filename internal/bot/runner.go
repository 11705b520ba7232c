package bot

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/paq1/spring-challenge-2023/internal/logger"
	"github.com/paq1/spring-challenge-2023/pkg/hive"
	"github.com/paq1/spring-challenge-2023/pkg/protocol"
)

// Runner plays one match: it reads the map, then answers every turn until
// the input ends.
type Runner struct {
	strategy    Strategy
	showMessage bool
}

// NewRunner creates a Runner. When showMessage is set every turn also
// carries a MESSAGE naming the active strategy.
func NewRunner(strategy Strategy, showMessage bool) *Runner {
	return &Runner{strategy: strategy, showMessage: showMessage}
}

// Run executes a full match. It returns nil when the input ends at a turn
// boundary and an error on malformed input or a failed write.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	l := logger.ForMatch(ctx)
	dec := protocol.NewDecoder(in)

	setup, err := dec.ReadInit()
	if err != nil {
		return fmt.Errorf("read init: %w", err)
	}
	g, err := hive.NewGraph(setup.Cells)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	myBase, oppBase := setup.MyBase(), setup.OppBase()
	if !g.Contains(myBase) || !g.Contains(oppBase) {
		return fmt.Errorf("%w: bases %d/%d on a map of %d cells", hive.ErrUnknownBase, myBase, oppBase, g.Len())
	}
	if len(setup.MyBases) > 1 {
		l.Warn().Int("bases", len(setup.MyBases)).Int("used", int(myBase)).Msg("Several bases; commanding from the first")
	}

	distances := hive.NewDistanceIndex(g, myBase)
	l.Info().
		Str("strategy", r.strategy.Name()).
		Int("cells", g.Len()).
		Int("eggCells", len(g.CellsOfKind(hive.Egg))).
		Int("crystalCells", len(g.CellsOfKind(hive.Crystal))).
		Int("reachable", len(distances.Cells())).
		Int("myBase", int(myBase)).
		Int("oppBase", int(oppBase)).
		Msg("Match started")

	for turn := 1; ; turn++ {
		select {
		case <-ctx.Done():
			l.Info().Int("turn", turn).Msg("Context cancelled, stopping bot")
			return ctx.Err()
		default:
		}

		cells, err := dec.ReadTurn(g.Len())
		if errors.Is(err, io.EOF) {
			l.Info().Int("turns", turn-1).Msg("Match over")
			return nil
		}
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}

		s, err := hive.NewState(g, turn, myBase, oppBase, cells)
		if err != nil {
			return err
		}
		s.Distances = distances

		line := r.Decide(s)
		if _, err := io.WriteString(out, line+"\n"); err != nil {
			return fmt.Errorf("turn %d: write: %w", turn, err)
		}
		logger.LogCommand(l, turn, line)
	}
}

// Decide runs the strategy for one turn and returns the output line.
func (r *Runner) Decide(s *hive.State) string {
	cmds := Commands(s.MyBase, r.strategy.Intents(s))
	if r.showMessage {
		cmds = append(cmds, protocol.Message(r.strategy.Name()))
	}
	return protocol.FormatTurn(cmds)
}
