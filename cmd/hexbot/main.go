package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paq1/spring-challenge-2023/internal/bot"
	"github.com/paq1/spring-challenge-2023/internal/config"
	"github.com/paq1/spring-challenge-2023/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	var debug bool

	play := func(cmd *cobra.Command, args []string) error {
		logger.Init(debug)
		return runMatch(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	rootCmd := &cobra.Command{
		Use:   "hexbot",
		Short: "Hex-map ant bot for the Spring Challenge 2023 referee",
		Long: `Reads the map and per-turn state from the referee (stdin or a WebSocket)
and answers every turn with LINE commands drawn from the chosen strategy.`,
		SilenceUsage: true,
		RunE:         play,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, fmt.Sprintf("bot strategy %v", bot.StrategyNames))
	flags.IntVar(&cfg.EarlyTurns, "early-turns", cfg.EarlyTurns, "first turn of the tiered mid phase")
	flags.IntVar(&cfg.LateTurns, "late-turns", cfg.LateTurns, "first turn of the tiered late phase")
	flags.IntVar(&cfg.ArmyThreshold, "army-threshold", cfg.ArmyThreshold, "army size at which bronze stops seeking eggs")
	flags.StringVar(&cfg.Guard, "guard", cfg.Guard, "bronze guard expression (overrides --army-threshold)")
	flags.BoolVar(&cfg.ShowMsg, "message", cfg.ShowMsg, "append a MESSAGE naming the strategy to every turn")
	flags.StringVar(&cfg.RefereeURL, "referee", cfg.RefereeURL, "ws:// URL of a remote referee instead of stdin/stdout")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Play one match (default)",
			Args:  cobra.NoArgs,
			RunE:  play,
		},
		newInspectCmd(cfg),
	)
	return rootCmd
}

// runMatch plays one match against stdin/stdout or the configured referee.
func runMatch(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	strategy, err := bot.StrategyForName(cfg.Strategy, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = logger.WithMatchID(ctx, logger.NewMatchID())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		select {
		case <-sig:
			log.Info().Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	if cfg.RefereeURL != "" {
		client, err := bot.DialReferee(ctx, cfg.RefereeURL)
		if err != nil {
			return err
		}
		defer client.Close()
		in, out = client, client
	}

	runner := bot.NewRunner(strategy, cfg.ShowMsg)
	if err := runner.Run(ctx, in, out); err != nil {
		log.Error().Err(err).Str("matchId", logger.MatchIDFromContext(ctx)).Msg("Bot failed")
		return err
	}
	return nil
}
