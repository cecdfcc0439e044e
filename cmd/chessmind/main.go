// Command chessmind is the thin CLI over the search engine: one-shot best
// move and evaluation queries for a FEN, plus engine self-play.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/notnil/chess"
	"github.com/spf13/cobra"

	"chessmind/bots"
	"chessmind/engine"
)

var (
	configPath string
	logLevel   string

	flagFEN      string
	flagColor    string
	flagMaxMoves int
)

func main() {
	root := &cobra.Command{
		Use:           "chessmind",
		Short:         "A minimax chess engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML engine config")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newBestMoveCmd(), newEvalCmd(), newSelfPlayCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// loadConfig merges the optional config file with any explicitly set flags.
func loadConfig(cmd *cobra.Command) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if f := cmd.Flags(); f.Changed("depth") {
		cfg.Depth, _ = f.GetInt("depth")
	}
	if f := cmd.Flags(); f.Changed("parallel") {
		cfg.Parallel, _ = f.GetBool("parallel")
	}
	if f := cmd.Flags(); f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f := cmd.Flags(); f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	return cfg, nil
}

func addEngineFlags(cmd *cobra.Command) {
	defaults := engine.DefaultConfig()
	cmd.Flags().Int("depth", defaults.Depth, "search depth in plies")
	cmd.Flags().Bool("parallel", defaults.Parallel, "search root moves in parallel")
	cmd.Flags().Int("workers", defaults.Workers, "worker pool size")
	cmd.Flags().Int64("seed", 0, "tie-break random seed (0 = time-based)")
}

func gameFromFEN(fen string) (*chess.Game, error) {
	if fen == "" {
		return chess.NewGame(), nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("invalid FEN: %w", err)
	}
	return chess.NewGame(opt), nil
}

func newBestMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bestmove",
		Short: "Print the engine's move for a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			eng, err := engine.New(cfg)
			if err != nil {
				return err
			}
			game, err := gameFromFEN(flagFEN)
			if err != nil {
				return err
			}
			result, err := eng.Analyze(cmd.Context(), game)
			if err != nil {
				return err
			}
			fmt.Printf("bestmove %s score %.2f depth %d nodes %d elapsed %s\n",
				result.Move, result.Score, result.Depth, result.Nodes, result.Elapsed)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagFEN, "fen", "", "position to search (default: starting position)")
	addEngineFlags(cmd)
	return cmd
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print the static evaluation of a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			eng, err := engine.New(cfg)
			if err != nil {
				return err
			}
			game, err := gameFromFEN(flagFEN)
			if err != nil {
				return err
			}
			color, err := parseColor(flagColor)
			if err != nil {
				return err
			}
			fmt.Printf("eval %.2f (%s)\n", eng.Evaluate(game, color), color)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagFEN, "fen", "", "position to evaluate (default: starting position)")
	cmd.Flags().StringVar(&flagColor, "color", "white", "perspective to evaluate for (white or black)")
	addEngineFlags(cmd)
	return cmd
}

func newSelfPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Have the engine play a game against itself",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			bot, err := bots.NewEngineBot(cfg)
			if err != nil {
				return err
			}

			game := chess.NewGame()
			for i := 0; i < flagMaxMoves && game.Outcome() == chess.NoOutcome; i++ {
				move, err := bot.BestMove(cmd.Context(), game)
				if err != nil {
					return err
				}
				if err := game.Move(move); err != nil {
					return fmt.Errorf("apply move %s: %w", move, err)
				}
				fmt.Printf("%3d. %s (%s)\n", i+1, move, game.Position().Turn().Other())
			}
			fmt.Println(game.String())
			fmt.Println("outcome:", game.Outcome(), "method:", game.Method())
			return nil
		},
	}
	cmd.Flags().IntVar(&flagMaxMoves, "max-moves", 200, "stop after this many half-moves")
	addEngineFlags(cmd)
	return cmd
}

func parseColor(s string) (chess.Color, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	default:
		return chess.NoColor, fmt.Errorf("invalid color %q (want white or black)", s)
	}
}
