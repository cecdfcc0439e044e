// Package engine implements a fixed-depth chess decision engine: a
// multi-phase position heuristic, MVV-LVA move ordering, alpha-beta
// minimax search, and a root scheduler that fans independent first-ply
// subtrees out over a bounded worker pool. Board representation, move
// generation and outcome detection come from github.com/notnil/chess.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/notnil/chess"
	"golang.org/x/sync/errgroup"
)

// Engine picks moves for the side to move of a position.
type Engine struct {
	cfg  Config
	eval Evaluator

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// MoveScore pairs a root move with its search score.
type MoveScore struct {
	Move  *chess.Move
	Score float64
}

// Result describes one completed search.
type Result struct {
	Move    *chess.Move
	Score   float64
	Scores  []MoveScore
	Nodes   int64
	Depth   int
	Elapsed time.Duration
}

// New builds an engine from cfg with the default heuristic evaluator.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cfg:  cfg,
		eval: HeuristicEvaluator{},
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Evaluate scores the current position from color's perspective using the
// engine's heuristic. It is exposed standalone for analysis callers.
func (e *Engine) Evaluate(game *chess.Game, color chess.Color) float64 {
	return e.eval.Evaluate(game, color)
}

// BestMove returns the best move for the side to move, searching to the
// configured depth. Ties between equally scored root moves are broken
// uniformly at random. Querying a terminal position is a caller error.
func (e *Engine) BestMove(ctx context.Context, game *chess.Game) (*chess.Move, error) {
	result, err := e.Analyze(ctx, game)
	if err != nil {
		return nil, err
	}
	return result.Move, nil
}

// Analyze runs the same search as BestMove but also reports every root
// move's score and search statistics.
func (e *Engine) Analyze(ctx context.Context, game *chess.Game) (*Result, error) {
	if err := e.cfg.validate(); err != nil {
		return nil, err
	}

	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: outcome %s", ErrNoLegalMoves, game.Outcome())
	}

	start := time.Now()
	color := game.Position().Turn()
	scores := make([]float64, len(moves))
	var nodes atomic.Int64

	// Each root subtree owns a private clone of the game, so the units
	// share nothing but the bounded pool they run on. Alpha-beta bounds
	// are deliberately not shared across root branches.
	if e.cfg.Parallel {
		group, gctx := errgroup.WithContext(ctx)
		group.SetLimit(e.cfg.workerCount())
		for i, move := range moves {
			i, move := i, move
			group.Go(func() error {
				score, err := e.scoreRootMove(gctx, game, move, color, &nodes)
				if err != nil {
					return err
				}
				scores[i] = score
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, move := range moves {
			score, err := e.scoreRootMove(ctx, game, move, color, &nodes)
			if err != nil {
				return nil, err
			}
			scores[i] = score
		}
	}

	best := scores[0]
	for _, score := range scores[1:] {
		if score > best {
			best = score
		}
	}
	var candidates []int
	for i, score := range scores {
		if score == best {
			candidates = append(candidates, i)
		}
	}
	chosen := moves[candidates[e.pickIndex(len(candidates))]]

	result := &Result{
		Move:    chosen,
		Score:   best,
		Scores:  make([]MoveScore, len(moves)),
		Nodes:   nodes.Load(),
		Depth:   e.cfg.Depth,
		Elapsed: time.Since(start),
	}
	for i, move := range moves {
		result.Scores[i] = MoveScore{Move: move, Score: scores[i]}
	}

	slog.Debug("search finished",
		slog.String("move", chosen.String()),
		slog.Float64("score", best),
		slog.Int("depth", e.cfg.Depth),
		slog.Int64("nodes", result.Nodes),
		slog.Int("candidates", len(candidates)),
		slog.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

// scoreRootMove searches the subtree below one candidate root move. The
// first reply belongs to the opponent, so the search starts one ply down
// with the minimizing player and a full window.
func (e *Engine) scoreRootMove(ctx context.Context, game *chess.Game, move *chess.Move, color chess.Color, nodes *atomic.Int64) (float64, error) {
	child := game.Clone()
	if err := child.Move(move); err != nil {
		return 0, fmt.Errorf("apply root move %s: %w", move, err)
	}
	return e.alphaBeta(ctx, child, e.cfg.Depth-1, color, false, -math.MaxFloat64, math.MaxFloat64, nodes)
}

func (e *Engine) pickIndex(n int) int {
	if n == 1 {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}
