package engine

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/notnil/chess"
)

// alphaBeta is depth-limited minimax with alpha-beta pruning. The score is
// always taken from the fixed searching color's perspective, regardless of
// whose turn it is at the node; only the maximizing flag alternates per
// ply. Every child position is a private clone, so sibling subtrees never
// share mutable state.
func (e *Engine) alphaBeta(ctx context.Context, game *chess.Game, depth int, color chess.Color, maximizing bool, alpha, beta float64, nodes *atomic.Int64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	nodes.Add(1)

	if depth == 0 || game.Outcome() != chess.NoOutcome {
		return e.eval.Evaluate(game, color), nil
	}

	moves := orderMoves(game)

	if maximizing {
		best := -math.MaxFloat64
		for _, move := range moves {
			child := game.Clone()
			if err := child.Move(move); err != nil {
				return 0, fmt.Errorf("apply move %s: %w", move, err)
			}
			score, err := e.alphaBeta(ctx, child, depth-1, color, false, alpha, beta, nodes)
			if err != nil {
				return 0, err
			}
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if best > beta {
				// The minimizing parent already has a better option.
				return best, nil
			}
		}
		return best, nil
	}

	best := math.MaxFloat64
	for _, move := range moves {
		child := game.Clone()
		if err := child.Move(move); err != nil {
			return 0, fmt.Errorf("apply move %s: %w", move, err)
		}
		score, err := e.alphaBeta(ctx, child, depth-1, color, true, alpha, beta, nodes)
		if err != nil {
			return 0, err
		}
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if best <= alpha {
			return best, nil
		}
	}
	return best, nil
}
