package engine

import (
	"sort"

	"github.com/notnil/chess"
)

// Move ordering priorities. Ordering is purely a pruning optimization: the
// search visits likely-strong moves first so alpha-beta cutoffs happen
// early. It never changes which move the search ultimately prefers.
const (
	// quietMoveBaseline keeps every non-capture below every capture,
	// including queen-takes-pawn trades that score negative under MVV-LVA.
	quietMoveBaseline = -10.0

	promotionBonus = 10.0
	checkBonus     = 0.5
)

type scoredMove struct {
	move     *chess.Move
	priority float64
}

// orderMoves returns the legal moves of the position, most promising first:
// captures ranked by victim-minus-attacker value, promotions and checking
// moves boosted, quiet moves last. The slice is freshly computed per call.
func orderMoves(game *chess.Game) []*chess.Move {
	moves := game.ValidMoves()
	if len(moves) < 2 {
		return moves
	}

	board := game.Position().Board()
	scored := make([]scoredMove, len(moves))
	for i, move := range moves {
		scored[i] = scoredMove{move: move, priority: movePriority(board, move)}
	}
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].priority > scored[j].priority
	})

	ordered := make([]*chess.Move, len(moves))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

// movePriority scores a single move for ordering purposes.
func movePriority(board *chess.Board, move *chess.Move) float64 {
	priority := quietMoveBaseline
	if move.HasTag(chess.Capture) {
		victim := board.Piece(move.S2()).Type()
		if move.HasTag(chess.EnPassant) {
			victim = chess.Pawn
		}
		attacker := board.Piece(move.S1()).Type()
		priority = pieceValue(victim) - pieceValue(attacker)
	}
	if move.Promo() != chess.NoPieceType {
		priority += promotionBonus
	}
	if move.HasTag(chess.Check) {
		priority += checkBonus
	}
	return priority
}
