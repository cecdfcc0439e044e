package engine

import "github.com/notnil/chess"

// Score sentinels. WinScore dominates any sum the heuristic terms can
// produce, so a found mate always outranks a material advantage.
const (
	WinScore  = 1e6
	DrawScore = 0.5
)

// Evaluator scores a position from one color's perspective. Higher is
// better for that color.
type Evaluator interface {
	Evaluate(game *chess.Game, color chess.Color) float64
}

// Heuristic term weights. These are hand-tuned; the magnitudes are
// adjustable as long as material stays dominant and the positional terms
// remain fractional adjustments.
const (
	materialOpeningWeight = 1.0
	materialMidgameWeight = 1.5
	materialEndgameWeight = 3.0

	undevelopedMinorPenalty = 0.5
	queenRestraintBonus     = 0.2
	recentCastleBonus       = 0.25

	castledKingBonus  = 0.3
	kingShieldBonus   = 0.1
	kingAttackPenalty = 0.15

	centerAttackBonus    = 0.07
	centerOccupancyBonus = 0.1

	passedPawnBonus     = 0.3
	doubledPawnPenalty  = 0.3
	isolatedPawnPenalty = 0.5

	kingMobilityBonus = 0.1
)

var centerSquares = []chess.Square{chess.D4, chess.E4, chess.D5, chess.E5}

// HeuristicEvaluator is the default multi-phase position evaluator:
// material balance weighted by game phase, plus phase-gated positional
// terms (development and king safety early, pawn structure and king
// activity late).
type HeuristicEvaluator struct{}

func (e HeuristicEvaluator) Evaluate(game *chess.Game, color chess.Color) float64 {
	switch game.Outcome() {
	case chess.WhiteWon:
		if color == chess.White {
			return WinScore
		}
		return -WinScore
	case chess.BlackWon:
		if color == chess.Black {
			return WinScore
		}
		return -WinScore
	case chess.Draw:
		return DrawScore
	}

	// A draw the side to move could claim is as good as a recorded one.
	for _, method := range game.EligibleDraws() {
		if method == chess.ThreefoldRepetition || method == chess.FiftyMoveRule {
			return DrawScore
		}
	}

	board := game.Position().Board()
	phase := phaseOf(game)

	score := e.material(board, color) * materialWeight(phase)
	switch phase {
	case Opening:
		score += e.development(game, color)
		score += e.kingSafety(board, color)
		score += e.centerControl(board, color)
	case Midgame:
		score += e.kingSafety(board, color)
		score += e.centerControl(board, color)
		score += e.pawnStructure(board, color)
	case Endgame:
		score += e.pawnStructure(board, color)
		score += e.kingActivity(board, color)
	}
	return score
}

func materialWeight(phase GamePhase) float64 {
	switch phase {
	case Opening:
		return materialOpeningWeight
	case Endgame:
		return materialEndgameWeight
	default:
		return materialMidgameWeight
	}
}

func pieceValue(t chess.PieceType) float64 {
	switch t {
	case chess.Pawn:
		return 1
	case chess.Knight, chess.Bishop:
		return 3
	case chess.Rook:
		return 5
	case chess.Queen:
		return 9
	default:
		// The king is never won or lost through material.
		return 0
	}
}

func (e HeuristicEvaluator) material(board *chess.Board, color chess.Color) float64 {
	var own, opp float64
	for _, piece := range board.SquareMap() {
		if piece.Color() == color {
			own += pieceValue(piece.Type())
		} else {
			opp += pieceValue(piece.Type())
		}
	}
	return own - opp
}

var minorStartSquares = map[chess.Color][]chess.Square{
	chess.White: {chess.B1, chess.G1, chess.C1, chess.F1},
	chess.Black: {chess.B8, chess.G8, chess.C8, chess.F8},
}

// development penalizes minor pieces still sitting on their starting
// squares, rewards keeping the queen home early, and rewards a just-made
// castling move.
func (e HeuristicEvaluator) development(game *chess.Game, color chess.Color) float64 {
	board := game.Position().Board()
	var score float64

	for _, sq := range minorStartSquares[color] {
		piece := board.Piece(sq)
		if piece.Color() != color {
			continue
		}
		if piece.Type() == chess.Bishop || piece.Type() == chess.Knight {
			score -= undevelopedMinorPenalty
		}
	}

	for sq, piece := range board.SquareMap() {
		if piece.Type() != chess.Queen || piece.Color() != color {
			continue
		}
		if onBackRanks(sq, color) {
			score += queenRestraintBonus
		} else {
			score -= queenRestraintBonus
		}
	}

	if moves := game.Moves(); len(moves) > 0 && game.Position().Turn() != color {
		last := moves[len(moves)-1]
		if last.HasTag(chess.KingSideCastle) || last.HasTag(chess.QueenSideCastle) {
			score += recentCastleBonus
		}
	}

	return score
}

// onBackRanks reports whether sq sits on the color's first two ranks.
func onBackRanks(sq chess.Square, color chess.Color) bool {
	if color == chess.White {
		return sq.Rank() <= chess.Rank2
	}
	return sq.Rank() >= chess.Rank7
}

var castledSquares = map[chess.Color][]chess.Square{
	chess.White: {chess.G1, chess.C1, chess.B1},
	chess.Black: {chess.G8, chess.C8, chess.B8},
}

func (e HeuristicEvaluator) kingSafety(board *chess.Board, color chess.Color) float64 {
	kingSq := findKing(board, color)
	if kingSq == chess.NoSquare {
		return 0
	}

	var score float64
	for _, sq := range castledSquares[color] {
		if sq == kingSq {
			score += castledKingBonus
		}
	}

	file := int(kingSq.File())
	rank := int(kingSq.Rank())
	for _, off := range kingOffsets {
		sq, ok := squareAt(file+off[0], rank+off[1])
		if !ok {
			continue
		}
		score += kingShieldBonus * float64(attackerCount(board, sq, color))
		score -= kingAttackPenalty * float64(attackerCount(board, sq, color.Other()))
	}
	return score
}

func (e HeuristicEvaluator) centerControl(board *chess.Board, color chess.Color) float64 {
	var score float64
	for _, sq := range centerSquares {
		score += centerAttackBonus * float64(attackerCount(board, sq, color))
		score -= centerAttackBonus * float64(attackerCount(board, sq, color.Other()))

		occupant := board.Piece(sq)
		if occupant == chess.NoPiece {
			continue
		}
		if occupant.Color() == color {
			score += centerOccupancyBonus
		} else {
			score -= centerOccupancyBonus
		}
	}
	return score
}

// pawnStructure scores per-file pawn counts: passed pawns for either side,
// plus doubled and isolated pawn penalties for the evaluated side.
func (e HeuristicEvaluator) pawnStructure(board *chess.Board, color chess.Color) float64 {
	var ownPawns, oppPawns [8]int
	for sq, piece := range board.SquareMap() {
		if piece.Type() != chess.Pawn {
			continue
		}
		if piece.Color() == color {
			ownPawns[sq.File()]++
		} else {
			oppPawns[sq.File()]++
		}
	}

	var score float64
	for file := 0; file < 8; file++ {
		own := ownPawns[file]
		opp := oppPawns[file]

		if own > 0 && opp == 0 {
			score += passedPawnBonus
		}
		if opp > 0 && own == 0 {
			score -= passedPawnBonus
		}
		if own > 1 {
			score -= doubledPawnPenalty * float64(own-1)
		}
		if own > 0 && adjacentFilesEmpty(ownPawns, file) {
			score -= isolatedPawnPenalty
		}
	}
	return score
}

func adjacentFilesEmpty(pawns [8]int, file int) bool {
	left := file == 0 || pawns[file-1] == 0
	right := file == 7 || pawns[file+1] == 0
	return left && right
}

// kingActivity rewards an active king in the endgame: each adjacent square
// the king could step to safely counts.
func (e HeuristicEvaluator) kingActivity(board *chess.Board, color chess.Color) float64 {
	kingSq := findKing(board, color)
	if kingSq == chess.NoSquare {
		return 0
	}

	file := int(kingSq.File())
	rank := int(kingSq.Rank())
	free := 0
	for _, off := range kingOffsets {
		sq, ok := squareAt(file+off[0], rank+off[1])
		if !ok {
			continue
		}
		if piece := board.Piece(sq); piece != chess.NoPiece && piece.Color() == color {
			continue
		}
		if attackerCount(board, sq, color.Other()) > 0 {
			continue
		}
		free++
	}
	return kingMobilityBonus * float64(free)
}

func findKing(board *chess.Board, color chess.Color) chess.Square {
	for sq, piece := range board.SquareMap() {
		if piece.Type() == chess.King && piece.Color() == color {
			return sq
		}
	}
	return chess.NoSquare
}
