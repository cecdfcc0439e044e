package engine

import "github.com/notnil/chess"

// Attack queries over the raw board. The rules engine only exposes fully
// legal moves for the side to move, which is not enough for evaluation
// terms that need "who attacks this square" for either color, so the piece
// geometry is computed here directly.

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func squareAt(file, rank int) (chess.Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return chess.NoSquare, false
	}
	return chess.NewSquare(chess.File(file), chess.Rank(rank)), true
}

// attackerCount returns how many pieces of the given color attack sq.
func attackerCount(board *chess.Board, sq chess.Square, by chess.Color) int {
	file := int(sq.File())
	rank := int(sq.Rank())
	count := 0

	// Pawns attack diagonally toward the opponent's side, so an attacker
	// sits one rank behind sq relative to its own direction of travel.
	pawnRank := rank - 1
	if by == chess.Black {
		pawnRank = rank + 1
	}
	for _, df := range []int{-1, 1} {
		if from, ok := squareAt(file+df, pawnRank); ok {
			p := board.Piece(from)
			if p.Type() == chess.Pawn && p.Color() == by {
				count++
			}
		}
	}

	for _, off := range knightOffsets {
		if from, ok := squareAt(file+off[0], rank+off[1]); ok {
			p := board.Piece(from)
			if p.Type() == chess.Knight && p.Color() == by {
				count++
			}
		}
	}

	for _, off := range kingOffsets {
		if from, ok := squareAt(file+off[0], rank+off[1]); ok {
			p := board.Piece(from)
			if p.Type() == chess.King && p.Color() == by {
				count++
			}
		}
	}

	count += slidingAttackers(board, file, rank, by, orthogonalDirs, chess.Rook)
	count += slidingAttackers(board, file, rank, by, diagonalDirs, chess.Bishop)

	return count
}

// slidingAttackers walks each ray away from the target square and counts the
// first piece met when it is a queen, or a rook/bishop matching the ray type.
func slidingAttackers(board *chess.Board, file, rank int, by chess.Color, dirs [4][2]int, slider chess.PieceType) int {
	count := 0
	for _, dir := range dirs {
		for step := 1; ; step++ {
			from, ok := squareAt(file+dir[0]*step, rank+dir[1]*step)
			if !ok {
				break
			}
			p := board.Piece(from)
			if p == chess.NoPiece {
				continue
			}
			if p.Color() == by && (p.Type() == slider || p.Type() == chess.Queen) {
				count++
			}
			break
		}
	}
	return count
}
