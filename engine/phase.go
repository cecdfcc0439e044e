package engine

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// GamePhase is a coarse classification of how far a game has progressed.
// It gates which evaluation terms apply; it is recomputed per position and
// never cached.
type GamePhase int

const (
	Opening GamePhase = iota
	Midgame
	Endgame
)

func (p GamePhase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Midgame:
		return "midgame"
	case Endgame:
		return "endgame"
	default:
		return "unknown"
	}
}

const (
	// openingPlyLimit: positions with fewer half-moves played are still
	// considered the opening.
	openingPlyLimit = 6

	// endgamePieceLimit: once fewer pieces than this remain on the board
	// the game is treated as an endgame.
	endgamePieceLimit = 13
)

// phaseOf classifies the current phase of a game. Opening is decided by the
// number of half-moves played, endgame by remaining piece count.
func phaseOf(game *chess.Game) GamePhase {
	if pliesPlayed(game) < openingPlyLimit {
		return Opening
	}
	if pieceCount(game.Position().Board()) < endgamePieceLimit {
		return Endgame
	}
	return Midgame
}

// pliesPlayed derives the number of half-moves played from the position's
// FEN move counters rather than the in-memory move history, so games loaded
// from a mid-game FEN classify correctly.
func pliesPlayed(game *chess.Game) int {
	fields := strings.Fields(game.Position().String())
	if len(fields) < 6 {
		return 0
	}
	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil || fullMoves < 1 {
		return 0
	}
	plies := (fullMoves - 1) * 2
	if fields[1] == "b" {
		plies++
	}
	return plies
}

func pieceCount(board *chess.Board) int {
	return len(board.SquareMap())
}
