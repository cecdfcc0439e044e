package engine

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMovesIsPermutation(t *testing.T) {
	game := chess.NewGame()
	valid := game.ValidMoves()
	ordered := orderMoves(game)

	require.Len(t, ordered, len(valid))
	seen := make(map[string]bool, len(valid))
	for _, move := range valid {
		seen[move.String()] = true
	}
	for _, move := range ordered {
		assert.True(t, seen[move.String()], "ordered move %s not in legal moves", move)
	}
}

func TestOrderMovesCaptureOfQueenFirst(t *testing.T) {
	// White pawn on e3 can take the black queen on d4.
	game := gameFromFEN(t, "4k3/8/8/8/3q4/4P3/8/4K3 w - - 0 1")
	ordered := orderMoves(game)

	require.NotEmpty(t, ordered)
	first := ordered[0]
	assert.True(t, first.HasTag(chess.Capture))
	assert.Equal(t, chess.D4, first.S2())
}

func TestOrderMovesPromotionBeforeQuiet(t *testing.T) {
	game := gameFromFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	ordered := orderMoves(game)

	require.NotEmpty(t, ordered)
	assert.NotEqual(t, chess.NoPieceType, ordered[0].Promo())
}

func TestOrderMovesPrioritiesDescend(t *testing.T) {
	game := gameFromFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 10")
	board := game.Position().Board()

	ordered := orderMoves(game)
	require.NotEmpty(t, ordered)
	for i := 1; i < len(ordered); i++ {
		assert.GreaterOrEqual(t,
			movePriority(board, ordered[i-1]),
			movePriority(board, ordered[i]),
			"moves %s and %s out of order", ordered[i-1], ordered[i])
	}
}

func TestMovePriorityQuietBelowAnyCapture(t *testing.T) {
	game := gameFromFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 10")
	board := game.Position().Board()

	var worstCapture, bestQuiet float64
	worstCapture = 100
	bestQuiet = -100
	for _, move := range game.ValidMoves() {
		p := movePriority(board, move)
		switch {
		case move.HasTag(chess.Capture):
			if p < worstCapture {
				worstCapture = p
			}
		case move.Promo() == chess.NoPieceType && !move.HasTag(chess.Check):
			if p > bestQuiet {
				bestQuiet = p
			}
		}
	}
	assert.Greater(t, worstCapture, bestQuiet)
}
