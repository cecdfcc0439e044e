package engine

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameFromFEN(t *testing.T, fen string) *chess.Game {
	t.Helper()
	opt, err := chess.FEN(fen)
	require.NoError(t, err)
	return chess.NewGame(opt)
}

func playMoves(t *testing.T, moves ...string) *chess.Game {
	t.Helper()
	game := chess.NewGame()
	for _, move := range moves {
		require.NoError(t, game.MoveStr(move))
	}
	return game
}

func TestEvaluateCheckmateAntisymmetry(t *testing.T) {
	// Fool's mate: black delivers checkmate on move two.
	game := playMoves(t, "f3", "e5", "g4", "Qh4#")
	require.Equal(t, chess.BlackWon, game.Outcome())

	eval := HeuristicEvaluator{}
	assert.Equal(t, WinScore, eval.Evaluate(game, chess.Black))
	assert.Equal(t, -WinScore, eval.Evaluate(game, chess.White))
	assert.Equal(t, eval.Evaluate(game, chess.Black), -eval.Evaluate(game, chess.White))
}

func TestEvaluateClaimableDrawShortCircuits(t *testing.T) {
	// Knight shuffling repeats the starting position a third time, making
	// a threefold repetition claimable even before any formal outcome.
	game := playMoves(t, "Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8")
	require.Equal(t, chess.NoOutcome, game.Outcome())

	eval := HeuristicEvaluator{}
	assert.Equal(t, DrawScore, eval.Evaluate(game, chess.White))
	assert.Equal(t, DrawScore, eval.Evaluate(game, chess.Black))
}

func TestEvaluateFiftyMoveDraw(t *testing.T) {
	game := gameFromFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 100 80")

	eval := HeuristicEvaluator{}
	assert.Equal(t, DrawScore, eval.Evaluate(game, chess.White))
	assert.Equal(t, DrawScore, eval.Evaluate(game, chess.Black))
}

func TestPhaseClassification(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want GamePhase
	}{
		{
			name: "starting position is the opening",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want: Opening,
		},
		{
			name: "full board after many moves is the midgame",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 20",
			want: Midgame,
		},
		{
			name: "bare kings and a pawn are the endgame",
			fen:  "4k3/8/8/8/8/8/4P3/4K3 w - - 0 40",
			want: Endgame,
		},
		{
			name: "few pieces but early plies still count as opening",
			fen:  "4k3/8/8/8/8/8/4P3/4K3 w - - 0 2",
			want: Opening,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phaseOf(gameFromFEN(t, tt.fen)))
		})
	}
}

func TestMaterialWeightGrowsWithPhase(t *testing.T) {
	assert.Less(t, materialWeight(Opening), materialWeight(Midgame))
	assert.Less(t, materialWeight(Midgame), materialWeight(Endgame))
}

func TestMaterialDominatesPositionalTerms(t *testing.T) {
	eval := HeuristicEvaluator{}

	// One side up a queen must evaluate clearly better regardless of the
	// fractional positional adjustments.
	game := gameFromFEN(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 20")
	assert.Greater(t, eval.Evaluate(game, chess.White), 5.0)
	assert.Less(t, eval.Evaluate(game, chess.Black), -5.0)
}

func TestIsolatedDoubledPawnEvaluatesLower(t *testing.T) {
	eval := HeuristicEvaluator{}

	// Both positions are midgame (28 plies, 17 pieces) and materially
	// identical; only the d-file pawns differ: doubled and isolated in the
	// first, connected in the second.
	doubled := gameFromFEN(t, "4k3/pppppppp/8/8/3P4/3P4/PP3PPP/4K3 w - - 0 15")
	healthy := gameFromFEN(t, "4k3/pppppppp/8/8/3P4/2P5/PP3PPP/4K3 w - - 0 15")

	require.Equal(t, Midgame, phaseOf(doubled))
	require.Equal(t, Midgame, phaseOf(healthy))
	assert.Less(t, eval.Evaluate(doubled, chess.White), eval.Evaluate(healthy, chess.White))
}

func TestEvaluateIsDeterministic(t *testing.T) {
	eval := HeuristicEvaluator{}
	game := playMoves(t, "e4", "e5", "Nf3", "Nc6")
	first := eval.Evaluate(game, chess.White)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, eval.Evaluate(game, chess.White))
	}
}

func TestAttackerCount(t *testing.T) {
	game := chess.NewGame()
	board := game.Position().Board()

	// e4 in the starting position: no pawn, knight or slider of either
	// color reaches it yet.
	assert.Equal(t, 0, attackerCount(board, chess.E4, chess.White))

	// After 1.e4 the pawn attacks d5 and f5.
	require.NoError(t, game.MoveStr("e4"))
	board = game.Position().Board()
	assert.Equal(t, 1, attackerCount(board, chess.D5, chess.White))
	assert.Equal(t, 1, attackerCount(board, chess.F5, chess.White))
}
