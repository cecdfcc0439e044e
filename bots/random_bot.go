package bots

import (
	"context"
	"math/rand"
	"time"

	"github.com/notnil/chess"

	"chessmind/engine"
)

// RandomBot plays a uniformly random legal move. Useful as a baseline
// opponent and for exercising game plumbing.
type RandomBot struct {
	rng *rand.Rand
}

// NewRandomBot builds a random bot. Seed zero means a time-derived seed.
func NewRandomBot(seed int64) *RandomBot {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestMove(_ context.Context, game *chess.Game) (*chess.Move, error) {
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil, engine.ErrNoLegalMoves
	}
	return moves[b.rng.Intn(len(moves))], nil
}

func (b *RandomBot) Name() string {
	return "Random"
}
