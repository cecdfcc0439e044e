package bots

import (
	"context"
	"fmt"

	"github.com/notnil/chess"

	"chessmind/engine"
)

// EngineBot plays moves chosen by the alpha-beta search engine.
type EngineBot struct {
	engine *engine.Engine
	depth  int
}

// NewEngineBot builds a search-backed bot from an engine config.
func NewEngineBot(cfg engine.Config) (*EngineBot, error) {
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}
	return &EngineBot{engine: eng, depth: cfg.Depth}, nil
}

func (b *EngineBot) BestMove(ctx context.Context, game *chess.Game) (*chess.Move, error) {
	return b.engine.BestMove(ctx, game)
}

func (b *EngineBot) Name() string {
	return fmt.Sprintf("Minimax (depth %d)", b.depth)
}
