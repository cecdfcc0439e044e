// Package bots layers pluggable move-choosing strategies over the core
// engine, so callers can swap the full search for cheaper opponents.
package bots

import (
	"context"

	"github.com/notnil/chess"
)

// Bot chooses a move for the side to move.
type Bot interface {
	BestMove(ctx context.Context, game *chess.Game) (*chess.Move, error)
	Name() string
}
