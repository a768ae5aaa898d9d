package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"ataxx/game"
	"ataxx/searcher"
)

// Player produces moves for one color. FindMove must not mutate the board it
// is given; the engine applies the returned move itself.
type Player interface {
	Color() game.PieceColor
	FindMove(b *game.Board) (game.Move, error)
}

// AIPlayer picks moves with an alpha-beta searcher.
type AIPlayer struct {
	color    game.PieceColor
	searcher *searcher.Searcher
}

// NewAIPlayer returns an automated player for color searching depth plies.
// Identical seeds produce identical behaviour.
func NewAIPlayer(color game.PieceColor, depth int, seed uint64) *AIPlayer {
	return &AIPlayer{
		color: color,
		searcher: searcher.New(
			searcher.WithDepth(depth),
			searcher.WithSeed(seed),
			searcher.WithMetrics(),
		),
	}
}

func (p *AIPlayer) Color() game.PieceColor { return p.color }

func (p *AIPlayer) FindMove(b *game.Board) (game.Move, error) {
	move, metrics := p.searcher.FindMove(b)
	log.Debug().
		Str("player", p.color.String()).
		Str("move", move.String()).
		Int64("nodes", metrics.Nodes).
		Int64("evaluations", metrics.Evaluations).
		Int64("cutoffs", metrics.Cutoffs).
		Dur("elapsed", metrics.Duration).
		Msg("search complete")
	return move, nil
}

// ScriptPlayer replays a fixed move list. It backs setup tooling and tests.
type ScriptPlayer struct {
	color game.PieceColor
	moves []game.Move
	next  int
}

// NewScriptPlayer returns a player for color that plays moves in order.
func NewScriptPlayer(color game.PieceColor, moves ...game.Move) *ScriptPlayer {
	return &ScriptPlayer{color: color, moves: moves}
}

func (p *ScriptPlayer) Color() game.PieceColor { return p.color }

func (p *ScriptPlayer) FindMove(*game.Board) (game.Move, error) {
	if p.next >= len(p.moves) {
		return game.Move{}, fmt.Errorf("engine: %s script exhausted after %d moves", p.color, p.next)
	}
	m := p.moves[p.next]
	p.next++
	return m, nil
}
