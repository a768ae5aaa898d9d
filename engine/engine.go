// Package engine drives complete Ataxx games: it owns the authoritative
// board, asks each player for a move in turn, validates the move through the
// board's own legality predicate, and applies it.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"ataxx/game"
)

// Engine runs one game between two players.
type Engine struct {
	Board *game.Board
	red   Player
	blue  Player
}

// New returns an engine over a fresh board. The players must cover Red and
// Blue, in that order.
func New(red, blue Player) (*Engine, error) {
	if red.Color() != game.Red {
		return nil, fmt.Errorf("engine: red player has color %s", red.Color())
	}
	if blue.Color() != game.Blue {
		return nil, fmt.Errorf("engine: blue player has color %s", blue.Color())
	}
	return &Engine{Board: game.New(), red: red, blue: blue}, nil
}

// SetBlocks applies pre-game blocks, each named by a square label like "c3".
// Mirror squares are filled in by the board itself.
func (e *Engine) SetBlocks(squares ...string) error {
	for _, s := range squares {
		if len(s) != 2 {
			return fmt.Errorf("engine: malformed block square %q", s)
		}
		if err := e.Board.SetBlock(s[0], s[1]); err != nil {
			return err
		}
	}
	return nil
}

// Run plays until the game is decided and returns the winning color, or
// Empty for a draw. A player returning an error or an illegal move aborts
// the game.
func (e *Engine) Run() (game.PieceColor, error) {
	log.Info().Str("player", e.Board.WhoseMove().String()).Msg("game started")

	for {
		if winner, over := e.Board.Winner(); over {
			e.logResult(winner)
			return winner, nil
		}

		player := e.red
		if e.Board.WhoseMove() == game.Blue {
			player = e.blue
		}

		move, err := player.FindMove(e.Board)
		if err != nil {
			return game.Empty, fmt.Errorf("engine: %s player failed: %w", player.Color(), err)
		}
		if !e.Board.LegalMove(move) {
			return game.Empty, fmt.Errorf("engine: %s played illegal move %s", player.Color(), move)
		}
		if err := e.Board.MakeMove(move); err != nil {
			return game.Empty, fmt.Errorf("engine: applying %s: %w", move, err)
		}

		log.Info().
			Str("player", player.Color().String()).
			Str("move", move.String()).
			Int("red", e.Board.RedPieces()).
			Int("blue", e.Board.BluePieces()).
			Msg("move played")
	}
}

func (e *Engine) logResult(winner game.PieceColor) {
	if winner == game.Empty {
		log.Info().Int("moves", e.Board.NumMoves()).Msg("game drawn")
		return
	}
	log.Info().
		Str("winner", winner.String()).
		Int("red", e.Board.RedPieces()).
		Int("blue", e.Board.BluePieces()).
		Int("moves", e.Board.NumMoves()).
		Msg("game over")
}
