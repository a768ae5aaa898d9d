package game

import (
	"errors"
	"fmt"
)

// ErrEmptyHistory is returned by Undo when no committed move remains.
var ErrEmptyHistory = errors.New("game: no moves to undo")

// IllegalMoveError reports an attempt to apply a move that is not legal on the
// current board. The board is left untouched.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("game: illegal move %s", e.Move)
}

// IllegalSetupError reports a block placement that violates the pre-game
// setup rules: blocks may only be placed while both players still hold their
// two starting pieces, and only on empty squares.
type IllegalSetupError struct {
	Col, Row byte
	Reason   string
}

func (e *IllegalSetupError) Error() string {
	return fmt.Sprintf("game: illegal block at %c%c: %s", e.Col, e.Row, e.Reason)
}
