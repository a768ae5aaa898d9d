package game

import "fmt"

// PieceColor is the contents of one board square. Red and Blue are the two
// players; Empty and Blocked are marker values. Blocked covers both the
// pre-game obstacle squares and the artificial border around the playing area.
type PieceColor uint8

const (
	Empty PieceColor = iota
	Blocked
	Red
	Blue
)

// Opposite returns the other player's color. It is only defined for Red and
// Blue; calling it on a marker value is a contract violation.
func (c PieceColor) Opposite() PieceColor {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	panic(fmt.Sprintf("game: %v has no opposite", c))
}

// IsPlayer reports whether c denotes one of the two players.
func (c PieceColor) IsPlayer() bool {
	return c == Red || c == Blue
}

func (c PieceColor) String() string {
	switch c {
	case Empty:
		return "empty"
	case Blocked:
		return "blocked"
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("PieceColor(%d)", uint8(c))
}
