package game

import "fmt"

// A Move is either a pass or a placement from one square to another. Squares
// are named by column letter 'a'..'g' and row digit '1'..'7'. Placements at
// Chebyshev distance 1 are extends (the piece clones); placements at distance
// 2 are jumps (the piece leaps, vacating the source). Move is a comparable
// value type, so moves can be compared with == and used as map keys.
type Move struct {
	col0, row0 byte
	col1, row1 byte
	pass       bool
}

// Pass returns the distinguished pass move.
func Pass() Move {
	return Move{pass: true}
}

// NewMove returns the placement move from c0 r0 to c1 r1. The coordinates may
// reach into the blocked border region; such moves are never legal but are
// safe to construct, which lets move enumeration probe a full 5x5 neighborhood
// without bounds checks.
func NewMove(c0, r0, c1, r1 byte) Move {
	return Move{col0: c0, row0: r0, col1: c1, row1: r1}
}

// ParseMove parses the text form of a move: "-" for a pass, or two square
// labels separated by a hyphen, e.g. "a1-b2".
func ParseMove(s string) (Move, error) {
	if s == "-" {
		return Pass(), nil
	}
	if len(s) != 5 || s[2] != '-' {
		return Move{}, fmt.Errorf("game: malformed move %q", s)
	}
	m := NewMove(s[0], s[1], s[3], s[4])
	if !inside(m.col0, m.row0) || !inside(m.col1, m.row1) {
		return Move{}, fmt.Errorf("game: square out of range in move %q", s)
	}
	return m, nil
}

// IsPass reports whether m is the pass move.
func (m Move) IsPass() bool {
	return m.pass
}

// IsExtend reports whether m is a placement at Chebyshev distance 1.
func (m Move) IsExtend() bool {
	return !m.pass && chebyshev(m) == 1
}

// IsJump reports whether m is a placement at Chebyshev distance 2.
func (m Move) IsJump() bool {
	return !m.pass && chebyshev(m) == 2
}

// Col0 returns the source column of a placement.
func (m Move) Col0() byte { return m.col0 }

// Row0 returns the source row of a placement.
func (m Move) Row0() byte { return m.row0 }

// Col1 returns the destination column of a placement.
func (m Move) Col1() byte { return m.col1 }

// Row1 returns the destination row of a placement.
func (m Move) Row1() byte { return m.row1 }

// FromIndex returns the linearized index of the source square.
func (m Move) FromIndex() int { return Index(m.col0, m.row0) }

// ToIndex returns the linearized index of the destination square.
func (m Move) ToIndex() int { return Index(m.col1, m.row1) }

func (m Move) String() string {
	if m.pass {
		return "-"
	}
	return fmt.Sprintf("%c%c-%c%c", m.col0, m.row0, m.col1, m.row1)
}

func chebyshev(m Move) int {
	dc := abs(int(m.col1) - int(m.col0))
	dr := abs(int(m.row1) - int(m.row0))
	if dc > dr {
		return dc
	}
	return dr
}

func inside(c, r byte) bool {
	return c >= 'a' && c <= 'g' && r >= '1' && r <= '7'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
